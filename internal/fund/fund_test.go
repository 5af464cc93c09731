package fund_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranqh/moneypot/internal/fund"
)

func mv(amount float64, dir fund.Direction) fund.Movement {
	return fund.Movement{
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Amount:    amount,
		Direction: dir,
	}
}

func TestFund_Apply(t *testing.T) {
	var f fund.Fund

	f.Apply(mv(1000, fund.DirectionIn))
	f.Apply(mv(400, fund.DirectionOut))
	f.Apply(mv(100, fund.DirectionIn))

	assert.InDelta(t, 700, f.Current, 1e-9)
	assert.Len(t, f.History, 3)
}

func TestFund_Verify(t *testing.T) {
	t.Run("Consistent", func(t *testing.T) {
		var f fund.Fund
		f.Apply(mv(1000, fund.DirectionIn))
		f.Apply(mv(250, fund.DirectionOut))

		require.NoError(t, f.Verify())
	})

	t.Run("BalanceDrifted", func(t *testing.T) {
		var f fund.Fund
		f.Apply(mv(1000, fund.DirectionIn))
		f.Current = 900

		assert.ErrorIs(t, f.Verify(), fund.ErrInconsistentHistory)
	})

	t.Run("UnknownDirection", func(t *testing.T) {
		f := fund.Fund{History: []fund.Movement{{Amount: 10, Direction: "sideways"}}}

		assert.ErrorIs(t, f.Verify(), fund.ErrInconsistentHistory)
	})

	t.Run("EmptyHistoryZeroBalance", func(t *testing.T) {
		var f fund.Fund
		require.NoError(t, f.Verify())
	})
}

func TestGoal_Saved(t *testing.T) {
	g := fund.Goal{
		Members: []fund.Member{
			{Name: "An", Contribution: 500_000},
			{Name: "Binh", Contribution: 300_000},
		},
	}

	assert.InDelta(t, 800_000, g.Saved(), 1e-9)
	assert.Zero(t, (&fund.Goal{}).Saved())
}
