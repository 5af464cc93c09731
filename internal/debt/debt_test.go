package debt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranqh/moneypot/internal/debt"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDebt_Outstanding(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		paidBack  float64
		want      float64
	}{
		{name: "Unpaid", principal: 1000, paidBack: 0, want: 1000},
		{name: "PartiallyPaid", principal: 1000, paidBack: 400, want: 600},
		{name: "Settled", principal: 1000, paidBack: 1000, want: 0},
		{name: "OverpaidClampsToZero", principal: 1000, paidBack: 1500, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := debt.Debt{Principal: tt.principal, PaidBack: tt.paidBack}
			assert.InDelta(t, tt.want, d.Outstanding(), 1e-9)
		})
	}
}

func TestDebt_IsOverdue(t *testing.T) {
	asOf := date(2024, 6, 15)
	past := date(2024, 6, 1)
	future := date(2024, 7, 1)

	tests := []struct {
		name string
		d    debt.Debt
		want bool
	}{
		{
			name: "PastDueWithOutstanding",
			d:    debt.Debt{Principal: 1000, DueDate: &past},
			want: true,
		},
		{
			name: "PastDueButSettled",
			d:    debt.Debt{Principal: 1000, PaidBack: 1000, DueDate: &past},
			want: false,
		},
		{
			name: "FutureDue",
			d:    debt.Debt{Principal: 1000, DueDate: &future},
			want: false,
		},
		{
			name: "NoDueDate",
			d:    debt.Debt{Principal: 1000},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.IsOverdue(asOf))
		})
	}
}

func TestDebt_AccruedInterest(t *testing.T) {
	start := date(2024, 1, 1)

	t.Run("SimpleOneYear", func(t *testing.T) {
		d := debt.Debt{
			Principal:    1_000_000,
			InterestRate: 12,
			StartDate:    start,
		}

		// 365 days at 12% simple.
		got := d.AccruedInterest(start.AddDate(0, 0, 365))
		assert.InDelta(t, 120_000, got, 1e-6)
	})

	t.Run("CompoundOneYear", func(t *testing.T) {
		d := debt.Debt{
			Principal:    1_000_000,
			InterestRate: 12,
			StartDate:    start,
			Compound:     true,
		}

		got := d.AccruedInterest(start.AddDate(0, 0, 365))
		assert.InDelta(t, 120_000, got, 1e-6)
	})

	t.Run("CompoundBeatsSimpleBeyondOneYear", func(t *testing.T) {
		simple := debt.Debt{Principal: 1_000_000, InterestRate: 12, StartDate: start}
		compound := simple
		compound.Compound = true

		asOf := start.AddDate(0, 0, 730)
		assert.Greater(t, compound.AccruedInterest(asOf), simple.AccruedInterest(asOf))
	})

	t.Run("BeforeStart", func(t *testing.T) {
		d := debt.Debt{Principal: 1000, InterestRate: 10, StartDate: start}
		assert.Zero(t, d.AccruedInterest(start.AddDate(0, 0, -1)))
	})

	t.Run("SettledDebtAccruesNothing", func(t *testing.T) {
		d := debt.Debt{Principal: 1000, PaidBack: 1000, InterestRate: 10, StartDate: start}
		assert.Zero(t, d.AccruedInterest(start.AddDate(1, 0, 0)))
	})

	t.Run("ZeroRate", func(t *testing.T) {
		d := debt.Debt{Principal: 1000, StartDate: start}
		assert.Zero(t, d.AccruedInterest(start.AddDate(1, 0, 0)))
	})
}

func TestDebt_TotalRepayable(t *testing.T) {
	tests := []struct {
		name string
		d    debt.Debt
		want float64
	}{
		{
			name: "SimpleTwelveMonths",
			d:    debt.Debt{Principal: 12_000_000, InterestRate: 12, TermMonths: 12},
			want: 13_440_000,
		},
		{
			name: "CompoundTwelveMonths",
			d:    debt.Debt{Principal: 12_000_000, InterestRate: 12, TermMonths: 12, Compound: true},
			want: 13_440_000,
		},
		{
			name: "SimpleHalfYear",
			d:    debt.Debt{Principal: 1_000_000, InterestRate: 10, TermMonths: 6},
			want: 1_050_000,
		},
		{
			name: "ZeroTerm",
			d:    debt.Debt{Principal: 1000, InterestRate: 10},
			want: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.d.TotalRepayable(), 1e-3)
		})
	}
}

func TestDebt_RepaymentSchedule(t *testing.T) {
	start := date(2024, 1, 1)

	t.Run("EqualInstallments", func(t *testing.T) {
		d := debt.Debt{
			Principal:    12_000_000,
			InterestRate: 12,
			TermMonths:   12,
			StartDate:    start,
		}

		schedule := d.RepaymentSchedule(debt.StepFixed30)
		require.Len(t, schedule, 12)

		var total float64

		for i, in := range schedule {
			assert.InDelta(t, 1_120_000, in.Amount, 1e-3)
			assert.Equal(t, start.AddDate(0, 0, 30*(i+1)), in.Date)
			assert.False(t, in.Paid)

			total += in.Amount
		}

		assert.InDelta(t, d.TotalRepayable(), total, 1e-3)
	})

	t.Run("CalendarStepping", func(t *testing.T) {
		d := debt.Debt{
			Principal:  1_200_000,
			TermMonths: 3,
			StartDate:  start,
		}

		schedule := d.RepaymentSchedule(debt.StepCalendarMonth)
		require.Len(t, schedule, 3)

		assert.Equal(t, date(2024, 2, 1), schedule[0].Date)
		assert.Equal(t, date(2024, 3, 1), schedule[1].Date)
		assert.Equal(t, date(2024, 4, 1), schedule[2].Date)
	})

	t.Run("PaidFlagsFollowCumulativePayments", func(t *testing.T) {
		d := debt.Debt{
			Principal:  1_200_000,
			TermMonths: 3,
			StartDate:  start,
			PaidBack:   800_000, // covers first two 400k installments
		}

		schedule := d.RepaymentSchedule(debt.StepFixed30)
		require.Len(t, schedule, 3)

		assert.True(t, schedule[0].Paid)
		assert.True(t, schedule[1].Paid)
		assert.False(t, schedule[2].Paid)
	})

	t.Run("NoTermDegeneratesToSingleEntry", func(t *testing.T) {
		due := date(2024, 12, 31)
		d := debt.Debt{
			Principal: 500_000,
			StartDate: start,
			DueDate:   &due,
		}

		schedule := d.RepaymentSchedule(debt.StepFixed30)
		require.Len(t, schedule, 1)

		assert.Equal(t, due, schedule[0].Date)
		assert.InDelta(t, 500_000, schedule[0].Amount, 1e-9)
		assert.False(t, schedule[0].Paid)
	})

	t.Run("ZeroPrincipalSingleEntryAtStart", func(t *testing.T) {
		d := debt.Debt{TermMonths: 12, StartDate: start}

		schedule := d.RepaymentSchedule(debt.StepFixed30)
		require.Len(t, schedule, 1)

		assert.Equal(t, start, schedule[0].Date)
		assert.Zero(t, schedule[0].Amount)
		assert.True(t, schedule[0].Paid)
	})
}
