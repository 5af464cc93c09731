package filedb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/filedb"
	"github.com/tranqh/moneypot/internal/fund"
	"github.com/tranqh/moneypot/internal/transaction"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestOpen_EmptyDirectory(t *testing.T) {
	db, err := filedb.Open(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, db)

	txs, err := filedb.NewTransactionStore(db).ListTransactions(context.Background(), transaction.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := filedb.Open(dir)
	require.NoError(t, err)

	txStore := filedb.NewTransactionStore(db)

	expiry := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tx := &transaction.Transaction{
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Category:    "Food",
		Amount:      120_000,
		Type:        transaction.TypeExpense,
		Role:        "wife",
		Description: "Market",
		ExpiryDate:  &expiry,
		IsRecurring: true,
		Cycle:       "month",
	}
	require.NoError(t, txStore.CreateTransaction(ctx, tx))
	require.NotEmpty(t, tx.ID)

	debtStore := filedb.NewDebtStore(db)
	due := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	d := &debt.Debt{
		Counterparty: "Ngan",
		Side:         debt.SidePayable,
		Principal:    2_000_000,
		InterestRate: 12,
		TermMonths:   12,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      &due,
		Purpose:      "Motorbike",
	}
	require.NoError(t, debtStore.CreateDebt(ctx, d))

	fundStore := filedb.NewFundStore(db)
	f := &fund.Fund{Name: "Emergency", Type: fund.TypePool, Target: 10_000_000}
	f.Apply(fund.Movement{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Amount: 500_000, Direction: fund.DirectionIn})
	require.NoError(t, fundStore.CreateFund(ctx, f))

	g := &fund.Goal{Name: "Trip", Target: 3_000_000, Members: []fund.Member{{Name: "An", Contribution: 100_000}}}
	require.NoError(t, fundStore.CreateGoal(ctx, g))

	// Reopen from disk and check everything came back.
	db2, err := filedb.Open(dir)
	require.NoError(t, err)

	gotTx, err := filedb.NewTransactionStore(db2).GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "Market", gotTx.Description)
	require.NotNil(t, gotTx.ExpiryDate)
	assert.True(t, gotTx.ExpiryDate.Equal(expiry))
	assert.True(t, gotTx.IsRecurring)

	gotDebt, err := filedb.NewDebtStore(db2).GetDebt(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ngan", gotDebt.Counterparty)
	assert.InDelta(t, 2_000_000, gotDebt.Principal, 1e-9)
	require.NotNil(t, gotDebt.DueDate)

	gotFund, err := filedb.NewFundStore(db2).GetFund(ctx, f.ID)
	require.NoError(t, err)
	assert.InDelta(t, 500_000, gotFund.Current, 1e-9)
	require.Len(t, gotFund.History, 1)
	require.NoError(t, gotFund.Verify())

	goals, err := filedb.NewFundStore(db2).ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.InDelta(t, 100_000, goals[0].Saved(), 1e-9)
}

func TestOpen_MigratesLegacyBareArrays(t *testing.T) {
	dir := t.TempDir()

	// Integer ids, IOWE/THEY_OWE sides and movement "type" fields are the
	// legacy desktop layout.
	write(t, dir, "debts.json", `[
		{
			"id": 3,
			"counterparty": "Ngan",
			"side": "IOWE",
			"amount": 1000000,
			"paid_back": 250000,
			"interest_rate": 10,
			"term_months": 6,
			"start_date": "2024-01-15",
			"due_date": null,
			"purpose": "tet",
			"compound": false
		}
	]`)

	write(t, dir, "funds.json", `[
		{
			"id": 1,
			"name": "Emergency",
			"type": "pool",
			"target": 5000000,
			"current": 300000,
			"icon": "",
			"history": [
				{"date": "2024-02-01 09:30", "amount": 300000, "note": "", "type": "in"}
			]
		}
	]`)

	db, err := filedb.Open(dir)
	require.NoError(t, err)

	ctx := context.Background()

	debts, err := filedb.NewDebtStore(db).ListDebts(ctx)
	require.NoError(t, err)
	require.Len(t, debts, 1)

	d := debts[0]
	assert.Equal(t, debt.SidePayable, d.Side)
	assert.InDelta(t, 1_000_000, d.Principal, 1e-9)
	assert.InDelta(t, 750_000, d.Outstanding(), 1e-9)
	assert.NotEqual(t, uuid.Nil, d.ID) // re-keyed from the integer id

	funds, err := filedb.NewFundStore(db).ListFunds(ctx)
	require.NoError(t, err)
	require.Len(t, funds, 1)

	f := funds[0]
	assert.InDelta(t, 300_000, f.Current, 1e-9)
	require.Len(t, f.History, 1)
	assert.Equal(t, fund.DirectionIn, f.History[0].Direction)
}

func TestOpen_CorruptFileIsBackedUpAndSkipped(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "debts.json", `{"version": 1, "records": [{"id": `)

	db, err := filedb.Open(dir)
	require.ErrorIs(t, err, filedb.ErrCorruptData)
	require.NotNil(t, db)

	// The broken file was moved aside, not deleted.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "debts.json.corrupt-")

	// The store starts empty and stays usable.
	ctx := context.Background()
	store := filedb.NewDebtStore(db)

	debts, err := store.ListDebts(ctx)
	require.NoError(t, err)
	assert.Empty(t, debts)

	require.NoError(t, store.CreateDebt(ctx, &debt.Debt{
		Counterparty: "Ngan",
		Side:         debt.SidePayable,
		Principal:    100,
		StartDate:    time.Now(),
	}))
}

func TestOpen_UnsupportedVersionIsCorrupt(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "transactions.json", `{"version": 99, "records": []}`)

	_, err := filedb.Open(dir)
	assert.ErrorIs(t, err, filedb.ErrCorruptData)
}

func TestOpen_InconsistentFundHistoryIsCorrupt(t *testing.T) {
	dir := t.TempDir()

	// Balance disagrees with the history total.
	write(t, dir, "funds.json", `[
		{
			"id": 1,
			"name": "Drifted",
			"type": "pool",
			"target": 0,
			"current": 999,
			"icon": "",
			"history": [
				{"date": "2024-02-01", "amount": 100, "note": "", "type": "in"}
			]
		}
	]`)

	db, err := filedb.Open(dir)
	require.ErrorIs(t, err, filedb.ErrCorruptData)

	funds, err := filedb.NewFundStore(db).ListFunds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, funds)
}

func TestTransactionStore_CRUD(t *testing.T) {
	db, err := filedb.Open(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	store := filedb.NewTransactionStore(db)

	tx := &transaction.Transaction{
		Date:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Amount: 100,
		Type:   transaction.TypeIncome,
	}
	require.NoError(t, store.CreateTransaction(ctx, tx))
	assert.False(t, tx.CreatedAt.IsZero())

	tx.Amount = 150
	require.NoError(t, store.UpdateTransaction(ctx, tx))

	got, err := store.GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.InDelta(t, 150, got.Amount, 1e-9)
	assert.NotNil(t, got.UpdatedAt)

	require.NoError(t, store.DeleteTransaction(ctx, tx.ID))

	_, err = store.GetTransaction(ctx, tx.ID)
	assert.ErrorIs(t, err, transaction.ErrNotFound)

	assert.ErrorIs(t, store.DeleteTransaction(ctx, uuid.New()), transaction.ErrNotFound)
	assert.ErrorIs(t, store.UpdateTransaction(ctx, &transaction.Transaction{ID: uuid.New()}), transaction.ErrNotFound)
}

func TestTransactionStore_ListFilterAndOrder(t *testing.T) {
	db, err := filedb.Open(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	store := filedb.NewTransactionStore(db)

	mk := func(day int, cat string, typ transaction.Type) {
		require.NoError(t, store.CreateTransaction(ctx, &transaction.Transaction{
			Date:     time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC),
			Category: cat,
			Amount:   10,
			Type:     typ,
		}))
	}

	mk(20, "Food", transaction.TypeExpense)
	mk(5, "Salary", transaction.TypeIncome)
	mk(10, "Food", transaction.TypeExpense)

	all, err := store.ListTransactions(ctx, transaction.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Ordered by date ascending.
	assert.True(t, all[0].Date.Before(all[1].Date))
	assert.True(t, all[1].Date.Before(all[2].Date))

	food := "Food"

	filtered, err := store.ListTransactions(ctx, transaction.ListFilter{Category: &food})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	start := time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	ranged, err := store.ListTransactions(ctx, transaction.ListFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, 10, ranged[0].Date.Day())
}

func TestStores_ReturnClones(t *testing.T) {
	db, err := filedb.Open(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	store := filedb.NewDebtStore(db)

	d := &debt.Debt{
		Counterparty: "Ngan",
		Side:         debt.SidePayable,
		Principal:    1000,
		StartDate:    time.Now(),
	}
	require.NoError(t, store.CreateDebt(ctx, d))

	got, err := store.GetDebt(ctx, d.ID)
	require.NoError(t, err)

	// Mutating the returned value must not leak into the store.
	got.PaidBack = 999

	fresh, err := store.GetDebt(ctx, d.ID)
	require.NoError(t, err)
	assert.Zero(t, fresh.PaidBack)
}

func TestCommitter_RepayDebtPersistsBothSides(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	db, err := filedb.Open(dir)
	require.NoError(t, err)

	debtStore := filedb.NewDebtStore(db)
	d := &debt.Debt{
		Counterparty: "Ngan",
		Side:         debt.SidePayable,
		Principal:    1000,
		StartDate:    time.Now(),
	}
	require.NoError(t, debtStore.CreateDebt(ctx, d))

	updated := *d
	updated.PaidBack = 400

	tx := &transaction.Transaction{
		Date:   time.Now(),
		Amount: 400,
		Type:   transaction.TypeExpense,
		Source: &transaction.SourceRef{Kind: transaction.SourceDebt, ID: d.ID},
	}

	committer := filedb.NewCommitter(db)
	require.NoError(t, committer.RepayDebt(ctx, &updated, tx))
	require.NotEmpty(t, tx.ID)

	// Both files agree after reopening.
	db2, err := filedb.Open(dir)
	require.NoError(t, err)

	gotDebt, err := filedb.NewDebtStore(db2).GetDebt(ctx, d.ID)
	require.NoError(t, err)
	assert.InDelta(t, 400, gotDebt.PaidBack, 1e-9)

	gotTx, err := filedb.NewTransactionStore(db2).GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	require.NotNil(t, gotTx.Source)
	assert.Equal(t, d.ID, gotTx.Source.ID)
}

func TestCommitter_UnknownEntities(t *testing.T) {
	db, err := filedb.Open(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	committer := filedb.NewCommitter(db)

	err = committer.RepayDebt(ctx, &debt.Debt{ID: uuid.New()}, &transaction.Transaction{})
	assert.ErrorIs(t, err, debt.ErrNotFound)

	err = committer.MoveFund(ctx, &fund.Fund{ID: uuid.New()}, &transaction.Transaction{})
	assert.ErrorIs(t, err, fund.ErrNotFound)
}
