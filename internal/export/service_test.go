package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/export"
	"github.com/tranqh/moneypot/internal/importer/legacycsv"
	"github.com/tranqh/moneypot/internal/transaction"
)

func newService(t *testing.T) (*export.Service, *transaction.MockRepository, *debt.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	txRepo := transaction.NewMockRepository(ctrl)
	debtRepo := debt.NewMockRepository(ctrl)

	svc := export.NewService(
		transaction.NewService(txRepo),
		debt.NewService(debtRepo, debt.StepFixed30),
	)

	return svc, txRepo, debtRepo
}

func TestWriteTransactions(t *testing.T) {
	svc, txRepo, _ := newService(t)

	txRepo.EXPECT().
		ListTransactions(gomock.Any(), transaction.ListFilter{}).
		Return([]*transaction.Transaction{
			{
				ID:          uuid.New(),
				Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Category:    "Food",
				Amount:      120_000,
				Type:        transaction.TypeExpense,
				Role:        "wife",
				Description: "Market run",
			},
		}, nil)

	var buf bytes.Buffer

	require.NoError(t, svc.WriteTransactions(context.Background(), &buf, transaction.ListFilter{}))

	out := buf.Bytes()

	// Spreadsheet-friendly BOM prefix.
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, out[:3])
	assert.Contains(t, buf.String(), "id,date,category,amount,type,role,description,expiry_date,is_recurring,cycle")
	assert.Contains(t, buf.String(), "Food")
	assert.Contains(t, buf.String(), "120000.00")
}

func TestWriteTransactions_RoundTripsThroughImporter(t *testing.T) {
	svc, txRepo, _ := newService(t)

	expiry := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	txRepo.EXPECT().
		ListTransactions(gomock.Any(), transaction.ListFilter{}).
		Return([]*transaction.Transaction{
			{
				ID:          uuid.New(),
				Date:        time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC),
				Category:    "Salary",
				Amount:      5_000_000,
				Type:        transaction.TypeIncome,
				Description: "March payroll",
				ExpiryDate:  &expiry,
				IsRecurring: true,
				Cycle:       "month",
			},
		}, nil)

	var buf bytes.Buffer

	require.NoError(t, svc.WriteTransactions(context.Background(), &buf, transaction.ListFilter{}))

	parsed, err := legacycsv.New().Parse(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, 1)

	got := parsed[0]
	assert.Equal(t, "Salary", got.Category)
	assert.InDelta(t, 5_000_000, got.Amount, 1e-6)
	assert.Equal(t, transaction.TypeIncome, got.Type)
	assert.True(t, got.IsRecurring)
	require.NotNil(t, got.ExpiryDate)
}

func TestWriteDebts(t *testing.T) {
	svc, _, debtRepo := newService(t)

	due := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	debtRepo.EXPECT().
		ListDebts(gomock.Any()).
		Return([]*debt.Debt{
			{
				ID:           uuid.New(),
				Counterparty: "Ngan",
				Side:         debt.SidePayable,
				Principal:    1_000_000,
				PaidBack:     1_000_000,
				StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				DueDate:      &due,
			},
			{
				ID:           uuid.New(),
				Counterparty: "Minh",
				Side:         debt.SideReceivable,
				Principal:    500_000,
				StartDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			},
		}, nil)

	var buf bytes.Buffer

	require.NoError(t, svc.WriteDebts(context.Background(), &buf, false))

	assert.Contains(t, buf.String(), "id,counterparty,side,amount,paid_back")
	assert.Contains(t, buf.String(), "Ngan")
	assert.Contains(t, buf.String(), "Minh")
}

func TestWriteDebts_ActiveOnly(t *testing.T) {
	svc, _, debtRepo := newService(t)

	debtRepo.EXPECT().
		ListDebts(gomock.Any()).
		Return([]*debt.Debt{
			{ID: uuid.New(), Counterparty: "Settled", Side: debt.SidePayable, Principal: 100, PaidBack: 100, StartDate: time.Now()},
			{ID: uuid.New(), Counterparty: "Open", Side: debt.SidePayable, Principal: 100, StartDate: time.Now()},
		}, nil)

	var buf bytes.Buffer

	require.NoError(t, svc.WriteDebts(context.Background(), &buf, true))

	assert.NotContains(t, buf.String(), "Settled")
	assert.Contains(t, buf.String(), "Open")
}
