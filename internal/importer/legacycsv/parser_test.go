package legacycsv_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranqh/moneypot/internal/importer/legacycsv"
	"github.com/tranqh/moneypot/internal/transaction"
)

func TestParse_FullLayout(t *testing.T) {
	input := "\uFEFF" + // legacy files carry a UTF-8 BOM
		"id,date,category,amount,type,role,description,expiry_date,is_recurring,cycle\n" +
		"123456,2024-03-10,Food,120000,expense,wife,Market run,,False,\n" +
		"234567,2024-03-15 08:30,Salary,5000000,income,husband,March payroll,2024-12-31,True,month\n"

	txs, err := legacycsv.New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 2)

	first := txs[0]
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Food", first.Category)
	assert.InDelta(t, 120_000, first.Amount, 1e-9)
	assert.Equal(t, transaction.TypeExpense, first.Type)
	assert.Equal(t, "wife", first.Role)
	assert.Equal(t, "Market run", first.Description)
	assert.Nil(t, first.ExpiryDate)
	assert.False(t, first.IsRecurring)

	second := txs[1]
	assert.Equal(t, transaction.TypeIncome, second.Type)
	assert.True(t, second.IsRecurring)
	assert.Equal(t, "month", second.Cycle)
	require.NotNil(t, second.ExpiryDate)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), *second.ExpiryDate)
}

func TestParse_SkipsFooterRows(t *testing.T) {
	input := "id,date,category,amount,type\n" +
		"1,2024-01-01,Food,100,expense\n" +
		",,,,\n" +
		"Total,,,100,\n"

	txs, err := legacycsv.New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestParse_MissingRequiredColumn(t *testing.T) {
	input := "id,date,category\n1,2024-01-01,Food\n"

	_, err := legacycsv.New().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestParse_BadAmount(t *testing.T) {
	input := "date,amount,type\n2024-01-01,abc,expense\n"

	_, err := legacycsv.New().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParse_UnknownType(t *testing.T) {
	input := "date,amount,type\n2024-01-01,100,transfer\n"

	_, err := legacycsv.New().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transfer")
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := legacycsv.New().Parse(strings.NewReader(""))
	assert.Error(t, err)
}
