package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/transaction"
)

// utf8BOM makes exports readable by spreadsheet tools that otherwise guess
// the charset; the old desktop tool wrote its files the same way.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var transactionHeader = []string{
	"id", "date", "category", "amount", "type", "role",
	"description", "expiry_date", "is_recurring", "cycle",
}

var debtHeader = []string{
	"id", "counterparty", "side", "amount", "paid_back", "interest_rate",
	"term_months", "start_date", "due_date", "purpose", "compound",
}

// Service writes ledger data as CSV in the column layout the old desktop
// tool used, so exports stay round-trippable through the importer.
type Service struct {
	transactions *transaction.Service
	debts        *debt.Service
}

func NewService(txService *transaction.Service, debtService *debt.Service) *Service {
	return &Service{
		transactions: txService,
		debts:        debtService,
	}
}

// WriteTransactions exports transactions matching the filter to w.
func (s *Service) WriteTransactions(ctx context.Context, w io.Writer, filter transaction.ListFilter) error {
	txs, err := s.transactions.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing bom: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(transactionHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		expiry := ""
		if tx.ExpiryDate != nil {
			expiry = tx.ExpiryDate.Format(time.DateOnly)
		}

		row := []string{
			tx.ID.String(),
			tx.Date.Format(time.RFC3339),
			tx.Category,
			formatAmount(tx.Amount),
			string(tx.Type),
			tx.Role,
			tx.Description,
			expiry,
			strconv.FormatBool(tx.IsRecurring),
			tx.Cycle,
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

// WriteDebts exports debts to w, optionally only those still outstanding.
func (s *Service) WriteDebts(ctx context.Context, w io.Writer, activeOnly bool) error {
	debts, err := s.debts.List(ctx, activeOnly)
	if err != nil {
		return fmt.Errorf("listing debts: %w", err)
	}

	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing bom: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(debtHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, d := range debts {
		due := ""
		if d.DueDate != nil {
			due = d.DueDate.Format(time.DateOnly)
		}

		row := []string{
			d.ID.String(),
			d.Counterparty,
			string(d.Side),
			formatAmount(d.Principal),
			formatAmount(d.PaidBack),
			strconv.FormatFloat(d.InterestRate, 'f', -1, 64),
			strconv.Itoa(d.TermMonths),
			d.StartDate.Format(time.DateOnly),
			due,
			d.Purpose,
			strconv.FormatBool(d.Compound),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing debt %s: %w", d.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
