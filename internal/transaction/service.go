package transaction

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Date        time.Time
	Category    string
	Amount      float64
	Type        Type
	Role        string
	Description string
	ExpiryDate  *time.Time
	IsRecurring bool
	Cycle       string
	Source      *SourceRef
}

type ListFilter struct {
	Type      *Type
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// Summary aggregates the full ledger: balance is income minus expense.
type Summary struct {
	Income  float64
	Expense float64
	Balance float64
}

func (p CreateParams) validate() error {
	if p.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if p.Type != TypeIncome && p.Type != TypeExpense {
		return fmt.Errorf("%w: unknown type %q", ErrValidation, p.Type)
	}

	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	tx := &Transaction{
		Date:        params.Date,
		Category:    params.Category,
		Amount:      params.Amount,
		Type:        params.Type,
		Role:        params.Role,
		Description: params.Description,
		ExpiryDate:  params.ExpiryDate,
		IsRecurring: params.IsRecurring,
		Cycle:       params.Cycle,
		Source:      params.Source,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	if tx.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if tx.Type != TypeIncome && tx.Type != TypeExpense {
		return fmt.Errorf("%w: unknown type %q", ErrValidation, tx.Type)
	}

	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// Summarize folds the whole ledger into income/expense/balance totals.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	txs, err := s.repo.ListTransactions(ctx, ListFilter{})
	if err != nil {
		return Summary{}, fmt.Errorf("listing transactions: %w", err)
	}

	var sum Summary

	for _, tx := range txs {
		switch tx.Type {
		case TypeIncome:
			sum.Income += tx.Amount
		case TypeExpense:
			sum.Expense += tx.Amount
		}
	}

	sum.Balance = sum.Income - sum.Expense

	return sum, nil
}

// Recent returns the n most recent transactions by date, newest first.
func (s *Service) Recent(ctx context.Context, n int) ([]*Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx, ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})

	if len(txs) > n {
		txs = txs[:n]
	}

	return txs, nil
}

// CategoryBreakdown sums amounts per category for the given type.
func (s *Service) CategoryBreakdown(ctx context.Context, txType Type) (map[string]float64, error) {
	txs, err := s.repo.ListTransactions(ctx, ListFilter{Type: &txType})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	totals := make(map[string]float64)
	for _, tx := range txs {
		totals[tx.Category] += tx.Amount
	}

	return totals, nil
}

// MonthTotal is one point of the monthly income/expense series.
type MonthTotal struct {
	Month   string  `json:"month"` // formatted as 2006-01
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlySeries aggregates income and expense per calendar month,
// ordered chronologically.
func (s *Service) MonthlySeries(ctx context.Context) ([]MonthTotal, error) {
	txs, err := s.repo.ListTransactions(ctx, ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	byMonth := make(map[string]*MonthTotal)

	for _, tx := range txs {
		key := tx.Date.Format("2006-01")

		mt, ok := byMonth[key]
		if !ok {
			mt = &MonthTotal{Month: key}
			byMonth[key] = mt
		}

		switch tx.Type {
		case TypeIncome:
			mt.Income += tx.Amount
		case TypeExpense:
			mt.Expense += tx.Amount
		}
	}

	series := make([]MonthTotal, 0, len(byMonth))
	for _, mt := range byMonth {
		series = append(series, *mt)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })

	return series, nil
}
