// Package reconcile is the only place where one logical operation may touch
// more than one store. It guarantees that every debt repayment and every
// fund movement is mirrored by exactly one ledger transaction, and it
// computes the aggregate dashboard across all three stores.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/event"
	"github.com/tranqh/moneypot/internal/fund"
	"github.com/tranqh/moneypot/internal/transaction"
)

// amountEpsilon tolerates float drift when comparing a repayment against
// the outstanding amount.
const amountEpsilon = 1e-5

// Committer persists a dual-entry write as one unit: either the entity
// mutation and its mirrored transaction both commit, or neither does.
//
//go:generate mockgen -source=service.go -destination=committer_mock.go -package=reconcile
type Committer interface {
	// RepayDebt persists the updated debt together with its mirrored
	// transaction.
	RepayDebt(ctx context.Context, d *debt.Debt, tx *transaction.Transaction) error

	// MoveFund persists the fund (movement already applied) together with
	// its mirrored transaction.
	MoveFund(ctx context.Context, f *fund.Fund, tx *transaction.Transaction) error
}

type Service struct {
	transactions *transaction.Service
	debts        *debt.Service
	funds        *fund.Service
	committer    Committer
	bus          *event.Bus
}

func NewService(
	transactions *transaction.Service,
	debts *debt.Service,
	funds *fund.Service,
	committer Committer,
	bus *event.Bus,
) *Service {
	return &Service{
		transactions: transactions,
		debts:        debts,
		funds:        funds,
		committer:    committer,
		bus:          bus,
	}
}

// RepayDebt records a repayment against a debt and mirrors it in the
// transaction ledger. Paying down a payable is an expense; receiving money
// back on a receivable is income.
//
// The repayment must be positive and must not exceed the outstanding
// amount: a debt with nothing outstanding cannot be repaid further.
func (s *Service) RepayDebt(ctx context.Context, debtID uuid.UUID, amount float64) (*transaction.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: repayment amount must be positive", ErrValidation)
	}

	d, err := s.debts.Get(ctx, debtID)
	if err != nil {
		return nil, err
	}

	outstanding := d.Outstanding()
	if outstanding <= 0 {
		return nil, fmt.Errorf("%w: debt %s has nothing outstanding", ErrInsufficientBalance, d.ID)
	}

	if amount > outstanding+amountEpsilon {
		return nil, fmt.Errorf("%w: repayment %.2f exceeds outstanding %.2f", ErrInsufficientBalance, amount, outstanding)
	}

	updated := *d
	updated.PaidBack += amount

	txType := transaction.TypeExpense

	description := fmt.Sprintf("Repayment to %s", d.Counterparty)
	if d.Side == debt.SideReceivable {
		txType = transaction.TypeIncome
		description = fmt.Sprintf("Repayment from %s", d.Counterparty)
	}

	tx := &transaction.Transaction{
		Date:        time.Now(),
		Category:    "Debt repayment",
		Amount:      amount,
		Type:        txType,
		Description: description,
		Source:      &transaction.SourceRef{Kind: transaction.SourceDebt, ID: d.ID},
	}

	if err := s.committer.RepayDebt(ctx, &updated, tx); err != nil {
		return nil, fmt.Errorf("committing repayment: %w", err)
	}

	s.bus.Publish(event.Event{Kind: event.DebtChanged, EntityID: d.ID})
	s.bus.Publish(event.Event{Kind: event.TransactionChanged, EntityID: tx.ID})

	return tx, nil
}

// MoveFund deposits into or withdraws from a fund and mirrors the movement
// in the transaction ledger. A deposit takes cash out of general spending
// (expense); a withdrawal returns it (income).
func (s *Service) MoveFund(ctx context.Context, fundID uuid.UUID, amount float64, note string, direction fund.Direction) (*transaction.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	if direction != fund.DirectionIn && direction != fund.DirectionOut {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrValidation, direction)
	}

	f, err := s.funds.Get(ctx, fundID)
	if err != nil {
		return nil, err
	}

	if direction == fund.DirectionOut && amount > f.Current+amountEpsilon {
		return nil, fmt.Errorf("%w: withdrawal %.2f exceeds fund balance %.2f", ErrInsufficientBalance, amount, f.Current)
	}

	f.Apply(fund.Movement{
		Date:      time.Now(),
		Amount:    amount,
		Note:      note,
		Direction: direction,
	})

	txType := transaction.TypeExpense

	description := fmt.Sprintf("Deposit into %s", f.Name)
	if direction == fund.DirectionOut {
		txType = transaction.TypeIncome
		description = fmt.Sprintf("Withdrawal from %s", f.Name)
	}

	if note != "" {
		description = fmt.Sprintf("%s: %s", description, note)
	}

	tx := &transaction.Transaction{
		Date:        time.Now(),
		Category:    "Savings",
		Amount:      amount,
		Type:        txType,
		Description: description,
		Source:      &transaction.SourceRef{Kind: transaction.SourceFund, ID: f.ID},
	}

	if err := s.committer.MoveFund(ctx, f, tx); err != nil {
		return nil, fmt.Errorf("committing fund movement: %w", err)
	}

	s.bus.Publish(event.Event{Kind: event.FundChanged, EntityID: f.ID})
	s.bus.Publish(event.Event{Kind: event.TransactionChanged, EntityID: tx.ID})

	return tx, nil
}

// Summary is the aggregate dashboard over all three stores.
type Summary struct {
	Income  float64
	Expense float64
	Balance float64

	Payable    float64
	Receivable float64
	NetDebt    float64

	TotalSavings float64
	GroupSavings float64

	NetWorth float64

	Recent []*transaction.Transaction
}

// Dashboard computes the aggregate summary. It reads only; calling it twice
// with no intervening mutation returns identical results.
func (s *Service) Dashboard(ctx context.Context) (*Summary, error) {
	txSum, err := s.transactions.Summarize(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarizing transactions: %w", err)
	}

	debtSum, err := s.debts.Summarize(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarizing debts: %w", err)
	}

	savings, err := s.funds.TotalSavings(ctx)
	if err != nil {
		return nil, fmt.Errorf("totaling savings: %w", err)
	}

	groupSaved, err := s.funds.GroupSaved(ctx)
	if err != nil {
		return nil, fmt.Errorf("totaling group goals: %w", err)
	}

	recent, err := s.transactions.Recent(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("listing recent transactions: %w", err)
	}

	return &Summary{
		Income:       txSum.Income,
		Expense:      txSum.Expense,
		Balance:      txSum.Balance,
		Payable:      debtSum.Payable,
		Receivable:   debtSum.Receivable,
		NetDebt:      debtSum.Net,
		TotalSavings: savings,
		GroupSavings: groupSaved,
		NetWorth:     txSum.Balance + savings + debtSum.Net,
		Recent:       recent,
	}, nil
}
