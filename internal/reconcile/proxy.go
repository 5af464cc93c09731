package reconcile

import (
	"context"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/event"
	"github.com/tranqh/moneypot/internal/fund"
	"github.com/tranqh/moneypot/internal/transaction"
)

// The presentation layer talks only to this package, so plain single-store
// CRUD is proxied here too. Each mutation publishes a change event; reads
// pass straight through.

func (s *Service) CreateTransaction(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	tx, err := s.transactions.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(event.Event{Kind: event.TransactionChanged, EntityID: tx.ID})

	return tx, nil
}

func (s *Service) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	return s.transactions.Get(ctx, id)
}

func (s *Service) Transactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	return s.transactions.List(ctx, filter)
}

func (s *Service) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	if err := s.transactions.Update(ctx, tx); err != nil {
		return err
	}

	s.bus.Publish(event.Event{Kind: event.TransactionChanged, EntityID: tx.ID})

	return nil
}

func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if err := s.transactions.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(event.Event{Kind: event.TransactionChanged, EntityID: id})

	return nil
}

func (s *Service) CategoryBreakdown(ctx context.Context, txType transaction.Type) (map[string]float64, error) {
	return s.transactions.CategoryBreakdown(ctx, txType)
}

func (s *Service) MonthlySeries(ctx context.Context) ([]transaction.MonthTotal, error) {
	return s.transactions.MonthlySeries(ctx)
}

func (s *Service) AddDebt(ctx context.Context, params debt.CreateParams) (*debt.Debt, error) {
	d, err := s.debts.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(event.Event{Kind: event.DebtChanged, EntityID: d.ID})

	return d, nil
}

func (s *Service) GetDebt(ctx context.Context, id uuid.UUID) (*debt.Debt, error) {
	return s.debts.Get(ctx, id)
}

func (s *Service) Debts(ctx context.Context, activeOnly bool) ([]*debt.Debt, error) {
	return s.debts.List(ctx, activeOnly)
}

func (s *Service) UpdateDebt(ctx context.Context, d *debt.Debt) error {
	if err := s.debts.Update(ctx, d); err != nil {
		return err
	}

	s.bus.Publish(event.Event{Kind: event.DebtChanged, EntityID: d.ID})

	return nil
}

func (s *Service) DeleteDebt(ctx context.Context, id uuid.UUID) error {
	if err := s.debts.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(event.Event{Kind: event.DebtChanged, EntityID: id})

	return nil
}

func (s *Service) DebtSchedule(ctx context.Context, id uuid.UUID) ([]debt.Installment, error) {
	return s.debts.Schedule(ctx, id)
}

func (s *Service) CreateFund(ctx context.Context, params fund.CreateParams) (*fund.Fund, error) {
	f, err := s.funds.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(event.Event{Kind: event.FundChanged, EntityID: f.ID})

	return f, nil
}

func (s *Service) GetFund(ctx context.Context, id uuid.UUID) (*fund.Fund, error) {
	return s.funds.Get(ctx, id)
}

func (s *Service) Funds(ctx context.Context) ([]*fund.Fund, error) {
	return s.funds.List(ctx)
}

func (s *Service) RenameFund(ctx context.Context, id uuid.UUID, name string, target float64, icon string) (*fund.Fund, error) {
	f, err := s.funds.Rename(ctx, id, name, target, icon)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(event.Event{Kind: event.FundChanged, EntityID: f.ID})

	return f, nil
}

func (s *Service) DeleteFund(ctx context.Context, id uuid.UUID) error {
	if err := s.funds.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(event.Event{Kind: event.FundChanged, EntityID: id})

	return nil
}

func (s *Service) CreateGoal(ctx context.Context, params fund.GoalParams) (*fund.Goal, error) {
	g, err := s.funds.CreateGoal(ctx, params)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(event.Event{Kind: event.FundChanged, EntityID: g.ID})

	return g, nil
}

func (s *Service) Goals(ctx context.Context) ([]*fund.Goal, error) {
	return s.funds.ListGoals(ctx)
}

func (s *Service) Contribute(ctx context.Context, goalID uuid.UUID, member string, amount float64) (*fund.Goal, error) {
	g, err := s.funds.Contribute(ctx, goalID, member, amount)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(event.Event{Kind: event.FundChanged, EntityID: g.ID})

	return g, nil
}

func (s *Service) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	if err := s.funds.DeleteGoal(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(event.Event{Kind: event.FundChanged, EntityID: id})

	return nil
}
