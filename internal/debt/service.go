package debt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=debt
type Repository interface {
	CreateDebt(ctx context.Context, d *Debt) error
	GetDebt(ctx context.Context, id uuid.UUID) (*Debt, error)
	ListDebts(ctx context.Context) ([]*Debt, error)
	UpdateDebt(ctx context.Context, d *Debt) error
	DeleteDebt(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo   Repository
	policy SchedulePolicy
}

func NewService(repo Repository, policy SchedulePolicy) *Service {
	if policy == "" {
		policy = StepFixed30
	}

	return &Service{repo: repo, policy: policy}
}

type CreateParams struct {
	Counterparty string
	Side         Side
	Principal    float64
	PaidBack     float64
	InterestRate float64
	TermMonths   int
	StartDate    time.Time
	DueDate      *time.Time
	Purpose      string
	Compound     bool
}

// Summary aggregates outstanding amounts by side. Net follows the
// receivable-minus-payable convention used by the dashboard.
type Summary struct {
	Payable    float64
	Receivable float64
	Net        float64
}

func (p CreateParams) validate() error {
	if p.Counterparty == "" {
		return fmt.Errorf("%w: counterparty is required", ErrValidation)
	}

	if p.Side != SidePayable && p.Side != SideReceivable {
		return fmt.Errorf("%w: unknown side %q", ErrValidation, p.Side)
	}

	if p.Principal < 0 {
		return fmt.Errorf("%w: principal must not be negative", ErrValidation)
	}

	if p.PaidBack < 0 {
		return fmt.Errorf("%w: paid_back must not be negative", ErrValidation)
	}

	if p.InterestRate < 0 {
		return fmt.Errorf("%w: interest rate must not be negative", ErrValidation)
	}

	if p.TermMonths < 0 {
		return fmt.Errorf("%w: term must not be negative", ErrValidation)
	}

	if p.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrValidation)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Debt, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	d := &Debt{
		Counterparty: params.Counterparty,
		Side:         params.Side,
		Principal:    params.Principal,
		PaidBack:     params.PaidBack,
		InterestRate: params.InterestRate,
		TermMonths:   params.TermMonths,
		StartDate:    params.StartDate,
		DueDate:      params.DueDate,
		Purpose:      params.Purpose,
		Compound:     params.Compound,
	}
	if err := s.repo.CreateDebt(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Debt, error) {
	return s.repo.GetDebt(ctx, id)
}

// List returns all debts; with activeOnly set, only debts that still have
// money outstanding.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*Debt, error) {
	debts, err := s.repo.ListDebts(ctx)
	if err != nil {
		return nil, err
	}

	if !activeOnly {
		return debts, nil
	}

	active := make([]*Debt, 0, len(debts))

	for _, d := range debts {
		if d.Outstanding() > 0 {
			active = append(active, d)
		}
	}

	return active, nil
}

// Update replaces a debt record wholesale. PaidBack above Principal stays
// representable here; only the repay path rejects overpayment.
func (s *Service) Update(ctx context.Context, d *Debt) error {
	if d.Counterparty == "" {
		return fmt.Errorf("%w: counterparty is required", ErrValidation)
	}

	if d.Principal < 0 || d.PaidBack < 0 {
		return fmt.Errorf("%w: amounts must not be negative", ErrValidation)
	}

	return s.repo.UpdateDebt(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDebt(ctx, id)
}

// Schedule returns the amortization schedule for a debt under the service's
// configured stepping policy.
func (s *Service) Schedule(ctx context.Context, id uuid.UUID) ([]Installment, error) {
	d, err := s.repo.GetDebt(ctx, id)
	if err != nil {
		return nil, err
	}

	return d.RepaymentSchedule(s.policy), nil
}

// Summarize totals outstanding amounts by side across the whole ledger.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	debts, err := s.repo.ListDebts(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("listing debts: %w", err)
	}

	var sum Summary

	for _, d := range debts {
		switch d.Side {
		case SidePayable:
			sum.Payable += d.Outstanding()
		case SideReceivable:
			sum.Receivable += d.Outstanding()
		}
	}

	sum.Net = sum.Receivable - sum.Payable

	return sum, nil
}
