package fund

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fund
type Repository interface {
	CreateFund(ctx context.Context, f *Fund) error
	GetFund(ctx context.Context, id uuid.UUID) (*Fund, error)
	ListFunds(ctx context.Context) ([]*Fund, error)
	UpdateFund(ctx context.Context, f *Fund) error
	DeleteFund(ctx context.Context, id uuid.UUID) error

	CreateGoal(ctx context.Context, g *Goal) error
	GetGoal(ctx context.Context, id uuid.UUID) (*Goal, error)
	ListGoals(ctx context.Context) ([]*Goal, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name   string
	Type   Type
	Target float64
	Icon   string
}

// Create opens a new fund with a zero balance and empty history. Deposits
// and withdrawals go through the reconciliation layer, never through here.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Fund, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if params.Type != TypeGoal && params.Type != TypeMonthly && params.Type != TypePool {
		return nil, fmt.Errorf("%w: unknown type %q", ErrValidation, params.Type)
	}

	if params.Target < 0 {
		return nil, fmt.Errorf("%w: target must not be negative", ErrValidation)
	}

	f := &Fund{
		Name:   params.Name,
		Type:   params.Type,
		Target: params.Target,
		Icon:   params.Icon,
	}
	if err := s.repo.CreateFund(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Fund, error) {
	return s.repo.GetFund(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Fund, error) {
	return s.repo.ListFunds(ctx)
}

// Rename updates the descriptive fields of a fund. Balance and history are
// deliberately untouched; they only change through applied movements.
func (s *Service) Rename(ctx context.Context, id uuid.UUID, name string, target float64, icon string) (*Fund, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	f, err := s.repo.GetFund(ctx, id)
	if err != nil {
		return nil, err
	}

	f.Name = name
	f.Target = target
	f.Icon = icon

	if err := s.repo.UpdateFund(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

// Delete removes a fund. History is not retained after deletion.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteFund(ctx, id)
}

// TotalSavings sums the current balance across all personal funds.
func (s *Service) TotalSavings(ctx context.Context) (float64, error) {
	funds, err := s.repo.ListFunds(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing funds: %w", err)
	}

	var total float64
	for _, f := range funds {
		total += f.Current
	}

	return total, nil
}

type GoalParams struct {
	Name   string
	Target float64
}

func (s *Service) CreateGoal(ctx context.Context, params GoalParams) (*Goal, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if params.Target < 0 {
		return nil, fmt.Errorf("%w: target must not be negative", ErrValidation)
	}

	g := &Goal{Name: params.Name, Target: params.Target}
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Service) ListGoals(ctx context.Context) ([]*Goal, error) {
	return s.repo.ListGoals(ctx)
}

func (s *Service) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, id)
}

// Contribute records a member's payment into a group goal, creating the
// member entry on first contribution.
func (s *Service) Contribute(ctx context.Context, goalID uuid.UUID, member string, amount float64) (*Goal, error) {
	if member == "" {
		return nil, fmt.Errorf("%w: member name is required", ErrValidation)
	}

	if amount <= 0 {
		return nil, fmt.Errorf("%w: contribution must be positive", ErrValidation)
	}

	g, err := s.repo.GetGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	found := false

	for i := range g.Members {
		if g.Members[i].Name == member {
			g.Members[i].Contribution += amount
			found = true

			break
		}
	}

	if !found {
		g.Members = append(g.Members, Member{Name: member, Contribution: amount})
	}

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// GroupSaved totals member contributions across all group goals.
func (s *Service) GroupSaved(ctx context.Context) (float64, error) {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing goals: %w", err)
	}

	var total float64
	for _, g := range goals {
		total += g.Saved()
	}

	return total, nil
}
