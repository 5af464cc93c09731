package filedb

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/fund"
)

// FundStore implements fund.Repository (funds and group goals) over the
// JSON files.
type FundStore struct {
	db *DB
}

func NewFundStore(db *DB) *FundStore {
	return &FundStore{db: db}
}

func (s *FundStore) CreateFund(_ context.Context, f *fund.Fund) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	f.ID = uuid.New()

	prev := s.db.funds
	s.db.funds = append(s.db.funds, cloneFund(f))

	if err := s.db.saveFunds(); err != nil {
		s.db.funds = prev
		return fmt.Errorf("persisting funds: %w", err)
	}

	return nil
}

func (s *FundStore) GetFund(_ context.Context, id uuid.UUID) (*fund.Fund, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, f := range s.db.funds {
		if f.ID == id {
			return cloneFund(f), nil
		}
	}

	return nil, fund.ErrNotFound
}

func (s *FundStore) ListFunds(_ context.Context) ([]*fund.Fund, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	funds := make([]*fund.Fund, 0, len(s.db.funds))
	for _, f := range s.db.funds {
		funds = append(funds, cloneFund(f))
	}

	return funds, nil
}

func (s *FundStore) UpdateFund(_ context.Context, f *fund.Fund) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, existing := range s.db.funds {
		if existing.ID != f.ID {
			continue
		}

		prev := existing
		s.db.funds[i] = cloneFund(f)

		if err := s.db.saveFunds(); err != nil {
			s.db.funds[i] = prev
			return fmt.Errorf("persisting funds: %w", err)
		}

		return nil
	}

	return fund.ErrNotFound
}

func (s *FundStore) DeleteFund(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, existing := range s.db.funds {
		if existing.ID != id {
			continue
		}

		prev := s.db.funds
		s.db.funds = append(append([]*fund.Fund{}, prev[:i]...), prev[i+1:]...)

		if err := s.db.saveFunds(); err != nil {
			s.db.funds = prev
			return fmt.Errorf("persisting funds: %w", err)
		}

		return nil
	}

	return fund.ErrNotFound
}

func (s *FundStore) CreateGoal(_ context.Context, g *fund.Goal) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	g.ID = uuid.New()

	prev := s.db.goals
	s.db.goals = append(s.db.goals, cloneGoal(g))

	if err := s.db.saveGoals(); err != nil {
		s.db.goals = prev
		return fmt.Errorf("persisting goals: %w", err)
	}

	return nil
}

func (s *FundStore) GetGoal(_ context.Context, id uuid.UUID) (*fund.Goal, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, g := range s.db.goals {
		if g.ID == id {
			return cloneGoal(g), nil
		}
	}

	return nil, fund.ErrNotFound
}

func (s *FundStore) ListGoals(_ context.Context) ([]*fund.Goal, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	goals := make([]*fund.Goal, 0, len(s.db.goals))
	for _, g := range s.db.goals {
		goals = append(goals, cloneGoal(g))
	}

	return goals, nil
}

func (s *FundStore) UpdateGoal(_ context.Context, g *fund.Goal) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, existing := range s.db.goals {
		if existing.ID != g.ID {
			continue
		}

		prev := existing
		s.db.goals[i] = cloneGoal(g)

		if err := s.db.saveGoals(); err != nil {
			s.db.goals[i] = prev
			return fmt.Errorf("persisting goals: %w", err)
		}

		return nil
	}

	return fund.ErrNotFound
}

func (s *FundStore) DeleteGoal(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, existing := range s.db.goals {
		if existing.ID != id {
			continue
		}

		prev := s.db.goals
		s.db.goals = append(append([]*fund.Goal{}, prev[:i]...), prev[i+1:]...)

		if err := s.db.saveGoals(); err != nil {
			s.db.goals = prev
			return fmt.Errorf("persisting goals: %w", err)
		}

		return nil
	}

	return fund.ErrNotFound
}
