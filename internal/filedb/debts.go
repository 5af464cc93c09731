package filedb

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/debt"
)

// DebtStore implements debt.Repository over the JSON files.
type DebtStore struct {
	db *DB
}

func NewDebtStore(db *DB) *DebtStore {
	return &DebtStore{db: db}
}

func (s *DebtStore) CreateDebt(_ context.Context, d *debt.Debt) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	d.ID = uuid.New()

	prev := s.db.debts
	s.db.debts = append(s.db.debts, cloneDebt(d))

	if err := s.db.saveDebts(); err != nil {
		s.db.debts = prev
		return fmt.Errorf("persisting debts: %w", err)
	}

	return nil
}

func (s *DebtStore) GetDebt(_ context.Context, id uuid.UUID) (*debt.Debt, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, d := range s.db.debts {
		if d.ID == id {
			return cloneDebt(d), nil
		}
	}

	return nil, debt.ErrNotFound
}

func (s *DebtStore) ListDebts(_ context.Context) ([]*debt.Debt, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	debts := make([]*debt.Debt, 0, len(s.db.debts))
	for _, d := range s.db.debts {
		debts = append(debts, cloneDebt(d))
	}

	return debts, nil
}

func (s *DebtStore) UpdateDebt(_ context.Context, d *debt.Debt) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, existing := range s.db.debts {
		if existing.ID != d.ID {
			continue
		}

		prev := existing
		s.db.debts[i] = cloneDebt(d)

		if err := s.db.saveDebts(); err != nil {
			s.db.debts[i] = prev
			return fmt.Errorf("persisting debts: %w", err)
		}

		return nil
	}

	return debt.ErrNotFound
}

func (s *DebtStore) DeleteDebt(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, existing := range s.db.debts {
		if existing.ID != id {
			continue
		}

		prev := s.db.debts
		s.db.debts = append(append([]*debt.Debt{}, prev[:i]...), prev[i+1:]...)

		if err := s.db.saveDebts(); err != nil {
			s.db.debts = prev
			return fmt.Errorf("persisting debts: %w", err)
		}

		return nil
	}

	return debt.ErrNotFound
}
