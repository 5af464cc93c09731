package filedb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/transaction"
)

// TransactionStore implements transaction.Repository over the JSON files.
type TransactionStore struct {
	db *DB
}

func NewTransactionStore(db *DB) *TransactionStore {
	return &TransactionStore{db: db}
}

func (s *TransactionStore) CreateTransaction(_ context.Context, tx *transaction.Transaction) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	tx.ID = uuid.New()
	tx.CreatedAt = time.Now()

	prev := s.db.transactions
	s.db.transactions = append(s.db.transactions, cloneTransaction(tx))

	if err := s.db.saveTransactions(); err != nil {
		s.db.transactions = prev
		return fmt.Errorf("persisting transactions: %w", err)
	}

	return nil
}

func (s *TransactionStore) GetTransaction(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, tx := range s.db.transactions {
		if tx.ID == id {
			return cloneTransaction(tx), nil
		}
	}

	return nil, transaction.ErrNotFound
}

func (s *TransactionStore) ListTransactions(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	txs := make([]*transaction.Transaction, 0, len(s.db.transactions))

	for _, tx := range s.db.transactions {
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}

		if filter.Category != nil && tx.Category != *filter.Category {
			continue
		}

		if filter.StartDate != nil && tx.Date.Before(*filter.StartDate) {
			continue
		}

		if filter.EndDate != nil && tx.Date.After(*filter.EndDate) {
			continue
		}

		txs = append(txs, cloneTransaction(tx))
	}

	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })

	return txs, nil
}

func (s *TransactionStore) UpdateTransaction(_ context.Context, tx *transaction.Transaction) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, existing := range s.db.transactions {
		if existing.ID != tx.ID {
			continue
		}

		now := time.Now()
		tx.UpdatedAt = &now

		prev := existing
		s.db.transactions[i] = cloneTransaction(tx)

		if err := s.db.saveTransactions(); err != nil {
			s.db.transactions[i] = prev
			return fmt.Errorf("persisting transactions: %w", err)
		}

		return nil
	}

	return transaction.ErrNotFound
}

func (s *TransactionStore) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, existing := range s.db.transactions {
		if existing.ID != id {
			continue
		}

		prev := s.db.transactions
		s.db.transactions = append(append([]*transaction.Transaction{}, prev[:i]...), prev[i+1:]...)

		if err := s.db.saveTransactions(); err != nil {
			s.db.transactions = prev
			return fmt.Errorf("persisting transactions: %w", err)
		}

		return nil
	}

	return transaction.ErrNotFound
}
