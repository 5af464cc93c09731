package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row and returns a populated Transaction.
// Expected column order: id, date, category, amount, type, role, description,
// expiry_date, is_recurring, cycle, source_kind, source_id, created_at, updated_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	var sourceKind sql.NullString

	var sourceID *uuid.UUID

	if err := s.Scan(
		&tx.ID, &tx.Date, &tx.Category, &tx.Amount, &typeStr, &tx.Role, &tx.Description,
		&tx.ExpiryDate, &tx.IsRecurring, &tx.Cycle,
		&sourceKind, &sourceID,
		&tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)

	if sourceKind.Valid && sourceID != nil {
		tx.Source = &transaction.SourceRef{
			Kind: transaction.SourceKind(sourceKind.String),
			ID:   *sourceID,
		}
	}

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.date, t.category, t.amount, t.type, t.role, t.description,
	t.expiry_date, t.is_recurring, t.cycle, t.source_kind, t.source_id,
	t.created_at, t.updated_at
`

func sourceColumns(tx *transaction.Transaction) (any, any) {
	if tx.Source == nil {
		return nil, nil
	}

	return string(tx.Source.Kind), tx.Source.ID
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (date, category, amount, type, role, description, expiry_date, is_recurring, cycle, source_kind, source_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`

	sourceKind, sourceID := sourceColumns(tx)

	err := s.db.QueryRowContext(ctx, query,
		tx.Date,
		tx.Category,
		tx.Amount,
		tx.Type,
		tx.Role,
		tx.Description,
		tx.ExpiryDate,
		tx.IsRecurring,
		tx.Cycle,
		sourceKind,
		sourceID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Type != nil {
		query += fmt.Sprintf(" AND t.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND t.category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY t.date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET date = $1, category = $2, amount = $3, type = $4, role = $5, description = $6,
		    expiry_date = $7, is_recurring = $8, cycle = $9, updated_at = NOW()
		WHERE id = $10
	`

	res, err := s.db.ExecContext(ctx, query,
		tx.Date,
		tx.Category,
		tx.Amount,
		tx.Type,
		tx.Role,
		tx.Description,
		tx.ExpiryDate,
		tx.IsRecurring,
		tx.Cycle,
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
