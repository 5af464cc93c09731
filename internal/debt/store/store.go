package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/debt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, counterparty, side, principal, paid_back,
// interest_rate, term_months, start_date, due_date, purpose, compound
func scanDebt(s scanner) (*debt.Debt, error) {
	var d debt.Debt

	var sideStr string

	if err := s.Scan(
		&d.ID, &d.Counterparty, &sideStr, &d.Principal, &d.PaidBack,
		&d.InterestRate, &d.TermMonths, &d.StartDate, &d.DueDate,
		&d.Purpose, &d.Compound,
	); err != nil {
		return nil, err
	}

	d.Side = debt.Side(sideStr)

	return &d, nil
}

const selectDebtColumns = `
	id, counterparty, side, principal, paid_back, interest_rate,
	term_months, start_date, due_date, purpose, compound
`

func (s *Store) CreateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		INSERT INTO debts (counterparty, side, principal, paid_back, interest_rate, term_months, start_date, due_date, purpose, compound)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		d.Counterparty,
		d.Side,
		d.Principal,
		d.PaidBack,
		d.InterestRate,
		d.TermMonths,
		d.StartDate,
		d.DueDate,
		d.Purpose,
		d.Compound,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("creating debt: %w", err)
	}

	return nil
}

func (s *Store) GetDebt(ctx context.Context, id uuid.UUID) (*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + ` FROM debts WHERE id = $1`

	d, err := scanDebt(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, debt.ErrNotFound
		}

		return nil, fmt.Errorf("getting debt: %w", err)
	}

	return d, nil
}

func (s *Store) ListDebts(ctx context.Context) ([]*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + ` FROM debts ORDER BY start_date ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing debts: %w", err)
	}
	defer rows.Close()

	var debts []*debt.Debt

	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning debt: %w", err)
		}

		debts = append(debts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating debt rows: %w", err)
	}

	return debts, nil
}

func (s *Store) UpdateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		UPDATE debts
		SET counterparty = $1, side = $2, principal = $3, paid_back = $4, interest_rate = $5,
		    term_months = $6, start_date = $7, due_date = $8, purpose = $9, compound = $10
		WHERE id = $11
	`

	res, err := s.db.ExecContext(ctx, query,
		d.Counterparty,
		d.Side,
		d.Principal,
		d.PaidBack,
		d.InterestRate,
		d.TermMonths,
		d.StartDate,
		d.DueDate,
		d.Purpose,
		d.Compound,
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating debt: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating debt: %w", err)
	}

	if affected == 0 {
		return debt.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteDebt(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting debt: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting debt: %w", err)
	}

	if affected == 0 {
		return debt.ErrNotFound
	}

	return nil
}
