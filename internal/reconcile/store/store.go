package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/fund"
	"github.com/tranqh/moneypot/internal/transaction"
)

// Committer applies dual-entry writes on Postgres. Both sides of a write go
// through a single sql.Tx, so the ledger and its mirror commit or roll back
// together.
type Committer struct {
	db *sql.DB
}

func NewCommitter(db *sql.DB) *Committer {
	return &Committer{db: db}
}

func sourceColumns(tx *transaction.Transaction) (any, any) {
	if tx.Source == nil {
		return nil, nil
	}

	return string(tx.Source.Kind), tx.Source.ID
}

func insertTransaction(ctx context.Context, sqlTx *sql.Tx, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (date, category, amount, type, role, description, expiry_date, is_recurring, cycle, source_kind, source_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`

	sourceKind, sourceID := sourceColumns(tx)

	err := sqlTx.QueryRowContext(ctx, query,
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
		return fmt.Errorf("inserting mirrored transaction: %w", err)
	}

	return nil
}

func (c *Committer) RepayDebt(ctx context.Context, d *debt.Debt, tx *transaction.Transaction) error {
	sqlTx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer sqlTx.Rollback()

	res, err := sqlTx.ExecContext(ctx, `UPDATE debts SET paid_back = $1 WHERE id = $2`, d.PaidBack, d.ID)
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

	if err := insertTransaction(ctx, sqlTx, tx); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("committing repayment: %w", err)
	}

	return nil
}

func (c *Committer) MoveFund(ctx context.Context, f *fund.Fund, tx *transaction.Transaction) error {
	sqlTx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer sqlTx.Rollback()

	res, err := sqlTx.ExecContext(ctx, `UPDATE funds SET current = $1 WHERE id = $2`, f.Current, f.ID)
	if err != nil {
		return fmt.Errorf("updating fund: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating fund: %w", err)
	}

	if affected == 0 {
		return fund.ErrNotFound
	}

	// The service appends the new movement before committing.
	mv := f.History[len(f.History)-1]

	if _, err := sqlTx.ExecContext(ctx,
		`INSERT INTO fund_movements (fund_id, date, amount, note, direction) VALUES ($1, $2, $3, $4, $5)`,
		f.ID, mv.Date, mv.Amount, mv.Note, mv.Direction,
	); err != nil {
		return fmt.Errorf("inserting fund movement: %w", err)
	}

	if err := insertTransaction(ctx, sqlTx, tx); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("committing fund movement: %w", err)
	}

	return nil
}
