package filedb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/fund"
	"github.com/tranqh/moneypot/internal/reconcile"
	"github.com/tranqh/moneypot/internal/transaction"
)

// Committer applies dual-entry writes to the file backend. Both collections
// are mutated in memory first and flushed entity-file-first; if the mirror
// flush fails the entity file is rewritten from the restored state, so the
// operation either fully applies or fully rolls back. Only when that
// compensating rewrite also fails are the files left disagreeing, surfaced
// as ErrInconsistentState.
type Committer struct {
	db *DB
}

func NewCommitter(db *DB) *Committer {
	return &Committer{db: db}
}

func (c *Committer) RepayDebt(_ context.Context, d *debt.Debt, tx *transaction.Transaction) error {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	idx := -1

	for i, existing := range c.db.debts {
		if existing.ID == d.ID {
			idx = i
			break
		}
	}

	if idx == -1 {
		return debt.ErrNotFound
	}

	tx.ID = uuid.New()
	tx.CreatedAt = time.Now()

	prevDebt := c.db.debts[idx]
	prevTxs := c.db.transactions

	c.db.debts[idx] = cloneDebt(d)
	c.db.transactions = append(c.db.transactions, cloneTransaction(tx))

	if err := c.db.saveDebts(); err != nil {
		c.db.debts[idx] = prevDebt
		c.db.transactions = prevTxs

		return fmt.Errorf("persisting debts: %w", err)
	}

	if err := c.db.saveTransactions(); err != nil {
		c.db.debts[idx] = prevDebt
		c.db.transactions = prevTxs

		if compErr := c.db.saveDebts(); compErr != nil {
			return fmt.Errorf("%w: debt written but mirror failed (%v), rollback failed: %v",
				reconcile.ErrInconsistentState, err, compErr)
		}

		return fmt.Errorf("persisting mirrored transaction: %w", err)
	}

	return nil
}

func (c *Committer) MoveFund(_ context.Context, f *fund.Fund, tx *transaction.Transaction) error {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	idx := -1

	for i, existing := range c.db.funds {
		if existing.ID == f.ID {
			idx = i
			break
		}
	}

	if idx == -1 {
		return fund.ErrNotFound
	}

	tx.ID = uuid.New()
	tx.CreatedAt = time.Now()

	prevFund := c.db.funds[idx]
	prevTxs := c.db.transactions

	c.db.funds[idx] = cloneFund(f)
	c.db.transactions = append(c.db.transactions, cloneTransaction(tx))

	if err := c.db.saveFunds(); err != nil {
		c.db.funds[idx] = prevFund
		c.db.transactions = prevTxs

		return fmt.Errorf("persisting funds: %w", err)
	}

	if err := c.db.saveTransactions(); err != nil {
		c.db.funds[idx] = prevFund
		c.db.transactions = prevTxs

		if compErr := c.db.saveFunds(); compErr != nil {
			return fmt.Errorf("%w: fund written but mirror failed (%v), rollback failed: %v",
				reconcile.ErrInconsistentState, err, compErr)
		}

		return fmt.Errorf("persisting mirrored transaction: %w", err)
	}

	return nil
}
