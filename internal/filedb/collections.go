package filedb

import (
	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/fund"
	"github.com/tranqh/moneypot/internal/transaction"
)

func (db *DB) loadTransactions() error {
	items, err := loadCollection(db, transactionsFile, recordToTransaction)
	db.transactions = items

	return err
}

func (db *DB) loadDebts() error {
	items, err := loadCollection(db, debtsFile, recordToDebt)
	db.debts = items

	return err
}

func (db *DB) loadFunds() error {
	items, err := loadCollection(db, fundsFile, recordToFund)
	db.funds = items

	return err
}

func (db *DB) loadGoals() error {
	items, err := loadCollection(db, goalsFile, recordToGoal)
	db.goals = items

	return err
}

// The save methods expect db.mu to be held by the caller.

func (db *DB) saveTransactions() error {
	records := make([]transactionRecord, 0, len(db.transactions))
	for _, tx := range db.transactions {
		records = append(records, transactionToRecord(tx))
	}

	return db.writeCollection(transactionsFile, records)
}

func (db *DB) saveDebts() error {
	records := make([]debtRecord, 0, len(db.debts))
	for _, d := range db.debts {
		records = append(records, debtToRecord(d))
	}

	return db.writeCollection(debtsFile, records)
}

func (db *DB) saveFunds() error {
	records := make([]fundRecord, 0, len(db.funds))
	for _, f := range db.funds {
		records = append(records, fundToRecord(f))
	}

	return db.writeCollection(fundsFile, records)
}

func (db *DB) saveGoals() error {
	records := make([]goalRecord, 0, len(db.goals))
	for _, g := range db.goals {
		records = append(records, goalToRecord(g))
	}

	return db.writeCollection(goalsFile, records)
}

// Stores hand out clones so callers can never alias the in-memory state.

func cloneTransaction(tx *transaction.Transaction) *transaction.Transaction {
	c := *tx

	if tx.ExpiryDate != nil {
		exp := *tx.ExpiryDate
		c.ExpiryDate = &exp
	}

	if tx.Source != nil {
		src := *tx.Source
		c.Source = &src
	}

	if tx.UpdatedAt != nil {
		up := *tx.UpdatedAt
		c.UpdatedAt = &up
	}

	return &c
}

func cloneDebt(d *debt.Debt) *debt.Debt {
	c := *d

	if d.DueDate != nil {
		due := *d.DueDate
		c.DueDate = &due
	}

	return &c
}

func cloneFund(f *fund.Fund) *fund.Fund {
	c := *f
	c.History = make([]fund.Movement, len(f.History))
	copy(c.History, f.History)

	return &c
}

func cloneGoal(g *fund.Goal) *fund.Goal {
	c := *g
	c.Members = make([]fund.Member, len(g.Members))
	copy(c.Members, g.Members)

	return &c
}
