package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// SourceKind identifies the subsystem a mirrored transaction originates from.
type SourceKind string

const (
	SourceDebt SourceKind = "debt"
	SourceFund SourceKind = "fund"
)

// SourceRef links a mirrored transaction back to the debt repayment or fund
// movement that produced it. Transactions entered by hand carry no ref.
type SourceRef struct {
	Kind SourceKind
	ID   uuid.UUID
}

// Transaction represents a financial transaction. Amount is always
// non-negative; the cash-flow sign is derived from Type when aggregating.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Category    string
	Amount      float64
	Type        Type
	Role        string
	Description string
	ExpiryDate  *time.Time
	IsRecurring bool
	Cycle       string
	Source      *SourceRef
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
