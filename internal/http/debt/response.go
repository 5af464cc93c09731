package debt

import (
	"time"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/transaction"
)

type debtResponse struct {
	ID           uuid.UUID  `json:"id"`
	Counterparty string     `json:"counterparty"`
	Side         debt.Side  `json:"side"`
	Principal    float64    `json:"principal"`
	PaidBack     float64    `json:"paid_back"`
	Outstanding  float64    `json:"outstanding"`
	InterestRate float64    `json:"interest_rate"`
	TermMonths   int        `json:"term_months"`
	StartDate    time.Time  `json:"start_date"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Purpose      string     `json:"purpose,omitempty"`
	Compound     bool       `json:"compound"`
	Overdue      bool       `json:"overdue"`
}

func toResponse(d *debt.Debt) debtResponse {
	return debtResponse{
		ID:           d.ID,
		Counterparty: d.Counterparty,
		Side:         d.Side,
		Principal:    d.Principal,
		PaidBack:     d.PaidBack,
		Outstanding:  d.Outstanding(),
		InterestRate: d.InterestRate,
		TermMonths:   d.TermMonths,
		StartDate:    d.StartDate,
		DueDate:      d.DueDate,
		Purpose:      d.Purpose,
		Compound:     d.Compound,
		Overdue:      d.IsOverdue(time.Now()),
	}
}

func toResponseList(debts []*debt.Debt) []debtResponse {
	resp := make([]debtResponse, len(debts))
	for i, d := range debts {
		resp[i] = toResponse(d)
	}

	return resp
}

// mirroredTxResponse is the ledger entry created alongside a repayment.
type mirroredTxResponse struct {
	ID          uuid.UUID        `json:"id"`
	Date        time.Time        `json:"date"`
	Category    string           `json:"category"`
	Amount      float64          `json:"amount"`
	Type        transaction.Type `json:"type"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toMirroredTxResponse(tx *transaction.Transaction) mirroredTxResponse {
	return mirroredTxResponse{
		ID:          tx.ID,
		Date:        tx.Date,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
}

type installmentResponse struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Paid   bool      `json:"paid"`
}

func toScheduleResponse(schedule []debt.Installment) []installmentResponse {
	resp := make([]installmentResponse, len(schedule))
	for i, in := range schedule {
		resp[i] = installmentResponse{
			Date:   in.Date,
			Amount: in.Amount,
			Paid:   in.Paid,
		}
	}

	return resp
}
