package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/transaction"
)

type sourceResponse struct {
	Kind transaction.SourceKind `json:"kind"`
	ID   uuid.UUID              `json:"id"`
}

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Date        time.Time        `json:"date"`
	Category    string           `json:"category"`
	Amount      float64          `json:"amount"`
	Type        transaction.Type `json:"type"`
	Role        string           `json:"role,omitempty"`
	Description string           `json:"description,omitempty"`
	ExpiryDate  *time.Time       `json:"expiry_date,omitempty"`
	IsRecurring bool             `json:"is_recurring"`
	Cycle       string           `json:"cycle,omitempty"`
	Source      *sourceResponse  `json:"source,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:          tx.ID,
		Date:        tx.Date,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Role:        tx.Role,
		Description: tx.Description,
		ExpiryDate:  tx.ExpiryDate,
		IsRecurring: tx.IsRecurring,
		Cycle:       tx.Cycle,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}

	if tx.Source != nil {
		resp.Source = &sourceResponse{
			Kind: tx.Source.Kind,
			ID:   tx.Source.ID,
		}
	}

	return resp
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
