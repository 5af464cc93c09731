package fund

import (
	"time"

	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/fund"
	"github.com/tranqh/moneypot/internal/transaction"
)

type movementResponse struct {
	Date      time.Time      `json:"date"`
	Amount    float64        `json:"amount"`
	Note      string         `json:"note,omitempty"`
	Direction fund.Direction `json:"direction"`
}

type fundResponse struct {
	ID      uuid.UUID          `json:"id"`
	Name    string             `json:"name"`
	Type    fund.Type          `json:"type"`
	Target  float64            `json:"target"`
	Current float64            `json:"current"`
	Icon    string             `json:"icon,omitempty"`
	History []movementResponse `json:"history"`
}

func toResponse(f *fund.Fund) fundResponse {
	history := make([]movementResponse, len(f.History))
	for i, mv := range f.History {
		history[i] = movementResponse{
			Date:      mv.Date,
			Amount:    mv.Amount,
			Note:      mv.Note,
			Direction: mv.Direction,
		}
	}

	return fundResponse{
		ID:      f.ID,
		Name:    f.Name,
		Type:    f.Type,
		Target:  f.Target,
		Current: f.Current,
		Icon:    f.Icon,
		History: history,
	}
}

func toResponseList(funds []*fund.Fund) []fundResponse {
	resp := make([]fundResponse, len(funds))
	for i, f := range funds {
		resp[i] = toResponse(f)
	}

	return resp
}

type memberResponse struct {
	Name         string  `json:"name"`
	Contribution float64 `json:"contribution"`
}

type goalResponse struct {
	ID      uuid.UUID        `json:"id"`
	Name    string           `json:"name"`
	Target  float64          `json:"target"`
	Saved   float64          `json:"saved"`
	Members []memberResponse `json:"members"`
}

func toGoalResponse(g *fund.Goal) goalResponse {
	members := make([]memberResponse, len(g.Members))
	for i, m := range g.Members {
		members[i] = memberResponse{Name: m.Name, Contribution: m.Contribution}
	}

	return goalResponse{
		ID:      g.ID,
		Name:    g.Name,
		Target:  g.Target,
		Saved:   g.Saved(),
		Members: members,
	}
}

func toGoalResponseList(goals []*fund.Goal) []goalResponse {
	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toGoalResponse(g)
	}

	return resp
}

// mirroredTxResponse is the ledger entry created alongside a fund movement.
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
