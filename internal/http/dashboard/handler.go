package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/reconcile"
	"github.com/tranqh/moneypot/internal/transaction"
)

type Handler struct {
	svc *reconcile.Service
}

func NewHandler(svc *reconcile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type recentTxResponse struct {
	ID          uuid.UUID        `json:"id"`
	Date        time.Time        `json:"date"`
	Category    string           `json:"category"`
	Amount      float64          `json:"amount"`
	Type        transaction.Type `json:"type"`
	Description string           `json:"description,omitempty"`
}

type summaryResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`

	Payable    float64 `json:"payable"`
	Receivable float64 `json:"receivable"`
	NetDebt    float64 `json:"net_debt"`

	TotalSavings float64 `json:"total_savings"`
	GroupSavings float64 `json:"group_savings"`

	NetWorth float64 `json:"net_worth"`

	Recent []recentTxResponse `json:"recent"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Dashboard(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	recent := make([]recentTxResponse, len(sum.Recent))
	for i, tx := range sum.Recent {
		recent[i] = recentTxResponse{
			ID:          tx.ID,
			Date:        tx.Date,
			Category:    tx.Category,
			Amount:      tx.Amount,
			Type:        tx.Type,
			Description: tx.Description,
		}
	}

	resp := summaryResponse{
		Income:       sum.Income,
		Expense:      sum.Expense,
		Balance:      sum.Balance,
		Payable:      sum.Payable,
		Receivable:   sum.Receivable,
		NetDebt:      sum.NetDebt,
		TotalSavings: sum.TotalSavings,
		GroupSavings: sum.GroupSavings,
		NetWorth:     sum.NetWorth,
		Recent:       recent,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
