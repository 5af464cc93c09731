package transaction

import (
	"encoding/json"
	"errors"
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
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/stats/categories", h.categoryStats)
	r.Get("/stats/monthly", h.monthlyStats)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transaction.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, transaction.ErrNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createTransactionRequest struct {
	Date        time.Time        `json:"date"`
	Category    string           `json:"category"`
	Amount      float64          `json:"amount"`
	Type        transaction.Type `json:"type"`
	Role        string           `json:"role"`
	Description string           `json:"description"`
	ExpiryDate  *time.Time       `json:"expiry_date"`
	IsRecurring bool             `json:"is_recurring"`
	Cycle       string           `json:"cycle"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.CreateTransaction(r.Context(), transaction.CreateParams{
		Date:        req.Date,
		Category:    req.Category,
		Amount:      req.Amount,
		Type:        req.Type,
		Role:        req.Role,
		Description: req.Description,
		ExpiryDate:  req.ExpiryDate,
		IsRecurring: req.IsRecurring,
		Cycle:       req.Cycle,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		typ := transaction.Type(s)
		filter.Type = &typ
	}

	if s := r.URL.Query().Get("category"); s != "" {
		category := s
		filter.Category = &category
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	txs, err := h.svc.Transactions(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTransactionRequest struct {
	Date        *time.Time        `json:"date,omitempty"`
	Category    *string           `json:"category,omitempty"`
	Amount      *float64          `json:"amount,omitempty"`
	Type        *transaction.Type `json:"type,omitempty"`
	Role        *string           `json:"role,omitempty"`
	Description *string           `json:"description,omitempty"`
	ExpiryDate  *time.Time        `json:"expiry_date,omitempty"`
	IsRecurring *bool             `json:"is_recurring,omitempty"`
	Cycle       *string           `json:"cycle,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if req.Date != nil {
		tx.Date = *req.Date
	}

	if req.Category != nil {
		tx.Category = *req.Category
	}

	if req.Amount != nil {
		tx.Amount = *req.Amount
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}

	if req.Role != nil {
		tx.Role = *req.Role
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}

	if req.ExpiryDate != nil {
		tx.ExpiryDate = req.ExpiryDate
	}

	if req.IsRecurring != nil {
		tx.IsRecurring = *req.IsRecurring
	}

	if req.Cycle != nil {
		tx.Cycle = *req.Cycle
	}

	if err := h.svc.UpdateTransaction(r.Context(), tx); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) categoryStats(w http.ResponseWriter, r *http.Request) {
	txType := transaction.Type(r.URL.Query().Get("type"))
	if txType == "" {
		txType = transaction.TypeExpense
	}

	totals, err := h.svc.CategoryBreakdown(r.Context(), txType)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(totals); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) monthlyStats(w http.ResponseWriter, r *http.Request) {
	series, err := h.svc.MonthlySeries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(series); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
