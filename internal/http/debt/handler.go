package debt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/debt"
	"github.com/tranqh/moneypot/internal/reconcile"
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
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/schedule", h.schedule)
	r.Post("/{id}/repay", h.repay)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, debt.ErrValidation), errors.Is(err, reconcile.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, debt.ErrNotFound):
		http.Error(w, "debt not found", http.StatusNotFound)
	case errors.Is(err, reconcile.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createDebtRequest struct {
	Counterparty string     `json:"counterparty"`
	Side         debt.Side  `json:"side"`
	Principal    float64    `json:"principal"`
	PaidBack     float64    `json:"paid_back"`
	InterestRate float64    `json:"interest_rate"`
	TermMonths   int        `json:"term_months"`
	StartDate    time.Time  `json:"start_date"`
	DueDate      *time.Time `json:"due_date"`
	Purpose      string     `json:"purpose"`
	Compound     bool       `json:"compound"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.AddDebt(r.Context(), debt.CreateParams{
		Counterparty: req.Counterparty,
		Side:         req.Side,
		Principal:    req.Principal,
		PaidBack:     req.PaidBack,
		InterestRate: req.InterestRate,
		TermMonths:   req.TermMonths,
		StartDate:    req.StartDate,
		DueDate:      req.DueDate,
		Purpose:      req.Purpose,
		Compound:     req.Compound,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	debts, err := h.svc.Debts(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(debts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.GetDebt(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateDebtRequest struct {
	Counterparty *string    `json:"counterparty,omitempty"`
	Side         *debt.Side `json:"side,omitempty"`
	Principal    *float64   `json:"principal,omitempty"`
	PaidBack     *float64   `json:"paid_back,omitempty"`
	InterestRate *float64   `json:"interest_rate,omitempty"`
	TermMonths   *int       `json:"term_months,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Purpose      *string    `json:"purpose,omitempty"`
	Compound     *bool      `json:"compound,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.GetDebt(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if req.Counterparty != nil {
		d.Counterparty = *req.Counterparty
	}

	if req.Side != nil {
		d.Side = *req.Side
	}

	if req.Principal != nil {
		d.Principal = *req.Principal
	}

	if req.PaidBack != nil {
		d.PaidBack = *req.PaidBack
	}

	if req.InterestRate != nil {
		d.InterestRate = *req.InterestRate
	}

	if req.TermMonths != nil {
		d.TermMonths = *req.TermMonths
	}

	if req.StartDate != nil {
		d.StartDate = *req.StartDate
	}

	if req.DueDate != nil {
		d.DueDate = req.DueDate
	}

	if req.Purpose != nil {
		d.Purpose = *req.Purpose
	}

	if req.Compound != nil {
		d.Compound = *req.Compound
	}

	if err := h.svc.UpdateDebt(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteDebt(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) schedule(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	schedule, err := h.svc.DebtSchedule(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toScheduleResponse(schedule)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type repayRequest struct {
	Amount float64 `json:"amount"`
}

type repayResponse struct {
	Debt        debtResponse       `json:"debt"`
	Transaction mirroredTxResponse `json:"transaction"`
}

func (h *Handler) repay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req repayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.RepayDebt(r.Context(), id, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	d, err := h.svc.GetDebt(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(repayResponse{Debt: toResponse(d), Transaction: toMirroredTxResponse(tx)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
