package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tranqh/moneypot/internal/export"
	"github.com/tranqh/moneypot/internal/transaction"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/transactions", h.transactions)
	r.Get("/debts", h.debts)
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}

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

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment("transactions"))

	if err := h.svc.WriteTransactions(r.Context(), w, filter); err != nil {
		slog.Error("transaction export failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
	}
}

func (h *Handler) debts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment("debts"))

	if err := h.svc.WriteDebts(r.Context(), w, activeOnly); err != nil {
		slog.Error("debt export failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
	}
}

func attachment(name string) string {
	return fmt.Sprintf(`attachment; filename="%s_%s.csv"`, name, time.Now().Format("20060102"))
}
