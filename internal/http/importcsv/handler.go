package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tranqh/moneypot/internal/importer"
	"github.com/tranqh/moneypot/internal/reconcile"
	"github.com/tranqh/moneypot/internal/transaction"
)

type Handler struct {
	importSvc *importer.Service
	svc       *reconcile.Service
}

func NewHandler(importSvc *importer.Service, svc *reconcile.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		svc:       svc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/transactions", h.importCSV)
}

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Date        time.Time        `json:"date"`
	Category    string           `json:"category"`
	Amount      float64          `json:"amount"`
	Type        transaction.Type `json:"type"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatLegacyCSV
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created := make([]*transaction.Transaction, 0, len(params))

	for _, p := range params {
		tx, err := h.svc.CreateTransaction(r.Context(), p)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		created = append(created, tx)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(created)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(txs []*transaction.Transaction) importSuccessResponse {
	responses := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, transactionResponse{
			ID:          tx.ID,
			Date:        tx.Date,
			Category:    tx.Category,
			Amount:      tx.Amount,
			Type:        tx.Type,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return importSuccessResponse{
		Imported:     len(txs),
		Transactions: responses,
	}
}
