package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jmcortinhal/centavo/internal/importer"
	"github.com/jmcortinhal/centavo/internal/transaction"
)

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type transactionResponse struct {
	ID       string           `json:"id"`
	Amount   float64          `json:"amount"`
	Type     transaction.Type `json:"type"`
	Category string           `json:"category"`
	Note     string           `json:"note,omitempty"`
	Date     time.Time        `json:"date"`
}

type importResponse struct {
	BatchID  uuid.UUID             `json:"batch_id"`
	Imported int                   `json:"imported"`
	Items    []transactionResponse `json:"items"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	batchID := uuid.New()

	txs, err := h.txSvc.CreateBatch(r.Context(), params)
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidAmount) || errors.Is(err, transaction.ErrInvalidType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	slog.Info("imported transactions", "batch_id", batchID, "count", len(txs))

	items := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		items[i] = transactionResponse{
			ID:       tx.ID,
			Amount:   tx.Amount,
			Type:     tx.Type,
			Category: tx.Category,
			Note:     tx.Note,
			Date:     tx.Date,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{
		BatchID:  batchID,
		Imported: len(txs),
		Items:    items,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
