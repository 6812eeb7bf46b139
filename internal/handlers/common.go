package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/curate-labs/imagemeta/internal/batch"
	"github.com/curate-labs/imagemeta/internal/models"
	"github.com/curate-labs/imagemeta/internal/storage"
)

type Handler struct {
	batchStore *storage.BatchStore
	settings   models.Settings
}

// New creates a handler whose new batches start from the given settings.
func New(settings models.Settings) *Handler {
	return &Handler{
		batchStore: storage.New(),
		settings:   settings,
	}
}

// batchView is the JSON shape of a batch. Image bytes never leave the
// process through this view.
type batchView struct {
	ID        string              `json:"id"`
	Settings  models.Settings     `json:"settings"`
	CreatedAt time.Time           `json:"created_at"`
	Items     []*models.ImageItem `json:"items"`
}

func viewOf(b *batch.Batch) batchView {
	return batchView{
		ID:        b.ID,
		Settings:  b.Settings,
		CreatedAt: b.CreatedAt,
		Items:     b.Items(),
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

func (h *Handler) getBatchOrError(w http.ResponseWriter, batchID string) (*batch.Batch, bool) {
	b, exists := h.batchStore.Get(batchID)
	if !exists {
		h.writeError(w, "Batch not found", http.StatusNotFound)
		return nil, false
	}
	return b, true
}
