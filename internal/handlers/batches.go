package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/curate-labs/imagemeta/internal/batch"
	"github.com/curate-labs/imagemeta/internal/models"
)

func (h *Handler) HandleBatches(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		batches := h.batchStore.GetAll()
		views := make([]batchView, 0, len(batches))
		for _, b := range batches {
			views = append(views, viewOf(b))
		}
		h.writeJSON(w, views)
	case "POST":
		settings := h.settings
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
				h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
				return
			}
		}
		b := batch.New(settings)
		h.batchStore.Set(b.ID, b)
		h.writeJSON(w, viewOf(b))
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleBatchDetail routes everything under /api/batches/{id}:
//
//	GET    /api/batches/{id}                      batch state
//	DELETE /api/batches/{id}                      tear the batch down
//	POST   /api/batches/{id}/process              analyze all pending items
//	GET    /api/batches/{id}/export               download the export archive
//	PUT    /api/batches/{id}/items/{item}         edit one analysis field
//	DELETE /api/batches/{id}/items/{item}         remove one item
//	POST   /api/batches/{id}/items/{item}/process analyze one item
func (h *Handler) HandleBatchDetail(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/batches/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		h.writeError(w, "Batch id required", http.StatusBadRequest)
		return
	}

	b, ok := h.getBatchOrError(w, parts[0])
	if !ok {
		return
	}

	switch {
	case len(parts) == 1:
		h.handleBatch(w, r, b)
	case len(parts) == 2 && parts[1] == "process":
		h.handleProcess(w, r, b, "")
	case len(parts) == 2 && parts[1] == "export":
		h.handleExport(w, r, b)
	case len(parts) == 3 && parts[1] == "items":
		h.handleItem(w, r, b, parts[2])
	case len(parts) == 4 && parts[1] == "items" && parts[3] == "process":
		h.handleProcess(w, r, b, parts[2])
	default:
		h.writeError(w, "Not found", http.StatusNotFound)
	}
}

func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request, b *batch.Batch) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, viewOf(b))
	case "DELETE":
		b.Reset()
		h.batchStore.Delete(b.ID)
		w.WriteHeader(http.StatusNoContent)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleItem(w http.ResponseWriter, r *http.Request, b *batch.Batch, itemID string) {
	item, exists := b.Get(itemID)
	if !exists {
		h.writeError(w, "Item not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case "PUT":
		if item.Analysis == nil {
			h.writeError(w, "Item has no analysis to edit", http.StatusConflict)
			return
		}
		var edit models.FieldEdit
		if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := item.Analysis.Apply(edit); err != nil {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeJSON(w, item)
	case "DELETE":
		b.Remove(itemID)
		w.WriteHeader(http.StatusNoContent)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
