package handlers

import (
	"net/http"

	"github.com/curate-labs/imagemeta/internal/analysis"
	"github.com/curate-labs/imagemeta/internal/batch"
)

// handleProcess runs analysis for the whole batch, or for a single item when
// itemID is set. Processing is synchronous and strictly sequential; callers
// must not overlap two runs on the same batch.
func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request, b *batch.Batch, itemID string) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	provider := r.URL.Query().Get("provider")
	analyzer, err := analysis.NewAnalyzer(provider)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	processor := &batch.Processor{
		Analyzer: analyzer,
		Config: analysis.Config{
			Model:    r.URL.Query().Get("model"),
			Language: b.Settings.Language,
		},
	}

	if itemID != "" {
		// Per-item failures live on the item, not in the HTTP status.
		_ = processor.ProcessSingle(r.Context(), b, itemID)
		h.writeJSON(w, viewOf(b))
		return
	}

	if _, err := processor.ProcessAll(r.Context(), b); err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, viewOf(b))
}
