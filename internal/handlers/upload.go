package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/curate-labs/imagemeta/internal/batch"
	"github.com/curate-labs/imagemeta/internal/scan"
)

const maxUploadBytes = 10 * 1024 * 1024

// HandleUpload adds one uploaded image to a batch. The target batch comes
// from the "batch" form value; when absent, a new batch is created with the
// process-wide settings.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("files")
	if err != nil {
		file, header, err = r.FormFile("file")
		if err != nil {
			h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	defer file.Close()

	fileData, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(fileData) >= maxUploadBytes {
		h.writeError(w, "File too large (max 10MB)", http.StatusBadRequest)
		return
	}

	var b *batch.Batch
	if batchID := r.FormValue("batch"); batchID != "" {
		existing, ok := h.getBatchOrError(w, batchID)
		if !ok {
			return
		}
		b = existing
	} else {
		b = batch.New(h.settings)
		h.batchStore.Set(b.ID, b)
	}

	item := scan.NewItem(header.Filename, fileData)
	if err := b.Add(item); err != nil {
		h.writeError(w, err.Error(), http.StatusConflict)
		return
	}

	slog.Info("Image uploaded", "batch", b.ID, "item", item.ID, "file", item.OriginalFileName, "bytes", len(fileData))

	h.writeJSON(w, map[string]any{
		"batch_id": b.ID,
		"item_id":  item.ID,
		"message":  "Successfully uploaded 1 image",
	})
}
