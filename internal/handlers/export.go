package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/curate-labs/imagemeta/internal/batch"
	"github.com/curate-labs/imagemeta/internal/export"
)

// handleExport builds the export archive for a batch and streams it back as
// a download. The archive is assembled in memory first so that a packaging
// failure can still produce a proper error response, and so no item is
// marked exported when the archive is never delivered.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request, b *batch.Batch) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	exporter := export.NewZipExporter()

	var buf bytes.Buffer
	count, err := exporter.Export(&buf, b.Items(), b.Settings)
	if err != nil {
		h.writeError(w, "Export failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if count == 0 {
		h.writeError(w, "No completed items to export", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exporter.ArchiveName()+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}
