package export

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/curate-labs/imagemeta/internal/models"
	"github.com/curate-labs/imagemeta/internal/naming"
	"github.com/curate-labs/imagemeta/internal/sidecar"
)

// ZipExporter bundles completed items and their sidecar documents into a
// single zip archive. Collisions are resolved against the names already
// assigned earlier in the same pass.
//
// Failure semantics are abort-whole-export: any write error is returned,
// the archive must be discarded, and no item is marked exported.
type ZipExporter struct {
	Formatter *sidecar.Formatter
	Now       func() time.Time
}

// NewZipExporter returns a ZipExporter using the wall clock.
func NewZipExporter() *ZipExporter {
	return &ZipExporter{
		Formatter: sidecar.New(),
		Now:       time.Now,
	}
}

// ArchiveName returns the date-stamped name for the export bundle.
func (e *ZipExporter) ArchiveName() string {
	return fmt.Sprintf("image-export-%s.zip", e.now().Format("2006-01-02"))
}

// Export writes the archive to w. Items qualify when their status is done
// and an analysis is present; everything else is skipped untouched. Items
// are marked exported, with their final file name recorded, only after the
// whole archive has been written successfully. Returns the number of items
// packaged.
func (e *ZipExporter) Export(w io.Writer, items []*models.ImageItem, settings models.Settings) (int, error) {
	zw := zip.NewWriter(w)

	used := make(map[string]bool)
	var packaged []*models.ImageItem
	var resolved []string

	for _, item := range items {
		if !exportable(item) {
			continue
		}

		name := naming.ResolveUnique(candidateName(item, settings), func(n string) bool {
			return used[n]
		})
		used[name] = true

		fw, err := zw.Create(name)
		if err != nil {
			return 0, fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
		if _, err := fw.Write(item.Data); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", name, err)
		}

		base := strings.TrimSuffix(name, naming.Extension(name))
		doc := e.formatter().Format(name, item.Analysis)
		mw, err := zw.Create(base + ".md")
		if err != nil {
			return 0, fmt.Errorf("failed to add sidecar for %s: %w", name, err)
		}
		if _, err := mw.Write([]byte(doc)); err != nil {
			return 0, fmt.Errorf("failed to write sidecar for %s: %w", name, err)
		}

		packaged = append(packaged, item)
		resolved = append(resolved, name)
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("failed to finalize archive: %w", err)
	}

	// The archive is complete; only now do items become exported.
	for i, item := range packaged {
		item.FinalFileName = resolved[i]
		item.Exported = true
	}

	slog.Info("Export archive written", "items", len(packaged), "skipped", len(items)-len(packaged))
	return len(packaged), nil
}

func (e *ZipExporter) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *ZipExporter) formatter() *sidecar.Formatter {
	if e.Formatter != nil {
		return e.Formatter
	}
	return sidecar.New()
}
