package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/curate-labs/imagemeta/internal/models"
	"github.com/curate-labs/imagemeta/internal/naming"
	"github.com/curate-labs/imagemeta/internal/sidecar"
)

// DirExporter copies completed items and their sidecar documents straight
// into a destination directory. Collisions are resolved against the files
// that actually exist there at call time; a race against concurrent external
// writers is not handled.
//
// Failure semantics are fail-fast: the first failing item aborts the pass.
// Items written before the failure stay exported — they exist on disk —
// while remaining items are left untouched.
type DirExporter struct {
	Dest      string
	Formatter *sidecar.Formatter
}

// NewDirExporter returns a DirExporter targeting dest.
func NewDirExporter(dest string) *DirExporter {
	return &DirExporter{
		Dest:      dest,
		Formatter: sidecar.New(),
	}
}

// Export writes qualifying items into the destination directory. Returns
// the number of items exported.
func (e *DirExporter) Export(items []*models.ImageItem, settings models.Settings) (int, error) {
	if err := os.MkdirAll(e.Dest, 0755); err != nil {
		return 0, fmt.Errorf("failed to create destination directory: %w", err)
	}

	count := 0
	for _, item := range items {
		if !exportable(item) {
			continue
		}

		name := naming.ResolveUnique(candidateName(item, settings), func(n string) bool {
			_, err := os.Stat(filepath.Join(e.Dest, n))
			return err == nil
		})

		if err := os.WriteFile(filepath.Join(e.Dest, name), item.Data, 0644); err != nil {
			return count, fmt.Errorf("failed to write %s: %w", name, err)
		}

		base := strings.TrimSuffix(name, naming.Extension(name))
		doc := e.Formatter.Format(name, item.Analysis)
		if err := os.WriteFile(filepath.Join(e.Dest, base+".md"), []byte(doc), 0644); err != nil {
			return count, fmt.Errorf("failed to write sidecar for %s: %w", name, err)
		}

		item.FinalFileName = name
		item.Exported = true
		count++
		slog.Info("Exported item", "file", item.OriginalFileName, "as", name)
	}

	return count, nil
}
