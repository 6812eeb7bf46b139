package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/curate-labs/imagemeta/internal/models"
)

// Entry is one exported image in the export manifest.
type Entry struct {
	OriginalFileName string   `json:"original_file_name" parquet:"original_file_name"`
	FinalFileName    string   `json:"final_file_name" parquet:"final_file_name"`
	DescriptiveName  string   `json:"descriptive_name" parquet:"descriptive_name"`
	Title            string   `json:"title" parquet:"title"`
	Keywords         []string `json:"keywords" parquet:"keywords,list"`
	ExportedAt       string   `json:"exported_at" parquet:"exported_at"`
}

// FromItems converts the exported items of a batch into manifest entries.
// Items that did not participate in the export are left out.
func FromItems(items []*models.ImageItem, exportedAt time.Time) []Entry {
	date := exportedAt.Format("2006-01-02")

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if !item.Exported || item.Analysis == nil {
			continue
		}
		entries = append(entries, Entry{
			OriginalFileName: item.OriginalFileName,
			FinalFileName:    item.FinalFileName,
			DescriptiveName:  item.Analysis.DescriptiveName,
			Title:            item.Analysis.Title,
			Keywords:         item.Analysis.Keywords,
			ExportedAt:       date,
		})
	}
	return entries
}

// Write saves the manifest to path. The format is selected by extension:
// .jsonl for line-delimited JSON, .parquet for Parquet.
func Write(path string, entries []Entry) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return writeParquet(path, entries)
	case ".jsonl", ".json":
		return writeJSONL(path, entries)
	default:
		return fmt.Errorf("unsupported manifest format: %s (supported: .parquet, .jsonl)", filepath.Ext(path))
	}
}

func writeJSONL(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}

	enc := json.NewEncoder(f)
	for _, entry := range entries {
		if err := enc.Encode(entry); err != nil {
			f.Close()
			return fmt.Errorf("failed to write manifest entry: %w", err)
		}
	}
	return f.Close()
}

func writeParquet(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}

	w := parquet.NewGenericWriter[Entry](f)
	if _, err := w.Write(entries); err != nil {
		f.Close()
		return fmt.Errorf("failed to write manifest rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize manifest: %w", err)
	}
	return f.Close()
}
