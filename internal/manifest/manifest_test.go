package manifest

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curate-labs/imagemeta/internal/models"
)

func exportedItems() []*models.ImageItem {
	return []*models.ImageItem{
		{
			OriginalFileName: "IMG_0001.JPG",
			FinalFileName:    "blog-red-fox-hero.jpg",
			Status:           models.StatusDone,
			Exported:         true,
			Analysis: &models.ImageAnalysis{
				DescriptiveName: "red-fox",
				Title:           "Red Fox",
				Keywords:        []string{"fox", "wildlife"},
			},
		},
		{
			// Never exported; must not appear in the manifest.
			OriginalFileName: "skipped.png",
			Status:           models.StatusError,
			Error:            "timeout",
		},
	}
}

func TestFromItems(t *testing.T) {
	entries := FromItems(exportedItems(), time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	require.Len(t, entries, 1)
	assert.Equal(t, "IMG_0001.JPG", entries[0].OriginalFileName)
	assert.Equal(t, "blog-red-fox-hero.jpg", entries[0].FinalFileName)
	assert.Equal(t, "red-fox", entries[0].DescriptiveName)
	assert.Equal(t, []string{"fox", "wildlife"}, entries[0].Keywords)
	assert.Equal(t, "2026-03-14", entries[0].ExportedAt)
}

func TestWriteJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.jsonl")
	entries := FromItems(exportedItems(), time.Now())
	require.NoError(t, Write(path, entries))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var got []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		got = append(got, e)
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, entries, got)
}

func TestWriteParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.parquet")
	require.NoError(t, Write(path, FromItems(exportedItems(), time.Now())))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteUnsupportedFormat(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "manifest.csv"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported manifest format")
}
