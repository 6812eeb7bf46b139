package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curate-labs/imagemeta/internal/models"
)

func TestDirExportWritesImageAndSidecar(t *testing.T) {
	dest := t.TempDir()
	item := doneItem("a", "IMG_0001.JPG", "red-fox-in-snow")
	settings := models.Settings{Prefix: "blog", Suffix: "hero", Separator: "-"}

	count, err := NewDirExporter(dest).Export([]*models.ImageItem{item}, settings)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	img, err := os.ReadFile(filepath.Join(dest, "blog-red-fox-in-snow-hero.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bytes-of-IMG_0001.JPG"), img)

	doc, err := os.ReadFile(filepath.Join(dest, "blog-red-fox-in-snow-hero.md"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "# blog-red-fox-in-snow-hero.jpg")

	assert.True(t, item.Exported)
	assert.Equal(t, "blog-red-fox-in-snow-hero.jpg", item.FinalFileName)
}

func TestDirExportResolvesAgainstExistingFiles(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "sunset.jpg"), []byte("already here"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "sunset-2.jpg"), []byte("also here"), 0644))

	item := doneItem("a", "new.jpg", "sunset")
	_, err := NewDirExporter(dest).Export([]*models.ImageItem{item}, models.Settings{Separator: "-"})
	require.NoError(t, err)

	assert.Equal(t, "sunset-3.jpg", item.FinalFileName)

	// Pre-existing files are untouched.
	existing, err := os.ReadFile(filepath.Join(dest, "sunset.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("already here"), existing)
}

func TestDirExportCreatesDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "out")
	item := doneItem("a", "a.jpg", "harbor")

	count, err := NewDirExporter(dest).Export([]*models.ImageItem{item}, models.Settings{Separator: "-"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = os.Stat(filepath.Join(dest, "harbor.jpg"))
	assert.NoError(t, err)
}

func TestDirExportSkipsUnfinishedItems(t *testing.T) {
	dest := t.TempDir()
	pending := &models.ImageItem{ID: "p", OriginalFileName: "p.jpg", Status: models.StatusPending}

	count, err := NewDirExporter(dest).Export([]*models.ImageItem{pending}, models.Settings{Separator: "-"})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.False(t, pending.Exported)

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
