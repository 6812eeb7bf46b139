package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/curate-labs/imagemeta/internal/models"
)

var imageExtensions = map[string]models.MediaType{
	".jpg":  models.MediaTypeJPEG,
	".jpeg": models.MediaTypeJPEG,
	".png":  models.MediaTypePNG,
	".gif":  models.MediaTypeGIF,
	".webp": models.MediaTypeWebP,
}

// ValidateDirectory reports whether path exists and is a directory.
func ValidateDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ImageFiles returns the names of the image files directly inside dir,
// sorted lexically.
func ImageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))]; ok {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// MediaTypeFor returns the media type for a file name, derived from its
// extension. Unknown extensions fall back to JPEG.
func MediaTypeFor(fileName string) models.MediaType {
	if mt, ok := imageExtensions[strings.ToLower(filepath.Ext(fileName))]; ok {
		return mt
	}
	return models.MediaTypeJPEG
}

// NewItem builds a pending item from in-memory image bytes.
func NewItem(fileName string, data []byte) *models.ImageItem {
	return &models.ImageItem{
		ID:               uuid.NewString(),
		OriginalFileName: fileName,
		Data:             data,
		MediaType:        MediaTypeFor(fileName),
		Status:           models.StatusPending,
		LoadedAt:         time.Now(),
	}
}

// LoadItem reads one image file from dir and creates a pending item for it.
func LoadItem(dir, fileName string) (*models.ImageItem, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return NewItem(fileName, data), nil
}
