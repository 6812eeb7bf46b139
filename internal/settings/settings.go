package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/curate-labs/imagemeta/internal/models"
)

// Defaults returns the settings used when nothing has been persisted.
func Defaults() models.Settings {
	return models.Settings{
		Language:  "en",
		Separator: "-",
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "imagemeta.yaml"
	}
	return filepath.Join(configDir, "imagemeta", "settings.yaml")
}

// Load reads persisted settings from path. A missing or malformed file
// falls back to defaults without error. Keys absent from the file keep
// their default values.
func Load(path string) models.Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults()
	}

	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		slog.Warn("Ignoring malformed settings file", "path", path, "error", err)
		return Defaults()
	}
	if s.Language == "" {
		s.Language = "en"
	}
	return s
}

// Save persists settings to path, creating parent directories as needed.
func Save(path string, s models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
