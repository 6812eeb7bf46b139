package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curate-labs/imagemeta/internal/models"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, Defaults(), s)
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0644))

	s := Load(path)
	assert.Equal(t, Defaults(), s)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.yaml")
	want := models.Settings{
		Language:  "de",
		Prefix:    "blog",
		Suffix:    "hero",
		Separator: "_",
	}

	require.NoError(t, Save(path, want))
	assert.Equal(t, want, Load(path))
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefix: shop\n"), 0644))

	s := Load(path)
	assert.Equal(t, "shop", s.Prefix)
	assert.Equal(t, "en", s.Language)
	assert.Equal(t, "-", s.Separator)
}

func TestExplicitEmptySeparatorSurvives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \"\"\n"), 0644))

	s := Load(path)
	assert.Equal(t, "", s.Separator)
}
