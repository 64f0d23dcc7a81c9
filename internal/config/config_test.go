package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "data", "decksmith", "catalog.toml"), cfg.Catalog)
	assert.False(t, cfg.BestOfOne)

	_, err = os.Stat(GetConfigFilePath())
	assert.NoError(t, err, "default config file should be written")
}

func TestSetCatalogPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))

	custom := filepath.Join(tmp, "custom-catalog.toml")
	require.NoError(t, SetCatalogPath(custom))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, custom, cfg.Catalog)
}

func TestGetCatalogPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))

	t.Run("flag value wins", func(t *testing.T) {
		path, err := GetCatalogPath("/tmp/override.toml")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/override.toml", path)
	})

	t.Run("falls back to config", func(t *testing.T) {
		path, err := GetCatalogPath("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmp, "data", "decksmith", "catalog.toml"), path)
	})
}
