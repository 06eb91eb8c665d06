package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ">>", cfg.Prompt)
	assert.True(t, cfg.Color)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mil.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"mil>\"\ncolor: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mil>", cfg.Prompt)
	assert.False(t, cfg.Color)
	// fields the file didn't set keep their defaults
	assert.Equal(t, "MIT", cfg.License)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
