package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "Demo"
width = 640
height = 480
vsync = false
clear_color = [0.0, 0.0, 0.0, 1.0]
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.False(t, cfg.VSync)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.ClearColor)
	// untouched keys keep defaults
	assert.Equal(t, DefaultConfig().AssetRoot, cfg.AssetRoot)
}

func TestLoadConfigRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = "), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
