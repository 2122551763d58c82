package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1.0, cfg.Gamma)
	assert.Equal(t, uint8(1), cfg.Start)
	assert.True(t, cfg.SeedVisited)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join("charts", "utility.html"), cfg.ChartPath())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("BELLMAN_GAMMA", "")
	t.Setenv("BELLMAN_MAX_DEPTH", "")
	t.Setenv("BELLMAN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "bellman.yaml")

	cfg := DefaultConfig()
	cfg.Gamma = 0.9
	cfg.Start = 8
	cfg.Windy.BaseWind = []int{0, 1, 0}
	cfg.Windy.Cols = 3
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("BELLMAN_GAMMA", "")
	t.Setenv("BELLMAN_MAX_DEPTH", "")
	t.Setenv("BELLMAN_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("BELLMAN_GAMMA", "")
	t.Setenv("BELLMAN_MAX_DEPTH", "")
	t.Setenv("BELLMAN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "bellman.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gamma: 0.5\nlogging:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Gamma)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, uint8(1), cfg.Start)
	assert.Equal(t, 4, cfg.Windy.Rows)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bellman.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gamma: [1, 2"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BELLMAN_GAMMA", "0.25")
	t.Setenv("BELLMAN_MAX_DEPTH", "40")
	t.Setenv("BELLMAN_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Gamma)
	assert.Equal(t, 40, cfg.MaxDepth)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestConfig_EnvOverrideParseError(t *testing.T) {
	t.Setenv("BELLMAN_GAMMA", "one")
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"gamma above one", func(c *Config) { c.Gamma = 1.5 }},
		{"negative gamma", func(c *Config) { c.Gamma = -0.1 }},
		{"start zero", func(c *Config) { c.Start = 0 }},
		{"start off board", func(c *Config) { c.Start = 12 }},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }},
		{"no chart file", func(c *Config) { c.Chart.File = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
