package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 800.0, cfg.Viewport.Width)
	assert.Equal(t, 600.0, cfg.Viewport.Height)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "boxlayout", cfg.Logger.ServiceName)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Equal(t, 4, cfg.Workers)
}

func TestConfigValidation(t *testing.T) {
	tests := map[string]struct {
		mutate func(c *Config)
		msg    string
	}{
		"zero viewport": {
			mutate: func(c *Config) { c.Viewport.Width = 0 },
			msg:    "viewport must be positive",
		},
		"unknown output": {
			mutate: func(c *Config) { c.Output.Format = "xml" },
			msg:    "output.format",
		},
		"negative precision": {
			mutate: func(c *Config) { c.Output.Precision = -1 },
			msg:    "output.precision",
		},
		"unknown log format": {
			mutate: func(c *Config) { c.Logger.Format = "logfmt" },
			msg:    "logger.format",
		},
		"no workers": {
			mutate: func(c *Config) { c.Workers = 0 },
			msg:    "workers",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			require.NoError(t, cfg.Validate())
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("viewport:\n  width: 1024\noutput:\n  format: json\n"), 0o644))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, cfg.Viewport.Width)
	assert.Equal(t, 600.0, cfg.Viewport.Height, "unset keys keep their defaults")
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BOXLAYOUT_VIEWPORT_HEIGHT", "333")
	t.Setenv("BOXLAYOUT_OUTPUT_FORMAT", "json")
	t.Chdir(t.TempDir())

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, 333.0, cfg.Viewport.Height)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("BOXLAYOUT_WORKERS", "0")
	t.Chdir(t.TempDir())

	_, err := Load(NewViper(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
