package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/moldyn/internal/core"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Ar", cfg.System.Species)
	assert.Positive(t, cfg.Run.Dt)
	assert.Positive(t, cfg.Run.Steps)
	assert.NotEmpty(t, cfg.Controls)
	require.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	raw := `
system:
  lattice: 3
  temperature: 250
run:
  steps: 100
controls:
  - kind: rescale
    temperature: 250
    tolerance: 0
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.System.Lattice)
	assert.Equal(t, 250.0, cfg.System.Temperature)
	assert.Equal(t, 100, cfg.Run.Steps)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultDt, cfg.Run.Dt)

	require.Len(t, cfg.Controls, 1)
	require.NotNil(t, cfg.Controls[0].Tolerance)
	assert.Zero(t, *cfg.Controls[0].Tolerance)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := DefaultConfig()
	cfg.System.Seed = 129
	cfg.Run.Steps = 42

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero lattice", func(c *Config) { c.System.Lattice = 0 }},
		{"negative spacing", func(c *Config) { c.System.Spacing = -1 }},
		{"zero mass", func(c *Config) { c.System.Mass = 0 }},
		{"zero dt", func(c *Config) { c.Run.Dt = 0 }},
		{"zero steps", func(c *Config) { c.Run.Steps = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidConfiguration)
		})
	}
}
