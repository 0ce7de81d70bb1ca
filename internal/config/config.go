// Package config loads and validates the YAML run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/moldyn/internal/core"
)

const (
	DefaultLattice     = 5
	DefaultSpacing     = 3.4
	DefaultMass        = 1.0
	DefaultTemperature = 300.0
	DefaultEpsilon     = 1.0
	DefaultSigma       = 3.4
	DefaultDt          = 0.001
	DefaultSteps       = 5000
)

// Config describes one simulation run: the initial system, the force field,
// the integration parameters and the ordered control pipeline.
type Config struct {
	System   SystemConfig    `yaml:"system"`
	Forces   ForcesConfig    `yaml:"forces"`
	Run      RunConfig       `yaml:"run"`
	Controls []ControlConfig `yaml:"controls"`
	OutDir   string          `yaml:"out_dir"`
}

// SystemConfig builds a cubic crystal of Lattice³ particles with velocities
// drawn at Temperature.
type SystemConfig struct {
	Species     string  `yaml:"species"`
	Lattice     int     `yaml:"lattice"`
	Spacing     float64 `yaml:"spacing"`
	CellLength  float64 `yaml:"cell_length"`
	Mass        float64 `yaml:"mass"`
	Temperature float64 `yaml:"temperature"`
	Seed        int64   `yaml:"seed"`
}

type ForcesConfig struct {
	Epsilon float64 `yaml:"epsilon"`
	Sigma   float64 `yaml:"sigma"`
	Cutoff  float64 `yaml:"cutoff"`
}

type RunConfig struct {
	Dt    float64 `yaml:"dt"`
	Steps int     `yaml:"steps"`
}

// ControlConfig selects one control algorithm by kind. Every wraps the
// control in an alternator when greater than one. Tolerance is a pointer so
// that an explicit zero (rescale on every firing step) stays distinguishable
// from an omitted value (5% of the target).
type ControlConfig struct {
	Kind        string   `yaml:"kind"`
	Temperature float64  `yaml:"temperature"`
	Tolerance   *float64 `yaml:"tolerance"`
	Tau         float64  `yaml:"tau"`
	Every       int      `yaml:"every"`
}

func DefaultConfig() *Config {
	return &Config{
		System: SystemConfig{
			Species:     "Ar",
			Lattice:     DefaultLattice,
			Spacing:     DefaultSpacing,
			CellLength:  DefaultSpacing * DefaultLattice,
			Mass:        DefaultMass,
			Temperature: DefaultTemperature,
			Seed:        1,
		},
		Forces: ForcesConfig{
			Epsilon: DefaultEpsilon,
			Sigma:   DefaultSigma,
			Cutoff:  2.5 * DefaultSigma,
		},
		Run: RunConfig{
			Dt:    DefaultDt,
			Steps: DefaultSteps,
		},
		Controls: []ControlConfig{
			{Kind: "remove-translation", Every: 100},
			{Kind: "berendsen", Temperature: DefaultTemperature, Tau: 100},
			{Kind: "rewrap", Every: 50},
		},
		OutDir: "runs",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations that cannot describe a run. Parameter
// bounds owned by the control constructors (negative temperatures and the
// like) are checked there, not here.
func (c *Config) Validate() error {
	if c.System.Lattice < 1 {
		return fmt.Errorf("%w: lattice must be at least 1, got %d",
			core.ErrInvalidConfiguration, c.System.Lattice)
	}
	if c.System.Spacing <= 0 {
		return fmt.Errorf("%w: lattice spacing must be positive, got %g",
			core.ErrInvalidConfiguration, c.System.Spacing)
	}
	if c.System.Mass <= 0 {
		return fmt.Errorf("%w: particle mass must be positive, got %g",
			core.ErrInvalidConfiguration, c.System.Mass)
	}
	if c.Run.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g",
			core.ErrInvalidConfiguration, c.Run.Dt)
	}
	if c.Run.Steps < 1 {
		return fmt.Errorf("%w: steps must be at least 1, got %d",
			core.ErrInvalidConfiguration, c.Run.Steps)
	}
	return nil
}
