// Package metrics observes macroscopic quantities over a simulation run.
package metrics

import "github.com/san-kum/moldyn/internal/system"

// Metric accumulates one scalar observable across the run. Observe is called
// once per step by the driver; Value reports the accumulated result.
type Metric interface {
	Name() string
	Observe(sys *system.System, step int, t float64)
	Value() float64
	Reset()
}
