package control

import (
	"fmt"
	"math"

	"github.com/san-kum/moldyn/internal/core"
	"github.com/san-kum/moldyn/internal/system"
)

// RescaleThermostat controls the temperature by rescaling all velocities when
// the instantaneous temperature deviates too much from the target. The
// tolerance keeps the algorithm from firing every step: with a target of
// 300 and a tolerance of 10 it only acts below 290 or above 310.
type RescaleThermostat struct {
	nopLifecycle
	temperature float64
	tolerance   float64
}

// NewRescaleThermostat returns a thermostat acting at the given temperature
// with a tolerance of 5% of the target.
func NewRescaleThermostat(temperature float64) (*RescaleThermostat, error) {
	return NewRescaleThermostatWithTolerance(temperature, 0.05*temperature)
}

// NewRescaleThermostatWithTolerance returns a thermostat with an explicit
// tolerance. Use a tolerance of zero to rescale on every step.
func NewRescaleThermostatWithTolerance(temperature, tolerance float64) (*RescaleThermostat, error) {
	if temperature < 0 {
		return nil, fmt.Errorf("%w: thermostat temperature must be non-negative, got %g",
			core.ErrInvalidConfiguration, temperature)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("%w: thermostat tolerance must be non-negative, got %g",
			core.ErrInvalidConfiguration, tolerance)
	}
	return &RescaleThermostat{temperature: temperature, tolerance: tolerance}, nil
}

// Tolerance returns the dead-zone half width around the target temperature.
func (r *RescaleThermostat) Tolerance() float64 {
	return r.tolerance
}

func (r *RescaleThermostat) Control(sys *system.System) {
	instant := sys.Temperature()
	if math.Abs(instant-r.temperature) > r.tolerance {
		system.ScaleVelocities(sys, r.temperature)
	}
}

// BerendsenThermostat relaxes the temperature exponentially toward the target
// with a characteristic time of tau integrator steps, scaling every velocity
// on every call.
//
// H.J.C. Berendsen, et al. J. Chem Phys 81, 3684 (1984); doi: 10.1063/1.448118
type BerendsenThermostat struct {
	nopLifecycle
	temperature float64
	tau         float64
}

// NewBerendsenThermostat returns a thermostat acting at the given temperature
// with a relaxation time of tau integrator timesteps.
func NewBerendsenThermostat(temperature, tau float64) (*BerendsenThermostat, error) {
	if temperature < 0 {
		return nil, fmt.Errorf("%w: thermostat temperature must be non-negative, got %g",
			core.ErrInvalidConfiguration, temperature)
	}
	if tau < 0 {
		return nil, fmt.Errorf("%w: berendsen relaxation time must be non-negative, got %g",
			core.ErrInvalidConfiguration, tau)
	}
	return &BerendsenThermostat{temperature: temperature, tau: tau}, nil
}

func (b *BerendsenThermostat) Control(sys *system.System) {
	instant := sys.Temperature()
	factor := math.Sqrt(1.0 + (b.temperature/instant-1.0)/b.tau)
	for i := range sys.Particles.Velocities {
		sys.Particles.Velocities[i] = sys.Particles.Velocities[i].Scale(factor)
	}
}
