// Package integrators advances a particle system through time.
package integrators

import (
	"github.com/san-kum/moldyn/internal/core"
	"github.com/san-kum/moldyn/internal/forces"
	"github.com/san-kum/moldyn/internal/system"
)

// Integrator advances the system by one timestep.
type Integrator interface {
	Step(sys *system.System)
	Timestep() float64
}

// VelocityVerlet is the standard two half-kick integrator: half a velocity
// update, a full position update, force re-evaluation, then the second half
// of the velocity update. It is symplectic and time-reversible, which keeps
// the energy drift bounded over long runs.
type VelocityVerlet struct {
	dt      float64
	field   forces.Field
	scratch []core.Vec3
	primed  bool
}

func NewVelocityVerlet(dt float64, field forces.Field) *VelocityVerlet {
	return &VelocityVerlet{dt: dt, field: field}
}

func (v *VelocityVerlet) Timestep() float64 {
	return v.dt
}

func (v *VelocityVerlet) Step(sys *system.System) {
	if !v.primed || len(v.scratch) != sys.Len() {
		v.scratch = v.field.Forces(sys, v.scratch)
		v.primed = true
	}

	halfDt := 0.5 * v.dt
	for i := range sys.Particles.Positions {
		acc := v.scratch[i].Scale(1.0 / sys.Particles.Masses[i])
		sys.Particles.Velocities[i] = sys.Particles.Velocities[i].Add(acc.Scale(halfDt))
		sys.Particles.Positions[i] = sys.Particles.Positions[i].Add(sys.Particles.Velocities[i].Scale(v.dt))
	}

	v.scratch = v.field.Forces(sys, v.scratch)

	for i := range sys.Particles.Velocities {
		acc := v.scratch[i].Scale(1.0 / sys.Particles.Masses[i])
		sys.Particles.Velocities[i] = sys.Particles.Velocities[i].Add(acc.Scale(halfDt))
	}
}
