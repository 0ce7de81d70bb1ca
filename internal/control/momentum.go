package control

import (
	"github.com/san-kum/moldyn/internal/core"
	"github.com/san-kum/moldyn/internal/system"
)

// RemoveTranslation zeroes the net linear momentum by subtracting the
// center-of-mass velocity from every particle.
type RemoveTranslation struct {
	nopLifecycle
}

func NewRemoveTranslation() *RemoveTranslation {
	return &RemoveTranslation{}
}

func (*RemoveTranslation) Control(sys *system.System) {
	totalMass := sys.TotalMass()

	var comVelocity core.Vec3
	for i, v := range sys.Particles.Velocities {
		comVelocity = comVelocity.Add(v.Scale(sys.Particles.Masses[i] / totalMass))
	}

	for i := range sys.Particles.Velocities {
		sys.Particles.Velocities[i] = sys.Particles.Velocities[i].Sub(comVelocity)
	}
}

// RemoveRotation zeroes the angular momentum about the center of mass by
// subtracting the rigid-body rotation ω × (r - com) from every velocity,
// where ω solves L = Iω for the system's inertia tensor.
type RemoveRotation struct {
	nopLifecycle
}

func NewRemoveRotation() *RemoveRotation {
	return &RemoveRotation{}
}

func (*RemoveRotation) Control(sys *system.System) {
	com := sys.CenterOfMass()

	var moment core.Vec3
	var inertia core.Mat3
	for i, r := range sys.Particles.Positions {
		mass := sys.Particles.Masses[i]
		delta := r.Sub(com)
		moment = moment.Add(delta.Cross(sys.Particles.Velocities[i]).Scale(mass))
		inertia = inertia.Add(delta.Outer(delta).Scale(-mass))
	}

	// Σ -m d⊗d plus its trace on the diagonal is the inertia tensor of the
	// point-mass distribution.
	trace := inertia.Trace()
	inertia[0][0] += trace
	inertia[1][1] += trace
	inertia[2][2] += trace

	// ω is defined by L = Iω, with L the angular momentum.
	angular := inertia.Inverse().MulVec(moment)
	for i, r := range sys.Particles.Positions {
		delta := r.Sub(com)
		sys.Particles.Velocities[i] = sys.Particles.Velocities[i].Sub(delta.Cross(angular))
	}
}
