package system

import (
	"math"
	"math/rand"
)

// BoltzmannVelocities initializes particle velocities from the Maxwell-
// Boltzmann distribution at a given temperature, then rescales them so the
// instantaneous temperature matches the target exactly.
type BoltzmannVelocities struct {
	temperature float64
	rng         *rand.Rand
}

func NewBoltzmannVelocities(temperature float64) *BoltzmannVelocities {
	return &BoltzmannVelocities{
		temperature: temperature,
		rng:         rand.New(rand.NewSource(1)),
	}
}

func (b *BoltzmannVelocities) Seed(seed int64) {
	b.rng = rand.New(rand.NewSource(seed))
}

func (b *BoltzmannVelocities) Init(sys *System) {
	for i := range sys.Particles.Velocities {
		sigma := math.Sqrt(Boltzmann * b.temperature / sys.Particles.Masses[i])
		sys.Particles.Velocities[i].X = sigma * b.rng.NormFloat64()
		sys.Particles.Velocities[i].Y = sigma * b.rng.NormFloat64()
		sys.Particles.Velocities[i].Z = sigma * b.rng.NormFloat64()
	}
	ScaleVelocities(sys, b.temperature)
}

// ScaleVelocities rescales every velocity by sqrt(target/T) so the
// instantaneous temperature becomes exactly the target. A system at zero
// temperature produces non-finite velocities; the caller owns that edge case.
func ScaleVelocities(sys *System, target float64) {
	factor := math.Sqrt(target / sys.Temperature())
	for i := range sys.Particles.Velocities {
		sys.Particles.Velocities[i] = sys.Particles.Velocities[i].Scale(factor)
	}
}
