package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/moldyn/internal/core"
)

func TestSystem_AddParticle(t *testing.T) {
	sys := New(Cubic(10))

	i := sys.AddParticle("Ar", 1.0, core.NewVec3(1, 2, 3))
	j := sys.AddParticle("Ar", 1.0, core.NewVec3(4, 5, 6))

	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
	assert.Equal(t, 2, sys.Len())
	// every particle starts as its own molecule
	require.Len(t, sys.Molecules(), 2)
	assert.Equal(t, Molecule{Start: 1, End: 2}, sys.Molecules()[1])
}

func TestSystem_Temperature(t *testing.T) {
	sys := New(Infinite())
	sys.AddParticle("He", 2.0, core.Vec3{})
	sys.Particles.Velocities[0] = core.NewVec3(3, 0, 0)

	// KE = 0.5 * 2 * 9 = 9, T = 2*9 / (3*1) = 6
	assert.InDelta(t, 9.0, sys.KineticEnergy(), 1e-12)
	assert.InDelta(t, 6.0, sys.Temperature(), 1e-12)
}

func TestSystem_CenterOfMass(t *testing.T) {
	sys := New(Infinite())
	sys.AddParticle("A", 1.0, core.NewVec3(0, 0, 0))
	sys.AddParticle("B", 3.0, core.NewVec3(4, 0, 0))

	assert.InDelta(t, 3.0, sys.CenterOfMass().X, 1e-12)
	assert.InDelta(t, 4.0, sys.TotalMass(), 1e-12)
}

func TestSystem_Momentum(t *testing.T) {
	sys := New(Infinite())
	sys.AddParticle("A", 1.0, core.Vec3{})
	sys.AddParticle("A", 2.0, core.Vec3{})
	sys.Particles.Velocities[0] = core.NewVec3(1, 0, 0)
	sys.Particles.Velocities[1] = core.NewVec3(0, 1, 0)

	p := sys.Momentum()
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 2.0, p.Y, 1e-12)
}

func TestSystem_AngularMomentum(t *testing.T) {
	sys := New(Infinite())
	sys.AddParticle("A", 1.0, core.NewVec3(1, 0, 0))
	sys.AddParticle("A", 1.0, core.NewVec3(-1, 0, 0))
	sys.Particles.Velocities[0] = core.NewVec3(0, 1, 0)
	sys.Particles.Velocities[1] = core.NewVec3(0, -1, 0)

	l := sys.AngularMomentum()
	assert.InDelta(t, 2.0, l.Z, 1e-12)
	assert.InDelta(t, 0.0, l.X, 1e-12)
	assert.InDelta(t, 0.0, l.Y, 1e-12)
}

func TestSystem_WrapMolecule(t *testing.T) {
	sys := New(Cubic(20.0))
	mol := sys.AddMolecule("O2", 1.0, core.NewVec3(24, 0, 0), core.NewVec3(26, 0, 0))

	sys.WrapMolecule(mol)

	// center of mass moved from 25 to 5; the 2.0 intra-molecular offset stays
	assert.InDelta(t, 4.0, sys.Particles.Positions[0].X, 1e-12)
	assert.InDelta(t, 6.0, sys.Particles.Positions[1].X, 1e-12)
	assert.InDelta(t, 5.0, sys.MoleculeCenterOfMass(mol).X, 1e-12)
}

func TestBoltzmannVelocities_Init(t *testing.T) {
	sys := New(Cubic(20.0))
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			for k := 0; k < 10; k++ {
				pos := core.NewVec3(float64(i)*2, float64(j)*2, float64(k)*2)
				sys.AddParticle("Cl", 1.0, pos)
			}
		}
	}

	velocities := NewBoltzmannVelocities(300.0)
	velocities.Seed(129)
	velocities.Init(sys)

	assert.InDelta(t, 300.0, sys.Temperature(), 1e-9)
}

func TestScaleVelocities(t *testing.T) {
	sys := New(Infinite())
	sys.AddParticle("A", 1.0, core.Vec3{})
	sys.AddParticle("A", 1.0, core.NewVec3(1, 1, 1))
	sys.Particles.Velocities[0] = core.NewVec3(1, 2, 0)
	sys.Particles.Velocities[1] = core.NewVec3(0, 1, 1)

	ScaleVelocities(sys, 42.0)
	assert.InDelta(t, 42.0, sys.Temperature(), 1e-12)
}
