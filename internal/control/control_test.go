package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/moldyn/internal/core"
	"github.com/san-kum/moldyn/internal/system"
)

// testingSystem returns a 1000-particle cubic crystal with velocities drawn
// at 300 and rescaled exactly to it.
func testingSystem() *system.System {
	sys := system.New(system.Cubic(20.0))
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			for k := 0; k < 10; k++ {
				pos := core.NewVec3(float64(i)*2.0, float64(j)*2.0, float64(k)*2.0)
				sys.AddParticle("Cl", 1.0, pos)
			}
		}
	}

	velocities := system.NewBoltzmannVelocities(300.0)
	velocities.Seed(129)
	velocities.Init(sys)
	return sys
}

func TestRescaleThermostat_DefaultTolerance(t *testing.T) {
	for _, temperature := range []float64{0, 25, 300, 1e4} {
		thermostat, err := NewRescaleThermostat(temperature)
		require.NoError(t, err)
		assert.Equal(t, 0.05*temperature, thermostat.Tolerance())
	}
}

func TestRescaleThermostat(t *testing.T) {
	sys := testingSystem()
	require.InEpsilon(t, 300.0, sys.Temperature(), 1e-12)

	// inside the dead zone: |300 - 250| < 100, nothing happens
	thermostat, err := NewRescaleThermostatWithTolerance(250.0, 100.0)
	require.NoError(t, err)
	thermostat.Control(sys)
	assert.InEpsilon(t, 300.0, sys.Temperature(), 1e-12)

	// outside: velocities are rescaled to the target exactly
	thermostat, err = NewRescaleThermostatWithTolerance(250.0, 10.0)
	require.NoError(t, err)
	thermostat.Control(sys)
	assert.InEpsilon(t, 250.0, sys.Temperature(), 1e-12)
}

func TestRescaleThermostat_ToleranceIsStrict(t *testing.T) {
	sys := system.New(system.Infinite())
	sys.AddParticle("He", 1.0, core.Vec3{})
	sys.Particles.Velocities[0] = core.NewVec3(3, 0, 0)
	require.Equal(t, 3.0, sys.Temperature())

	// deviation of exactly the tolerance must not fire
	thermostat, err := NewRescaleThermostatWithTolerance(1.0, 2.0)
	require.NoError(t, err)
	thermostat.Control(sys)
	assert.Equal(t, core.NewVec3(3, 0, 0), sys.Particles.Velocities[0])

	thermostat, err = NewRescaleThermostatWithTolerance(1.0, 1.5)
	require.NoError(t, err)
	thermostat.Control(sys)
	assert.InEpsilon(t, 1.0, sys.Temperature(), 1e-12)
}

func TestBerendsenThermostat(t *testing.T) {
	sys := testingSystem()
	require.InEpsilon(t, 300.0, sys.Temperature(), 1e-9)

	thermostat, err := NewBerendsenThermostat(250.0, 100.0)
	require.NoError(t, err)

	previous := sys.Temperature()
	for i := 0; i < 3000; i++ {
		thermostat.Control(sys)
		instant := sys.Temperature()
		assert.LessOrEqual(t, instant, previous, "relaxation must be monotonic")
		previous = instant
	}
	assert.InDelta(t, 250.0, sys.Temperature(), 1e-9)
}

func TestThermostats_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		err  func() error
	}{
		{"rescale negative temperature", func() error {
			_, err := NewRescaleThermostat(-56.0)
			return err
		}},
		{"rescale negative tolerance", func() error {
			_, err := NewRescaleThermostatWithTolerance(300.0, -5.0)
			return err
		}},
		{"berendsen negative temperature", func() error {
			_, err := NewBerendsenThermostat(-56.0, 1000.0)
			return err
		}},
		{"berendsen negative tau", func() error {
			_, err := NewBerendsenThermostat(300.0, -10.0)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err(), core.ErrInvalidConfiguration)
		})
	}
}

func TestRemoveTranslation(t *testing.T) {
	sys := system.New(system.Cubic(20.0))
	sys.AddParticle("Ag", 1.0, core.NewVec3(0, 0, 0))
	sys.AddParticle("Ag", 1.0, core.NewVec3(1, 1, 1))
	sys.Particles.Velocities[0] = core.NewVec3(1, 2, 0)
	sys.Particles.Velocities[1] = core.NewVec3(1, 0, 0)

	NewRemoveTranslation().Control(sys)

	assert.InDelta(t, 0.0, sys.Particles.Velocities[0].X, 1e-12)
	assert.InDelta(t, 1.0, sys.Particles.Velocities[0].Y, 1e-12)
	assert.InDelta(t, 0.0, sys.Particles.Velocities[0].Z, 1e-12)
	assert.InDelta(t, 0.0, sys.Particles.Velocities[1].X, 1e-12)
	assert.InDelta(t, -1.0, sys.Particles.Velocities[1].Y, 1e-12)
	assert.InDelta(t, 0.0, sys.Particles.Velocities[1].Z, 1e-12)

	assert.InDelta(t, 0.0, sys.Momentum().Norm(), 1e-12)
}

func TestRemoveRotation(t *testing.T) {
	sys := system.New(system.Cubic(20.0))
	sys.AddParticle("Ag", 1.0, core.NewVec3(0, 0, 0))
	sys.AddParticle("Ag", 1.0, core.NewVec3(1, 0, 0))
	sys.Particles.Velocities[0] = core.NewVec3(0, 1, 0)
	sys.Particles.Velocities[1] = core.NewVec3(0, -1, 2)

	NewRemoveRotation().Control(sys)

	for i := 0; i < 2; i++ {
		assert.InDelta(t, 0.0, sys.Particles.Velocities[i].X, 1e-12)
		assert.InDelta(t, 0.0, sys.Particles.Velocities[i].Y, 1e-12)
		assert.InDelta(t, 1.0, sys.Particles.Velocities[i].Z, 1e-12)
	}

	assert.InDelta(t, 0.0, sys.AngularMomentum().Norm(), 1e-12)
}

func TestRewrap(t *testing.T) {
	sys := system.New(system.Cubic(20.0))
	sys.AddParticle("Ag", 1.0, core.NewVec3(0, 0, 0))
	sys.AddParticle("Ag", 1.0, core.NewVec3(25, 0, 0))

	NewRewrap().Control(sys)

	assert.InDelta(t, 0.0, sys.Particles.Positions[0].X, 1e-12)
	assert.InDelta(t, 5.0, sys.Particles.Positions[1].X, 1e-12)
}

func TestRewrap_PreservesMoleculeOffsets(t *testing.T) {
	sys := system.New(system.Cubic(20.0))
	sys.AddMolecule("N2", 1.0, core.NewVec3(38.5, 0, 0), core.NewVec3(41.5, 0, 0))

	NewRewrap().Control(sys)

	// center of mass 40 folds to 0; the offset of 3 survives
	assert.InDelta(t, -1.5, sys.Particles.Positions[0].X, 1e-12)
	assert.InDelta(t, 1.5, sys.Particles.Positions[1].X, 1e-12)
}
