package sim

import (
	"github.com/san-kum/moldyn/internal/config"
	"github.com/san-kum/moldyn/internal/core"
	"github.com/san-kum/moldyn/internal/system"
)

// BuildSystem creates a cubic crystal of lattice³ particles in a periodic
// cell and draws initial velocities at the configured temperature.
func BuildSystem(cfg config.SystemConfig) *system.System {
	length := cfg.CellLength
	if length == 0 {
		length = cfg.Spacing * float64(cfg.Lattice)
	}

	sys := system.New(system.Cubic(length))
	for i := 0; i < cfg.Lattice; i++ {
		for j := 0; j < cfg.Lattice; j++ {
			for k := 0; k < cfg.Lattice; k++ {
				pos := core.NewVec3(
					float64(i)*cfg.Spacing,
					float64(j)*cfg.Spacing,
					float64(k)*cfg.Spacing,
				)
				sys.AddParticle(cfg.Species, cfg.Mass, pos)
			}
		}
	}

	velocities := system.NewBoltzmannVelocities(cfg.Temperature)
	if cfg.Seed != 0 {
		velocities.Seed(cfg.Seed)
	}
	velocities.Init(sys)

	return sys
}
