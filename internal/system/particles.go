package system

import "github.com/san-kum/moldyn/internal/core"

// Particles stores per-particle attributes as parallel arrays sharing one
// index space, so algorithms can walk several attributes jointly without
// gathering per-particle structs.
type Particles struct {
	Names      []string
	Positions  []core.Vec3
	Velocities []core.Vec3
	Masses     []float64
}

func (p *Particles) Len() int {
	return len(p.Masses)
}

func (p *Particles) append(name string, mass float64, position core.Vec3) int {
	p.Names = append(p.Names, name)
	p.Positions = append(p.Positions, position)
	p.Velocities = append(p.Velocities, core.Vec3{})
	p.Masses = append(p.Masses, mass)
	return p.Len() - 1
}

// Molecule is a contiguous index range [Start, End) of particles forming one
// bonded unit.
type Molecule struct {
	Start, End int
}

func (m Molecule) Len() int {
	return m.End - m.Start
}
