package system

import "github.com/san-kum/moldyn/internal/core"

// Boltzmann constant in the engine's reduced unit system. Temperatures,
// energies and masses are all expressed in units where kB is one.
const Boltzmann = 1.0

// System owns the full particle collection, the molecule grouping over it and
// the periodic simulation cell. Control algorithms and integrators borrow it
// mutably for the duration of one call and never keep a copy.
type System struct {
	Particles Particles

	molecules []Molecule
	cell      Cell
}

func New(cell Cell) *System {
	return &System{cell: cell}
}

func (s *System) Cell() Cell {
	return s.cell
}

func (s *System) SetCell(cell Cell) {
	s.cell = cell
}

func (s *System) Len() int {
	return s.Particles.Len()
}

// AddParticle appends one particle with zero velocity, forming its own
// single-particle molecule, and returns its index.
func (s *System) AddParticle(name string, mass float64, position core.Vec3) int {
	i := s.Particles.append(name, mass, position)
	s.molecules = append(s.molecules, Molecule{Start: i, End: i + 1})
	return i
}

// AddMolecule appends several particles of the same species as one bonded
// unit and returns the molecule index.
func (s *System) AddMolecule(name string, mass float64, positions ...core.Vec3) int {
	start := s.Particles.Len()
	for _, p := range positions {
		s.Particles.append(name, mass, p)
	}
	s.molecules = append(s.molecules, Molecule{Start: start, End: s.Particles.Len()})
	return len(s.molecules) - 1
}

func (s *System) Molecules() []Molecule {
	return s.molecules
}

// KineticEnergy returns Σ ½ m v².
func (s *System) KineticEnergy() float64 {
	ke := 0.0
	for i, v := range s.Particles.Velocities {
		ke += 0.5 * s.Particles.Masses[i] * v.Norm2()
	}
	return ke
}

// Temperature returns the instantaneous temperature from the equipartition
// relation, using 3N degrees of freedom.
func (s *System) Temperature() float64 {
	dof := 3.0 * float64(s.Len())
	return 2.0 * s.KineticEnergy() / (Boltzmann * dof)
}

func (s *System) TotalMass() float64 {
	mass := 0.0
	for _, m := range s.Particles.Masses {
		mass += m
	}
	return mass
}

// CenterOfMass returns the mass-weighted mean position of all particles.
func (s *System) CenterOfMass() core.Vec3 {
	var com core.Vec3
	for i, r := range s.Particles.Positions {
		com = com.Add(r.Scale(s.Particles.Masses[i]))
	}
	return com.Scale(1.0 / s.TotalMass())
}

// Momentum returns the net linear momentum Σ m v.
func (s *System) Momentum() core.Vec3 {
	var p core.Vec3
	for i, v := range s.Particles.Velocities {
		p = p.Add(v.Scale(s.Particles.Masses[i]))
	}
	return p
}

// AngularMomentum returns Σ m (r - com) × v about the center of mass.
func (s *System) AngularMomentum() core.Vec3 {
	com := s.CenterOfMass()
	var l core.Vec3
	for i, r := range s.Particles.Positions {
		delta := r.Sub(com)
		l = l.Add(delta.Cross(s.Particles.Velocities[i]).Scale(s.Particles.Masses[i]))
	}
	return l
}

// MoleculeCenterOfMass returns the mass-weighted mean position of molecule i.
func (s *System) MoleculeCenterOfMass(i int) core.Vec3 {
	mol := s.molecules[i]
	var com core.Vec3
	mass := 0.0
	for j := mol.Start; j < mol.End; j++ {
		com = com.Add(s.Particles.Positions[j].Scale(s.Particles.Masses[j]))
		mass += s.Particles.Masses[j]
	}
	return com.Scale(1.0 / mass)
}

// WrapMolecule translates every particle of molecule i by the lattice vector
// that brings the molecule's center of mass inside the primary cell image.
// Intra-molecular offsets are preserved, so individual particles may still
// lie outside the cell afterwards.
func (s *System) WrapMolecule(i int) {
	mol := s.molecules[i]
	shift := s.cell.WrapShift(s.MoleculeCenterOfMass(i))
	for j := mol.Start; j < mol.End; j++ {
		s.Particles.Positions[j] = s.Particles.Positions[j].Add(shift)
	}
}
