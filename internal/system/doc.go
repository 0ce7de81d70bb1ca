// Package system holds the simulated state: the particle collection, the
// molecule grouping over it and the periodic simulation cell.
//
// Particle attributes are stored as parallel arrays ([Particles]) so that
// control algorithms and integrators can iterate positions, velocities and
// masses jointly by shared index. [System] derives the macroscopic
// observables the rest of the engine consumes:
//
//   - [System.Temperature]: instantaneous temperature via equipartition
//   - [System.CenterOfMass], [System.Momentum], [System.AngularMomentum]
//   - [System.WrapMolecule]: periodic rewrap of one bonded unit
//
// All quantities use reduced units with kB = 1.
package system
