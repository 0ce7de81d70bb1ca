// Package core provides the math primitives and domain errors shared by the
// simulation engine.
//
// The package defines small dense linear algebra types sized for 3D particle
// mechanics:
//
//   - [Vec3]: 3-vector with the usual products (dot, cross, outer)
//   - [Mat3]: 3x3 matrix with trace, determinant and adjugate inverse
//
// Everything operates on plain float64 values; no allocation happens beyond
// the returned value itself.
package core
