package system

import (
	"math"

	"github.com/san-kum/moldyn/internal/core"
)

// Cell is an orthorhombic periodic simulation box with its origin at zero.
// An axis with zero length is treated as non-periodic.
type Cell struct {
	lengths core.Vec3
}

// Cubic returns a cell with the same length on every axis.
func Cubic(length float64) Cell {
	return Orthorhombic(length, length, length)
}

// Orthorhombic returns a cell with independent axis lengths.
func Orthorhombic(lx, ly, lz float64) Cell {
	return Cell{lengths: core.NewVec3(lx, ly, lz)}
}

// Infinite returns a non-periodic cell.
func Infinite() Cell {
	return Cell{}
}

func (c Cell) Lengths() core.Vec3 {
	return c.lengths
}

func (c Cell) Volume() float64 {
	return c.lengths.X * c.lengths.Y * c.lengths.Z
}

// WrapShift returns the lattice translation that brings p inside the primary
// image [0, L) on every periodic axis.
func (c Cell) WrapShift(p core.Vec3) core.Vec3 {
	return core.Vec3{
		X: wrapAxis(p.X, c.lengths.X),
		Y: wrapAxis(p.Y, c.lengths.Y),
		Z: wrapAxis(p.Z, c.lengths.Z),
	}
}

// MinimumImage folds the displacement d onto its shortest periodic image.
func (c Cell) MinimumImage(d core.Vec3) core.Vec3 {
	return core.Vec3{
		X: imageAxis(d.X, c.lengths.X),
		Y: imageAxis(d.Y, c.lengths.Y),
		Z: imageAxis(d.Z, c.lengths.Z),
	}
}

func wrapAxis(x, length float64) float64 {
	if length == 0 {
		return 0
	}
	return -math.Floor(x/length) * length
}

func imageAxis(d, length float64) float64 {
	if length == 0 {
		return d
	}
	return d - math.Round(d/length)*length
}
