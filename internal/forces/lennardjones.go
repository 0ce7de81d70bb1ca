// Package forces evaluates potential energies and forces on a particle
// system. Pair interactions use the minimum-image convention of the system's
// periodic cell and a plain O(N²) double loop; there is no neighbor list.
package forces

import (
	"github.com/san-kum/moldyn/internal/core"
	"github.com/san-kum/moldyn/internal/system"
)

// Field is anything able to produce per-particle forces and a total
// potential energy for a system.
type Field interface {
	// Forces fills buf (reallocating if needed) with the force on every
	// particle and returns it.
	Forces(sys *system.System, buf []core.Vec3) []core.Vec3
	// Energy returns the total potential energy.
	Energy(sys *system.System) float64
}

// LennardJones is the 12-6 pair potential V(r) = 4ε((σ/r)¹² - (σ/r)⁶),
// applied between every particle pair. Pairs beyond Cutoff are skipped;
// a zero Cutoff disables truncation.
type LennardJones struct {
	Epsilon float64
	Sigma   float64
	Cutoff  float64
}

// NewLennardJones returns a potential with the conventional 2.5σ cutoff.
func NewLennardJones(epsilon, sigma float64) *LennardJones {
	return &LennardJones{Epsilon: epsilon, Sigma: sigma, Cutoff: 2.5 * sigma}
}

func (lj *LennardJones) Forces(sys *system.System, buf []core.Vec3) []core.Vec3 {
	n := sys.Len()
	if len(buf) != n {
		buf = make([]core.Vec3, n)
	} else {
		for i := range buf {
			buf[i] = core.Vec3{}
		}
	}

	cell := sys.Cell()
	cutoff2 := lj.Cutoff * lj.Cutoff
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := cell.MinimumImage(sys.Particles.Positions[i].Sub(sys.Particles.Positions[j]))
			r2 := d.Norm2()
			if cutoff2 > 0 && r2 > cutoff2 {
				continue
			}
			f := d.Scale(lj.forceOverR(r2))
			buf[i] = buf[i].Add(f)
			buf[j] = buf[j].Sub(f)
		}
	}
	return buf
}

func (lj *LennardJones) Energy(sys *system.System) float64 {
	n := sys.Len()
	cell := sys.Cell()
	cutoff2 := lj.Cutoff * lj.Cutoff
	energy := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := cell.MinimumImage(sys.Particles.Positions[i].Sub(sys.Particles.Positions[j]))
			r2 := d.Norm2()
			if cutoff2 > 0 && r2 > cutoff2 {
				continue
			}
			energy += lj.pairEnergy(r2)
		}
	}
	return energy
}

func (lj *LennardJones) pairEnergy(r2 float64) float64 {
	s2 := lj.Sigma * lj.Sigma / r2
	s6 := s2 * s2 * s2
	return 4.0 * lj.Epsilon * (s6*s6 - s6)
}

// forceOverR returns |F|/r, so that F = forceOverR(r²) · d for the
// displacement vector d.
func (lj *LennardJones) forceOverR(r2 float64) float64 {
	s2 := lj.Sigma * lj.Sigma / r2
	s6 := s2 * s2 * s2
	return 24.0 * lj.Epsilon * (2.0*s6*s6 - s6) / r2
}
