package metrics

import (
	"math"

	"github.com/san-kum/moldyn/internal/forces"
	"github.com/san-kum/moldyn/internal/system"
)

// EnergyDrift reports the relative drift of the total (kinetic + potential)
// energy since the first observation. For an uncontrolled symplectic run it
// should stay small; thermostats deliberately perturb it.
type EnergyDrift struct {
	field   forces.Field
	initial float64
	current float64
	primed  bool
}

func NewEnergyDrift(field forces.Field) *EnergyDrift {
	return &EnergyDrift{field: field}
}

func (*EnergyDrift) Name() string { return "energy_drift" }

func (m *EnergyDrift) Observe(sys *system.System, step int, t float64) {
	total := sys.KineticEnergy() + m.field.Energy(sys)
	if !m.primed {
		m.initial = total
		m.primed = true
	}
	m.current = total
}

func (m *EnergyDrift) Value() float64 {
	if !m.primed || m.initial == 0 {
		return 0
	}
	return math.Abs(m.current-m.initial) / math.Abs(m.initial)
}

func (m *EnergyDrift) Reset() {
	m.initial = 0
	m.current = 0
	m.primed = false
}
