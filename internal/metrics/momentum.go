package metrics

import "github.com/san-kum/moldyn/internal/system"

// Momentum reports the largest net linear momentum norm seen over the run.
// With translation removal in the control pipeline it should stay near zero.
type Momentum struct {
	max float64
}

func NewMomentum() *Momentum {
	return &Momentum{}
}

func (*Momentum) Name() string { return "max_momentum" }

func (m *Momentum) Observe(sys *system.System, step int, t float64) {
	if p := sys.Momentum().Norm(); p > m.max {
		m.max = p
	}
}

func (m *Momentum) Value() float64 {
	return m.max
}

func (m *Momentum) Reset() {
	m.max = 0
}
