package metrics

import "github.com/san-kum/moldyn/internal/system"

// Temperature reports the mean instantaneous temperature over the run.
type Temperature struct {
	sum     float64
	samples int
}

func NewTemperature() *Temperature {
	return &Temperature{}
}

func (*Temperature) Name() string { return "temperature" }

func (m *Temperature) Observe(sys *system.System, step int, t float64) {
	m.sum += sys.Temperature()
	m.samples++
}

func (m *Temperature) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Temperature) Reset() {
	m.sum = 0
	m.samples = 0
}
