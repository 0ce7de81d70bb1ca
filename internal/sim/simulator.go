package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/moldyn/internal/control"
	"github.com/san-kum/moldyn/internal/core"
	"github.com/san-kum/moldyn/internal/forces"
	"github.com/san-kum/moldyn/internal/integrators"
	"github.com/san-kum/moldyn/internal/metrics"
	"github.com/san-kum/moldyn/internal/system"
)

// Observer is notified after every completed step.
type Observer interface {
	OnStep(sys *system.System, step int, t float64)
}

// Simulator drives one molecular dynamics run: it advances the system with
// the integrator, then invokes every registered control in registration
// order. Ordering between controls is load-bearing and owned by whoever
// registers them.
type Simulator struct {
	integrator integrators.Integrator
	field      forces.Field
	controls   []control.Control
	metrics    []metrics.Metric
	observers  []Observer
}

func New(integrator integrators.Integrator, field forces.Field) *Simulator {
	return &Simulator{integrator: integrator, field: field}
}

func (s *Simulator) AddControl(c control.Control) { s.controls = append(s.controls, c) }
func (s *Simulator) AddMetric(m metrics.Metric)   { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer)       { s.observers = append(s.observers, o) }

// Result collects the per-step series and final metric values of a run.
type Result struct {
	Times        []float64
	Temperatures []float64
	Kinetic      []float64
	Potential    []float64
	Metrics      map[string]float64
	StepsTaken   int
}

// Run advances the system by the given number of steps. Controls receive
// their Setup before the loop and Finish after it; a context cancellation
// returns the partial result together with the context error.
func (s *Simulator) Run(ctx context.Context, sys *system.System, steps int) (*Result, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: steps must be at least 1, got %d",
			core.ErrInvalidConfiguration, steps)
	}

	result := &Result{
		Times:        make([]float64, 0, steps+1),
		Temperatures: make([]float64, 0, steps+1),
		Kinetic:      make([]float64, 0, steps+1),
		Potential:    make([]float64, 0, steps+1),
		Metrics:      make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}
	for _, c := range s.controls {
		c.Setup(sys)
	}

	t := 0.0
	dt := s.integrator.Timestep()
	s.sample(result, sys, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			s.finish(result, sys)
			return result, ctx.Err()
		default:
		}

		s.integrator.Step(sys)
		t += dt

		for _, c := range s.controls {
			c.Control(sys)
		}
		for _, m := range s.metrics {
			m.Observe(sys, i, t)
		}
		for _, o := range s.observers {
			o.OnStep(sys, i, t)
		}

		s.sample(result, sys, t)
		result.StepsTaken++
	}

	s.finish(result, sys)
	return result, nil
}

func (s *Simulator) sample(result *Result, sys *system.System, t float64) {
	result.Times = append(result.Times, t)
	result.Temperatures = append(result.Temperatures, sys.Temperature())
	result.Kinetic = append(result.Kinetic, sys.KineticEnergy())
	result.Potential = append(result.Potential, s.field.Energy(sys))
}

func (s *Simulator) finish(result *Result, sys *system.System) {
	for _, c := range s.controls {
		c.Finish(sys)
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
