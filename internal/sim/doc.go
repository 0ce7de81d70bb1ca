// Package sim drives molecular dynamics runs.
//
// [Simulator] owns the integrator and the ordered control pipeline and
// advances a [system.System] step by step:
//
//	verlet := integrators.NewVelocityVerlet(dt, field)
//	s := sim.New(verlet, field)
//	s.AddControl(thermostat)
//	result, err := s.Run(ctx, sys, steps)
//
// [Registry] assembles controls from configuration entries, and
// [BuildSystem] creates the initial crystal. Simulator instances are not
// safe for concurrent use.
package sim
