// Package control provides the algorithms steering macroscopic properties of
// a system while a simulation runs.
//
// Every algorithm implements the [Control] interface and is invoked by the
// simulation driver once per step, in registration order:
//
//   - [RescaleThermostat]: velocity rescaling with a dead zone
//   - [BerendsenThermostat]: exponential temperature relaxation
//   - [RemoveTranslation]: zero the net linear momentum
//   - [RemoveRotation]: zero the angular momentum about the center of mass
//   - [Rewrap]: fold molecule centers of mass into the periodic cell
//
// [Alternator] wraps any control so it only runs every Nth step:
//
//	thermostat, _ := control.NewBerendsenThermostat(300, 100)
//	every5, _ := control.NewAlternator(5, thermostat)
//
// Ordering between controls is load-bearing and owned by the caller:
// momentum removal usually runs before thermostatting because the
// temperature depends on the frame velocities are measured in.
//
// Runtime calls never fail. Degenerate systems (zero temperature, zero total
// mass, singular inertia tensor) propagate non-finite values into the
// velocities instead of returning errors.
package control
