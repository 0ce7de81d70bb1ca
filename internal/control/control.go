package control

import "github.com/san-kum/moldyn/internal/system"

// Control is implemented by every algorithm steering a macroscopic property
// of the system during a run: thermostats, momentum correctors, rewrapping.
//
// The driver calls Setup once before the integration loop, Control once per
// qualifying step with exclusive mutable access to the system, and Finish
// once after the loop.
type Control interface {
	Setup(sys *system.System)
	Control(sys *system.System)
	Finish(sys *system.System)
}

// nopLifecycle provides the default no-op Setup and Finish so algorithms only
// have to implement Control.
type nopLifecycle struct{}

func (nopLifecycle) Setup(*system.System)  {}
func (nopLifecycle) Finish(*system.System) {}
