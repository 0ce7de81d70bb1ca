package sim

import (
	"fmt"

	"github.com/san-kum/moldyn/internal/config"
	"github.com/san-kum/moldyn/internal/control"
	"github.com/san-kum/moldyn/internal/core"
)

// Registry maps configuration names to control factories so a pipeline can
// be assembled from a config file.
type Registry struct {
	controls map[string]func(config.ControlConfig) (control.Control, error)
}

func NewRegistry() *Registry {
	r := &Registry{
		controls: make(map[string]func(config.ControlConfig) (control.Control, error)),
	}

	r.controls["rescale"] = func(cfg config.ControlConfig) (control.Control, error) {
		if cfg.Tolerance != nil {
			return control.NewRescaleThermostatWithTolerance(cfg.Temperature, *cfg.Tolerance)
		}
		return control.NewRescaleThermostat(cfg.Temperature)
	}
	r.controls["berendsen"] = func(cfg config.ControlConfig) (control.Control, error) {
		return control.NewBerendsenThermostat(cfg.Temperature, cfg.Tau)
	}
	r.controls["remove-translation"] = func(config.ControlConfig) (control.Control, error) {
		return control.NewRemoveTranslation(), nil
	}
	r.controls["remove-rotation"] = func(config.ControlConfig) (control.Control, error) {
		return control.NewRemoveRotation(), nil
	}
	r.controls["rewrap"] = func(config.ControlConfig) (control.Control, error) {
		return control.NewRewrap(), nil
	}

	return r
}

// Controls returns the registered control kinds.
func (r *Registry) Controls() []string {
	kinds := make([]string, 0, len(r.controls))
	for kind := range r.controls {
		kinds = append(kinds, kind)
	}
	return kinds
}

// BuildControl assembles one control from its configuration, wrapping it in
// an alternator when an invocation period above one is requested.
func (r *Registry) BuildControl(cfg config.ControlConfig) (control.Control, error) {
	factory, ok := r.controls[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: control kind %q", core.ErrUnknownName, cfg.Kind)
	}

	c, err := factory(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Every > 1 {
		return control.NewAlternator(cfg.Every, c)
	}
	return c, nil
}

// BuildPipeline assembles the full control list, preserving the order of the
// configuration entries.
func (r *Registry) BuildPipeline(cfgs []config.ControlConfig) ([]control.Control, error) {
	pipeline := make([]control.Control, 0, len(cfgs))
	for _, cfg := range cfgs {
		c, err := r.BuildControl(cfg)
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, c)
	}
	return pipeline, nil
}
