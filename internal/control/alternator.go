package control

import (
	"fmt"

	"github.com/san-kum/moldyn/internal/core"
	"github.com/san-kum/moldyn/internal/system"
)

// Alternator wraps another control and forwards to it only every Nth call;
// the other calls leave the system untouched. It never interprets the inner
// algorithm's semantics.
type Alternator struct {
	inner Control
	every uint64
	count uint64
}

// NewAlternator wraps inner so it runs once every `every` calls.
func NewAlternator(every int, inner Control) (*Alternator, error) {
	if every < 1 {
		return nil, fmt.Errorf("%w: alternator period must be at least 1, got %d",
			core.ErrInvalidConfiguration, every)
	}
	return &Alternator{inner: inner, every: uint64(every)}, nil
}

// Inner returns the wrapped control.
func (a *Alternator) Inner() Control {
	return a.inner
}

func (a *Alternator) Setup(sys *system.System) {
	a.inner.Setup(sys)
}

func (a *Alternator) Control(sys *system.System) {
	a.count++
	if a.count%a.every == 0 {
		a.inner.Control(sys)
	}
}

func (a *Alternator) Finish(sys *system.System) {
	a.inner.Finish(sys)
}
