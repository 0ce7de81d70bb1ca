package core

import "errors"

// Domain errors for simulation setup and execution.
var (
	// ErrInvalidConfiguration indicates a parameter that can never describe a
	// valid simulation, such as a negative target temperature.
	ErrInvalidConfiguration = errors.New("core: invalid configuration")

	// ErrInvalidState indicates particle data with NaN or Inf components.
	ErrInvalidState = errors.New("core: invalid state (NaN or Inf detected)")

	// ErrUnknownName indicates a registry lookup for a name that was never
	// registered.
	ErrUnknownName = errors.New("core: unknown name")

	// ErrDimensionMismatch indicates particle attribute arrays of unequal
	// length.
	ErrDimensionMismatch = errors.New("core: dimension mismatch between particle attributes")
)
