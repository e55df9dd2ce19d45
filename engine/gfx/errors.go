package gfx

import "errors"

var (
	// ErrCapacityExceeded means a binding table is full. Limits are device
	// constants, so the draw call has to be configured differently.
	ErrCapacityExceeded = errors.New("gfx: capacity exceeded")

	// ErrUnknownSampler means the program declares no sampler by that name.
	ErrUnknownSampler = errors.New("gfx: unknown sampler")

	// ErrPrecondition means a texture upload was requested without the
	// dimensions or data its upload path requires, or a nil texture was
	// bound to a sampler.
	ErrPrecondition = errors.New("gfx: precondition violated")
)
