package core

import "errors"

// Simulation error taxonomy. Nothing here is fatal during play: entity
// and effect errors are dropped at the point of use, only configuration
// errors abort initialization.
var (
	// ErrInvalidEntity marks an operation against a destroyed or
	// never-created handle. Dropped, simulation continues.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnknownComponent marks a query against an unregistered
	// component store. Reachable only through misconfiguration at
	// startup, never during play.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrPoolExhausted marks an effect slot shortage; the requested
	// effect is silently skipped.
	ErrPoolExhausted = errors.New("pool exhausted")
)
