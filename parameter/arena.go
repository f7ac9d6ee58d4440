package parameter

import "time"

// Arena geometry and match timing defaults. Overridable through the
// TOML match config; these are the values the tests assume.
const (
	DefaultArenaWidth  = 1000.0
	DefaultArenaHeight = 1000.0

	// DefaultCellSize is tuned to 2-4x the typical attack range so a
	// radius query touches at most a 2x2 cell neighborhood.
	DefaultCellSize = 128.0

	// DefaultMoveSpeed is steering speed in units per second
	DefaultMoveSpeed = 60.0

	// ArrivalThreshold is the distance at which a move order completes
	ArrivalThreshold = 4.0

	// DefaultTeleportRadius bounds the showdown scatter around the
	// arena center
	DefaultTeleportRadius = 80.0
)

// Match phase thresholds, elapsed match time
const (
	DefaultWarningAt  = 120 * time.Second
	DefaultCollapseAt = 145 * time.Second
	DefaultShowdownAt = 150 * time.Second
)
