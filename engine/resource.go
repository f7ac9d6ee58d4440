package engine

import (
	"time"

	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/parameter"
	"github.com/lixenwraith/skirmish/vmath"
)

// Resources is the set of world-global singletons systems read. All of
// it is owned by the orchestrator; the simulation never reads the wall
// clock itself, so two runs fed identical deltas stay identical.
type Resources struct {
	Time   *TimeResource
	Config *ConfigResource
	Rand   *RandResource
	Match  *MatchResource
	Stats  *StatsRegistry
}

// TimeResource is written by the orchestrator before systems run
type TimeResource struct {
	// Delta is the externally supplied step duration for this tick
	Delta time.Duration

	// Elapsed is total simulated match time
	Elapsed time.Duration

	// Tick counts completed steps, starting at 1 for the first step
	Tick int64
}

// ConfigResource carries the resolved arena tuning
type ConfigResource struct {
	ArenaWidth     float64
	ArenaHeight    float64
	CellSize       float64
	MoveSpeed      float64
	TeleportRadius float64

	WarningAt  time.Duration
	CollapseAt time.Duration
	ShowdownAt time.Duration
}

// RandResource wraps the match's seeded generator
type RandResource struct {
	Rand *vmath.FastRand
}

// MatchResource is the read-only view of the phase controller's state.
// Written only by the phase system; everyone else treats it as a report.
type MatchResource struct {
	Phase      core.Phase
	Winner     core.Team
	Draw       bool
	TimeToNext time.Duration
}

// initResources installs defaults so a bare world is usable in tests
func initResources(w *World) {
	w.Resource = Resources{
		Time: &TimeResource{},
		Config: &ConfigResource{
			ArenaWidth:     parameter.DefaultArenaWidth,
			ArenaHeight:    parameter.DefaultArenaHeight,
			CellSize:       parameter.DefaultCellSize,
			MoveSpeed:      parameter.DefaultMoveSpeed,
			TeleportRadius: parameter.DefaultTeleportRadius,
			WarningAt:      parameter.DefaultWarningAt,
			CollapseAt:     parameter.DefaultCollapseAt,
			ShowdownAt:     parameter.DefaultShowdownAt,
		},
		Rand:  &RandResource{Rand: vmath.NewFastRand(1)},
		Match: &MatchResource{Phase: core.PhaseNormal},
		Stats: NewStatsRegistry(),
	}
}
