package main

import (
	"github.com/lixenwraith/skirmish/arena"
	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/vmath"
)

// autopilot issues simple scripted orders so a headless match
// progresses without a player. It reads only snapshots and pushes
// commands like any other frontend.
type autopilot struct {
	match *arena.Match
	steps int
}

func newAutopilot(match *arena.Match) *autopilot {
	return &autopilot{match: match}
}

// drive runs once per step; orders go out once a second
func (a *autopilot) drive() {
	a.steps++
	if a.steps%20 != 1 {
		return
	}

	snap := a.match.Snapshot()
	for _, u := range snap.Units {
		if u.Dead {
			continue
		}
		target := nearestEnemy(snap, u)
		if target == core.NoEntity {
			continue
		}
		a.match.AttackOrder([]core.Entity{u.Entity}, target)
		a.match.TriggerAbility([]core.Entity{u.Entity}, component.AbilityRanged)
	}
}

func nearestEnemy(snap arena.Snapshot, from arena.UnitSnapshot) core.Entity {
	best := core.NoEntity
	bestDist := 0.0
	for _, u := range snap.Units {
		if u.Dead || !core.Hostile(from.Team, u.Team) {
			continue
		}
		d := vmath.DistSq(from.X, from.Y, u.X, u.Y)
		if best == core.NoEntity || d < bestDist {
			best = u.Entity
			bestDist = d
		}
	}
	return best
}
