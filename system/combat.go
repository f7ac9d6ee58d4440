package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/parameter"
	"github.com/lixenwraith/skirmish/vmath"
)

// CombatSystem resolves auto-attacks: per attacker per tick, decrement
// the cooldown, find the nearest living enemy in range through the
// spatial index, and apply shield-adjusted damage.
//
// The attacker set is snapshotted against the death tags present when
// the tick begins, so two entities that kill each other in the same
// tick both get their swing in; that is what lets a simultaneous
// elimination resolve as a draw instead of an order-dependent win.
type CombatSystem struct {
	world *engine.World

	queryBuf []core.Entity

	statSwings *atomic.Int64
	statKills  *atomic.Int64
}

func NewCombatSystem(world *engine.World) engine.System {
	return &CombatSystem{
		world:      world,
		queryBuf:   make([]core.Entity, 0, 64),
		statSwings: world.Resource.Stats.Counter("combat.swings"),
		statKills:  world.Resource.Stats.Counter("combat.kills"),
	}
}

func (s *CombatSystem) Name() string { return "combat" }

func (s *CombatSystem) Priority() int { return parameter.PriorityCombat }

func (s *CombatSystem) Update() {
	dt := s.world.Resource.Time.Delta
	tick := s.world.Resource.Time.Tick
	cfg := s.world.Resource.Config

	attackers := s.world.Component.Attack.Entities()
	deadAtStart := make(map[core.Entity]bool, 8)
	for _, e := range attackers {
		if s.world.Component.Death.Has(e) {
			deadAtStart[e] = true
		}
	}

	for _, e := range attackers {
		if deadAtStart[e] {
			continue
		}
		atk, ok := s.world.Component.Attack.Get(e)
		if !ok {
			continue
		}

		if atk.Cooldown > 0 {
			atk.Cooldown -= dt
			if atk.Cooldown < 0 {
				atk.Cooldown = 0
			}
			if atk.Cooldown > 0 {
				s.world.Component.Attack.Set(e, atk)
				continue
			}
		}

		al, ok := s.world.Component.Allegiance.Get(e)
		if !ok || !al.Team.Targetable() {
			s.world.Component.Attack.Set(e, atk)
			continue
		}
		pos, ok := s.world.Component.Transform.Get(e)
		if !ok {
			s.world.Component.Attack.Set(e, atk)
			continue
		}

		// Showdown force-engagement bypasses the range gate
		rng := atk.Range
		if s.world.Component.Engage.Has(e) {
			rng = math.Hypot(cfg.ArenaWidth, cfg.ArenaHeight)
		}

		target := s.nearestEnemy(e, al.Team, pos.X, pos.Y, rng)
		if target == core.NoEntity {
			// Not a penalized failure; stays ready for next tick
			s.world.Component.Attack.Set(e, atk)
			continue
		}

		if applyDamage(s.world, target, atk.Damage, tick) {
			s.statKills.Add(1)
		}
		s.statSwings.Add(1)

		atk.Cooldown = time.Duration(float64(time.Second) / atk.AttacksPerSec)
		s.world.Component.Attack.Set(e, atk)
	}
}

// nearestEnemy picks the closest hostile living entity by Euclidean
// distance. The candidate list arrives sorted by entity id, so a
// strict less-than keeps the lower id on distance ties.
func (s *CombatSystem) nearestEnemy(self core.Entity, team core.Team, x, y, radius float64) core.Entity {
	s.queryBuf = s.world.Spatial.QueryRadius(x, y, radius, s.queryBuf)

	best := core.NoEntity
	bestDistSq := math.MaxFloat64
	for _, cand := range s.queryBuf {
		if cand == self {
			continue
		}
		if !targetable(s.world, team, cand) {
			continue
		}
		cpos, ok := s.world.Component.Transform.Get(cand)
		if !ok {
			continue
		}
		dSq := vmath.DistSq(x, y, cpos.X, cpos.Y)
		if dSq < bestDistSq {
			bestDistSq = dSq
			best = cand
		}
	}
	return best
}
