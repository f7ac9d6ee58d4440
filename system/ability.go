package system

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/event"
	"github.com/lixenwraith/skirmish/parameter"
	"github.com/lixenwraith/skirmish/vmath"
)

// AbilitySystem runs the three cooldown-gated ability machines: dash,
// shield, and ranged. All three share one trigger contract (a trigger
// while the slot cooldown is positive is a silent no-op) and differ
// only in their trigger and per-tick effects. It also owns projectile
// flight: integration, proximity hits, lifetime and bounds expiry.
type AbilitySystem struct {
	world *engine.World

	queryBuf []core.Entity

	statTriggers *atomic.Int64
	statNoops    *atomic.Int64
	statShots    *atomic.Int64
	statDropped  *atomic.Int64
	statHits     *atomic.Int64
}

func NewAbilitySystem(world *engine.World) engine.System {
	return &AbilitySystem{
		world:        world,
		queryBuf:     make([]core.Entity, 0, 64),
		statTriggers: world.Resource.Stats.Counter("ability.triggers"),
		statNoops:    world.Resource.Stats.Counter("ability.noops"),
		statShots:    world.Resource.Stats.Counter("ability.shots"),
		statDropped:  world.Resource.Stats.Counter("ability.shots_dropped"),
		statHits:     world.Resource.Stats.Counter("ability.hits"),
	}
}

func (s *AbilitySystem) Name() string { return "ability" }

func (s *AbilitySystem) Priority() int { return parameter.PriorityAbility }

func (s *AbilitySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventAbilityTrigger}
}

// HandleEvent fires queued triggers at tick start, before movement, so
// a dash travels and a shield absorbs within the same tick it was
// requested for.
func (s *AbilitySystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.AbilityTriggerPayload)
	if !ok || p.Kind < 0 || p.Kind >= component.AbilityCount {
		return
	}
	for _, e := range p.Entities {
		s.trigger(e, p.Kind)
	}
}

func (s *AbilitySystem) trigger(e core.Entity, kind component.AbilityKind) {
	if err := s.world.ValidateEntity(e); err != nil {
		return
	}
	if s.world.Component.Death.Has(e) {
		return
	}
	ab, ok := s.world.Component.Ability.Get(e)
	if !ok {
		return
	}
	if !ab.Slots[kind].Ready() {
		// On cooldown: no error, no state change
		s.statNoops.Add(1)
		return
	}

	switch kind {
	case component.AbilityDash:
		s.triggerDash(e, &ab)
	case component.AbilityShield:
		ab.Slots[component.AbilityShield].Active = parameter.ShieldDuration
		ab.Slots[component.AbilityShield].Cooldown = parameter.ShieldCooldown
		ab.ShieldReduction = parameter.ShieldReduction
	case component.AbilityRanged:
		if err := s.triggerRanged(e, &ab); err != nil {
			// Pool exhausted: effect skipped, gate untouched
			s.statDropped.Add(1)
			return
		}
	}

	s.world.Component.Ability.Set(e, ab)
	s.statTriggers.Add(1)
}

// triggerDash launches the entity along its facing and applies the
// one-shot AoE to enemies near the path covered this tick
func (s *AbilitySystem) triggerDash(e core.Entity, ab *component.AbilityComponent) {
	pos, ok := s.world.Component.Transform.Get(e)
	if !ok {
		return
	}

	dirX, dirY := vmath.FromAngle(pos.Facing)
	ab.Slots[component.AbilityDash].Active = parameter.DashDuration
	ab.Slots[component.AbilityDash].Cooldown = parameter.DashCooldown
	s.world.Component.Kinetic.Set(e, component.KineticComponent{
		VelX: dirX * parameter.DashSpeed,
		VelY: dirY * parameter.DashSpeed,
	})

	al, ok := s.world.Component.Allegiance.Get(e)
	if !ok {
		return
	}

	// Path covered this tick, capped by the dash duration itself
	dt := s.world.Resource.Time.Delta.Seconds()
	if span := parameter.DashDuration.Seconds(); dt > span {
		dt = span
	}
	endX := pos.X + dirX*parameter.DashSpeed*dt
	endY := pos.Y + dirY*parameter.DashSpeed*dt

	midX, midY := (pos.X+endX)/2, (pos.Y+endY)/2
	sweep := vmath.Magnitude(endX-pos.X, endY-pos.Y)/2 + parameter.DashHitRadius
	tick := s.world.Resource.Time.Tick

	s.queryBuf = s.world.Spatial.QueryRadius(midX, midY, sweep, s.queryBuf)
	hitSq := parameter.DashHitRadius * parameter.DashHitRadius
	for _, cand := range s.queryBuf {
		if cand == e || !targetable(s.world, al.Team, cand) {
			continue
		}
		cpos, ok := s.world.Component.Transform.Get(cand)
		if !ok {
			continue
		}
		if vmath.SegmentDistSq(cpos.X, cpos.Y, pos.X, pos.Y, endX, endY) <= hitSq {
			applyDamage(s.world, cand, parameter.DashDamage, tick)
			s.statHits.Add(1)
		}
	}
}

// triggerRanged spawns a projectile entity aimed along the caster's
// velocity heading, falling back to +X when stationary
func (s *AbilitySystem) triggerRanged(e core.Entity, ab *component.AbilityComponent) error {
	if s.world.Component.Projectile.Count() >= parameter.MaxProjectiles {
		return fmt.Errorf("%w: projectiles", core.ErrPoolExhausted)
	}
	pos, ok := s.world.Component.Transform.Get(e)
	if !ok {
		return nil
	}
	al, _ := s.world.Component.Allegiance.Get(e)

	aimX, aimY := 1.0, 0.0
	if kin, ok := s.world.Component.Kinetic.Get(e); ok && (kin.VelX != 0 || kin.VelY != 0) {
		aimX, aimY = vmath.Normalize2D(kin.VelX, kin.VelY)
	}

	proj := s.world.CreateEntity()
	s.world.Component.Transform.Set(proj, component.TransformComponent{X: pos.X, Y: pos.Y})
	s.world.Component.Kinetic.Set(proj, component.KineticComponent{
		VelX: aimX * parameter.ProjectileSpeed,
		VelY: aimY * parameter.ProjectileSpeed,
	})
	s.world.Component.Projectile.Set(proj, component.ProjectileComponent{
		Damage:    parameter.ProjectileDamage,
		Team:      al.Team,
		Owner:     e,
		Remaining: parameter.ProjectileLifetime,
	})
	s.world.Spatial.Insert(proj, pos.X, pos.Y, parameter.ProjectileHitRange)

	ab.Slots[component.AbilityRanged].Cooldown = parameter.RangedCooldown
	s.statShots.Add(1)
	return nil
}

func (s *AbilitySystem) Update() {
	s.updateSlots()
	s.updateProjectiles()
}

// updateSlots decrements cooldowns and active durations for every
// ability holder, clamping at zero
func (s *AbilitySystem) updateSlots() {
	dt := s.world.Resource.Time.Delta

	for _, e := range s.world.Component.Ability.Entities() {
		ab, ok := s.world.Component.Ability.Get(e)
		if !ok {
			continue
		}

		changed := false
		for kind := component.AbilityKind(0); kind < component.AbilityCount; kind++ {
			slot := &ab.Slots[kind]
			if slot.Cooldown > 0 {
				slot.Cooldown -= dt
				if slot.Cooldown < 0 {
					slot.Cooldown = 0
				}
				changed = true
			}
			if slot.Active > 0 {
				slot.Active -= dt
				if slot.Active <= 0 {
					slot.Active = 0
					switch kind {
					case component.AbilityDash:
						// The dash ends here, not at the next steering pass
						s.world.Component.Kinetic.Set(e, component.KineticComponent{})
					case component.AbilityShield:
						ab.ShieldReduction = 0
					}
				}
				changed = true
			}
		}
		if changed {
			s.world.Component.Ability.Set(e, ab)
		}
	}
}

// updateProjectiles integrates flight, resolves proximity hits, and
// expires shots that run out of time or leave the arena
func (s *AbilitySystem) updateProjectiles() {
	dt := s.world.Resource.Time.Delta
	dtSec := dt.Seconds()
	tick := s.world.Resource.Time.Tick
	cfg := s.world.Resource.Config

	for _, e := range s.world.Component.Projectile.Entities() {
		proj, ok := s.world.Component.Projectile.Get(e)
		if !ok {
			continue
		}

		proj.Remaining -= dt
		if proj.Remaining <= 0 {
			s.world.DestroyEntity(e)
			continue
		}

		pos, ok := s.world.Component.Transform.Get(e)
		if !ok {
			s.world.DestroyEntity(e)
			continue
		}
		kin, _ := s.world.Component.Kinetic.Get(e)
		pos.X += kin.VelX * dtSec
		pos.Y += kin.VelY * dtSec

		if pos.X < 0 || pos.X > cfg.ArenaWidth || pos.Y < 0 || pos.Y > cfg.ArenaHeight {
			s.world.DestroyEntity(e)
			continue
		}

		s.world.Component.Transform.Set(e, pos)
		s.world.Component.Projectile.Set(e, proj)
		s.world.Spatial.Update(e, pos.X, pos.Y)

		if target := s.projectileHit(e, proj, pos); target != core.NoEntity {
			if applyDamage(s.world, target, proj.Damage, tick) {
				s.world.Resource.Stats.Counter("combat.kills").Add(1)
			}
			s.statHits.Add(1)
			s.world.DestroyEntity(e)
		}
	}
}

// projectileHit returns the nearest enemy within the hit range
func (s *AbilitySystem) projectileHit(e core.Entity, proj component.ProjectileComponent, pos component.TransformComponent) core.Entity {
	s.queryBuf = s.world.Spatial.QueryRadius(pos.X, pos.Y, parameter.ProjectileHitRange, s.queryBuf)

	best := core.NoEntity
	bestSq := math.MaxFloat64
	for _, cand := range s.queryBuf {
		if cand == e || cand == proj.Owner {
			continue
		}
		if !targetable(s.world, proj.Team, cand) {
			continue
		}
		cpos, ok := s.world.Component.Transform.Get(cand)
		if !ok {
			continue
		}
		dSq := vmath.DistSq(pos.X, pos.Y, cpos.X, cpos.Y)
		if dSq < bestSq {
			bestSq = dSq
			best = cand
		}
	}
	return best
}
