// Package arena assembles a world, its systems and the command queue
// into a runnable match, and exposes the stepping and inspection API
// the frontend and the tests drive.
package arena

import (
	"fmt"
	"time"

	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/config"
	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/event"
	"github.com/lixenwraith/skirmish/parameter"
	"github.com/lixenwraith/skirmish/system"
	"github.com/lixenwraith/skirmish/vmath"
)

// Match owns one simulation run. All mutation happens through Push and
// Step; everything else is read-only inspection.
type Match struct {
	world  *engine.World
	queue  *event.EventQueue
	router *engine.EventRouter
}

// Loadout is the combat profile attached to a spawned fighter. All
// fighters carry the full ability set; the loadout tunes the basic
// attack and durability.
type Loadout struct {
	MaxHealth     float64
	Damage        float64
	Range         float64
	AttacksPerSec float64
}

// DefaultLoadout returns the baseline fighter profile
func DefaultLoadout() Loadout {
	return Loadout{
		MaxHealth:     100,
		Damage:        parameter.DefaultDamage,
		Range:         parameter.DefaultAttackRange,
		AttacksPerSec: parameter.DefaultAttacksPerSec,
	}
}

// New builds a match from a validated config and a deterministic seed.
// Two matches built with equal config and seed, fed equal commands and
// deltas, produce byte-identical snapshots.
func New(cfg config.MatchConfig, seed uint64) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := engine.NewWorld()
	w.Resource.Config = &engine.ConfigResource{
		ArenaWidth:     cfg.ArenaWidth,
		ArenaHeight:    cfg.ArenaHeight,
		CellSize:       cfg.CellSize,
		MoveSpeed:      cfg.MoveSpeed,
		TeleportRadius: cfg.TeleportRadius,
		WarningAt:      cfg.Warning(),
		CollapseAt:     cfg.Collapse(),
		ShowdownAt:     cfg.Showdown(),
	}
	w.Resource.Rand = &engine.RandResource{Rand: vmath.NewFastRand(seed)}
	w.Spatial = engine.NewSpatialIndex(cfg.ArenaWidth, cfg.ArenaHeight, cfg.CellSize)

	queue := event.NewEventQueue()
	w.SetEventQueue(queue)

	router := engine.NewEventRouter()
	for _, s := range []engine.System{
		system.NewMovementSystem(w),
		system.NewCombatSystem(w),
		system.NewAbilitySystem(w),
		system.NewPhaseSystem(w),
		system.NewCleanupSystem(w),
	} {
		w.AddSystem(s)
		router.RegisterSystem(s)
	}

	return &Match{
		world:  w,
		queue:  queue,
		router: router,
	}, nil
}

// SpawnFighter adds a fighter before the fight escalates. Spawning is
// a setup operation and is rejected once the match has left the normal
// phase.
func (m *Match) SpawnFighter(team core.Team, x, y float64, loadout Loadout) (core.Entity, error) {
	if !team.Targetable() {
		return core.NoEntity, fmt.Errorf("spawn: team %d is not a fighting team", team)
	}
	if m.world.Resource.Match.Phase != core.PhaseNormal {
		return core.NoEntity, fmt.Errorf("spawn: match already in phase %s", m.world.Resource.Match.Phase)
	}
	cfg := m.world.Resource.Config
	x = vmath.Clamp(x, 0, cfg.ArenaWidth)
	y = vmath.Clamp(y, 0, cfg.ArenaHeight)

	e := m.world.CreateEntity()
	c := &m.world.Component
	c.Transform.Set(e, component.TransformComponent{X: x, Y: y})
	c.Kinetic.Set(e, component.KineticComponent{})
	c.Vitality.Set(e, component.VitalityComponent{
		Health:    loadout.MaxHealth,
		MaxHealth: loadout.MaxHealth,
	})
	c.Allegiance.Set(e, component.AllegianceComponent{Team: team})
	c.Attack.Set(e, component.AttackComponent{
		Damage:        loadout.Damage,
		Range:         loadout.Range,
		AttacksPerSec: loadout.AttacksPerSec,
	})
	c.Ability.Set(e, component.AbilityComponent{})
	m.world.Spatial.Insert(e, x, y, 0)
	return e, nil
}

// Step advances the simulation by dt: tick counter, command drain and
// dispatch, then every system in priority order. The caller owns the
// clock; dt is never read from the wall.
func (m *Match) Step(dt time.Duration) {
	t := m.world.Resource.Time
	t.Tick++
	t.Delta = dt
	t.Elapsed += dt

	// Commands land before any system runs, so a tick never observes a
	// half-applied batch.
	if pending := m.queue.Consume(); len(pending) > 0 {
		m.router.Dispatch(pending)
	}

	m.world.Update()
}

// Push queues a raw command for the next step. Fire-and-forget and safe
// from any goroutine.
func (m *Match) Push(eventType event.EventType, payload any) {
	m.world.PushEvent(eventType, payload)
}

// MoveOrder queues a move command for a set of entities
func (m *Match) MoveOrder(entities []core.Entity, x, y float64) {
	m.Push(event.EventMoveOrder, &event.MoveOrderPayload{Entities: entities, X: x, Y: y})
}

// AttackOrder queues a move toward a target entity's current position
func (m *Match) AttackOrder(entities []core.Entity, target core.Entity) {
	m.Push(event.EventAttackOrder, &event.AttackOrderPayload{Entities: entities, Target: target})
}

// TriggerAbility queues an ability trigger for a set of entities
func (m *Match) TriggerAbility(entities []core.Entity, kind component.AbilityKind) {
	m.Push(event.EventAbilityTrigger, &event.AbilityTriggerPayload{Entities: entities, Kind: kind})
}

// Subscribe registers an external event handler (frontend, audio) on
// the match router
func (m *Match) Subscribe(h engine.EventHandler) {
	m.router.Register(h)
}

// World exposes the underlying world for tests and tooling
func (m *Match) World() *engine.World {
	return m.world
}

// Over reports whether the match has reached its terminal phase
func (m *Match) Over() bool {
	return m.world.Resource.Match.Phase == core.PhaseVictory
}
