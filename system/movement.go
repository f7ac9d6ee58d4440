package system

import (
	"sync/atomic"

	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/event"
	"github.com/lixenwraith/skirmish/parameter"
	"github.com/lixenwraith/skirmish/vmath"
)

// MovementSystem converts move orders into velocity and integrates
// position. Two passes per tick: steering writes velocity for entities
// with an unarrived order, then integration advances every entity that
// has velocity at all. The split lets abilities drive velocity without
// an order, and leaves room for a separation heuristic between the
// passes later.
type MovementSystem struct {
	world *engine.World

	statOrders  *atomic.Int64
	statDropped *atomic.Int64
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		world:       world,
		statOrders:  world.Resource.Stats.Counter("movement.orders"),
		statDropped: world.Resource.Stats.Counter("movement.dropped"),
	}
	return s
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMoveOrder,
		event.EventAttackOrder,
	}
}

// HandleEvent applies queued orders. Stale handles and dead entities
// are dropped; the rest of the batch still applies.
func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventMoveOrder:
		p, ok := ev.Payload.(*event.MoveOrderPayload)
		if !ok {
			return
		}
		for _, e := range p.Entities {
			s.setOrder(e, p.X, p.Y)
		}

	case event.EventAttackOrder:
		p, ok := ev.Payload.(*event.AttackOrderPayload)
		if !ok {
			return
		}
		// Attack is a move to the target's position as of order intake
		pos, ok := s.world.Component.Transform.Get(p.Target)
		if !ok || !s.world.Alive(p.Target) {
			s.statDropped.Add(1)
			return
		}
		for _, e := range p.Entities {
			s.setOrder(e, pos.X, pos.Y)
		}
	}
}

func (s *MovementSystem) setOrder(e core.Entity, x, y float64) {
	if err := s.world.ValidateEntity(e); err != nil {
		s.statDropped.Add(1)
		return
	}
	if s.world.Component.Death.Has(e) || !s.world.Component.Transform.Has(e) {
		s.statDropped.Add(1)
		return
	}
	s.world.Component.Order.Set(e, component.OrderComponent{
		TargetX: x,
		TargetY: y,
		Arrived: false,
	})
	s.statOrders.Add(1)
}

func (s *MovementSystem) Update() {
	dt := s.world.Resource.Time.Delta.Seconds()
	if dt <= 0 {
		return
	}
	cfg := s.world.Resource.Config

	// Pass 1: steering
	for _, e := range s.world.Component.Order.Entities() {
		if s.world.Component.Death.Has(e) {
			continue
		}
		ord, ok := s.world.Component.Order.Get(e)
		if !ok || ord.Arrived {
			continue
		}
		pos, ok := s.world.Component.Transform.Get(e)
		if !ok {
			continue
		}
		// Dash owns velocity while active; steering resumes after
		if ab, ok := s.world.Component.Ability.Get(e); ok && ab.Slots[component.AbilityDash].Active > 0 {
			continue
		}

		dx := ord.TargetX - pos.X
		dy := ord.TargetY - pos.Y
		if vmath.MagnitudeSq(dx, dy) <= parameter.ArrivalThreshold*parameter.ArrivalThreshold {
			ord.Arrived = true
			s.world.Component.Order.Set(e, ord)
			s.world.Component.Kinetic.Set(e, component.KineticComponent{})
			continue
		}

		nx, ny := vmath.Normalize2D(dx, dy)
		s.world.Component.Kinetic.Set(e, component.KineticComponent{
			VelX: nx * cfg.MoveSpeed,
			VelY: ny * cfg.MoveSpeed,
		})
		pos.Facing = vmath.Heading(nx, ny)
		s.world.Component.Transform.Set(e, pos)
	}

	// Pass 2: integration. Projectiles integrate in the ability system
	// with their own collision sweep, so they are skipped here.
	for _, e := range s.world.Component.Kinetic.Entities() {
		if s.world.Component.Projectile.Has(e) {
			continue
		}
		kin, ok := s.world.Component.Kinetic.Get(e)
		if !ok || (kin.VelX == 0 && kin.VelY == 0) {
			continue
		}
		pos, ok := s.world.Component.Transform.Get(e)
		if !ok {
			continue
		}
		pos.X = vmath.Clamp(pos.X+kin.VelX*dt, 0, cfg.ArenaWidth)
		pos.Y = vmath.Clamp(pos.Y+kin.VelY*dt, 0, cfg.ArenaHeight)
		s.world.Component.Transform.Set(e, pos)
		s.world.Spatial.Update(e, pos.X, pos.Y)
	}
}
