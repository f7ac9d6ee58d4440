package system

import (
	"time"

	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/event"
	"github.com/lixenwraith/skirmish/parameter"
)

// harness wires a world with the full system set the way the match
// orchestrator does, letting tests drive ticks and commands directly
type harness struct {
	world  *engine.World
	queue  *event.EventQueue
	router *engine.EventRouter
}

func newHarness() *harness {
	w := engine.NewWorld()
	cfg := w.Resource.Config
	w.Spatial = engine.NewSpatialIndex(cfg.ArenaWidth, cfg.ArenaHeight, cfg.CellSize)

	queue := event.NewEventQueue()
	w.SetEventQueue(queue)

	router := engine.NewEventRouter()
	for _, s := range []engine.System{
		NewMovementSystem(w),
		NewCombatSystem(w),
		NewAbilitySystem(w),
		NewPhaseSystem(w),
		NewCleanupSystem(w),
	} {
		w.AddSystem(s)
		router.RegisterSystem(s)
	}

	return &harness{world: w, queue: queue, router: router}
}

// step advances one tick: commands drain first, then systems run
func (h *harness) step(dt time.Duration) {
	t := h.world.Resource.Time
	t.Tick++
	t.Delta = dt
	t.Elapsed += dt

	if pending := h.queue.Consume(); len(pending) > 0 {
		h.router.Dispatch(pending)
	}
	h.world.Update()
}

// spawn creates a baseline fighter at (x, y)
func (h *harness) spawn(team core.Team, x, y float64) core.Entity {
	e := h.world.CreateEntity()
	c := &h.world.Component
	c.Transform.Set(e, component.TransformComponent{X: x, Y: y})
	c.Kinetic.Set(e, component.KineticComponent{})
	c.Vitality.Set(e, component.VitalityComponent{Health: 100, MaxHealth: 100})
	c.Allegiance.Set(e, component.AllegianceComponent{Team: team})
	c.Attack.Set(e, component.AttackComponent{
		Damage:        parameter.DefaultDamage,
		Range:         parameter.DefaultAttackRange,
		AttacksPerSec: parameter.DefaultAttacksPerSec,
	})
	c.Ability.Set(e, component.AbilityComponent{})
	h.world.Spatial.Insert(e, x, y, 0)
	return e
}

func (h *harness) health(e core.Entity) float64 {
	vit, _ := h.world.Component.Vitality.Get(e)
	return vit.Health
}

func (h *harness) position(e core.Entity) (float64, float64) {
	pos, _ := h.world.Component.Transform.Get(e)
	return pos.X, pos.Y
}

func (h *harness) stat(name string) int64 {
	return h.world.Resource.Stats.Counter(name).Load()
}
