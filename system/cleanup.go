package system

import (
	"sync/atomic"

	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/parameter"
)

// CleanupSystem destroys mortality-tagged entities one tick after the
// tag first appeared, never in the tick that applied it. Same-tick
// observers (combat, phase controller, snapshots) all see the terminal
// state exactly once before the rows disappear.
type CleanupSystem struct {
	world *engine.World

	batch []core.Entity

	statRemoved *atomic.Int64
}

func NewCleanupSystem(world *engine.World) engine.System {
	return &CleanupSystem{
		world:       world,
		batch:       make([]core.Entity, 0, 16),
		statRemoved: world.Resource.Stats.Counter("cleanup.removed"),
	}
}

func (s *CleanupSystem) Name() string { return "cleanup" }

func (s *CleanupSystem) Priority() int { return parameter.PriorityCleanup }

func (s *CleanupSystem) Update() {
	tick := s.world.Resource.Time.Tick

	s.batch = s.batch[:0]
	for _, e := range s.world.Component.Death.Entities() {
		dc, ok := s.world.Component.Death.Get(e)
		if !ok {
			continue
		}
		if dc.Tick < tick {
			s.batch = append(s.batch, e)
		}
	}
	if len(s.batch) == 0 {
		return
	}

	s.world.DestroyBatch(s.batch)
	s.statRemoved.Add(int64(len(s.batch)))
}
