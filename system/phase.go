package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/engine"
	"github.com/lixenwraith/skirmish/event"
	"github.com/lixenwraith/skirmish/parameter"
)

// MatchState is the explicit phase-controller state. It is owned by
// the PhaseSystem and threaded through the world's match resource as a
// read-only report; there is no process-wide singleton, so concurrent
// match instances never share phase state.
//
// Entry side effects are guarded by explicit per-phase handled flags,
// not by diffing phase values between ticks: a single oversized delta
// that crosses several thresholds still fires each entry exactly once,
// in order.
type MatchState struct {
	Phase  core.Phase
	Winner core.Team
	Draw   bool

	warningFired  bool
	collapseFired bool
	showdownFired bool
	victoryFired  bool
}

// PhaseSystem drives the time-based match state machine:
// normal -> warning -> collapse -> showdown -> victory, strictly
// forward. Transitions depend purely on elapsed simulated time against
// configured thresholds; threshold polling is retained over scheduled
// callbacks because it replays deterministically.
type PhaseSystem struct {
	world *engine.World
	state MatchState

	statTeleports *atomic.Int64
	statVictories *atomic.Int64
}

func NewPhaseSystem(world *engine.World) engine.System {
	return &PhaseSystem{
		world:         world,
		state:         MatchState{Phase: core.PhaseNormal},
		statTeleports: world.Resource.Stats.Counter("phase.teleports"),
		statVictories: world.Resource.Stats.Counter("phase.victories"),
	}
}

func (s *PhaseSystem) Name() string { return "phase" }

func (s *PhaseSystem) Priority() int { return parameter.PriorityPhase }

func (s *PhaseSystem) Update() {
	// Victory is terminal; the controller is a pure reporter now
	if s.state.Phase == core.PhaseVictory {
		s.publish()
		return
	}

	elapsed := s.world.Resource.Time.Elapsed
	cfg := s.world.Resource.Config

	if s.state.Phase == core.PhaseNormal && elapsed >= cfg.WarningAt {
		s.state.Phase = core.PhaseWarning
		if !s.state.warningFired {
			s.state.warningFired = true
			// Advisory only, no entity mutation
			s.world.PushEvent(event.EventPhaseChanged, &event.PhaseChangedPayload{Phase: core.PhaseWarning})
		}
	}
	if s.state.Phase == core.PhaseWarning && elapsed >= cfg.CollapseAt {
		s.state.Phase = core.PhaseCollapse
		if !s.state.collapseFired {
			s.state.collapseFired = true
			s.world.PushEvent(event.EventPhaseChanged, &event.PhaseChangedPayload{Phase: core.PhaseCollapse})
		}
	}
	if s.state.Phase == core.PhaseCollapse && elapsed >= cfg.ShowdownAt {
		s.state.Phase = core.PhaseShowdown
		if !s.state.showdownFired {
			s.state.showdownFired = true
			s.enterShowdown()
			s.world.PushEvent(event.EventPhaseChanged, &event.PhaseChangedPayload{Phase: core.PhaseShowdown})
		}
	}

	// The victory check runs once per tick only after showdown entry
	if s.state.Phase == core.PhaseShowdown {
		s.checkVictory()
	}

	s.publish()
}

// enterShowdown teleports every living combatant into the confined
// arena around the center, clears orders and velocity, and flags them
// force-engaged so the combat range gate no longer applies. Runs
// exactly once per match.
func (s *PhaseSystem) enterShowdown() {
	cfg := s.world.Resource.Config
	rand := s.world.Resource.Rand.Rand
	cx, cy := cfg.ArenaWidth/2, cfg.ArenaHeight/2

	living := s.world.Query().
		With(s.world.Component.Vitality).
		With(s.world.Component.Allegiance).
		With(s.world.Component.Transform).
		Execute()

	for _, e := range living {
		if s.world.Component.Death.Has(e) {
			continue
		}
		vit, _ := s.world.Component.Vitality.Get(e)
		if vit.Health <= 0 {
			continue
		}

		pos, _ := s.world.Component.Transform.Get(e)
		pos.X, pos.Y = rand.PointInCircle(cx, cy, cfg.TeleportRadius)
		s.world.Component.Transform.Set(e, pos)
		s.world.Spatial.Update(e, pos.X, pos.Y)

		s.world.Component.Kinetic.Set(e, component.KineticComponent{})
		if ord, ok := s.world.Component.Order.Get(e); ok {
			ord.Arrived = true
			s.world.Component.Order.Set(e, ord)
		}
		s.world.Component.Engage.Set(e, component.EngageComponent{})
		s.statTeleports.Add(1)
	}
}

// checkVictory counts living entities per team. Exactly one surviving
// team wins; zero surviving teams is a draw; two or more keeps the
// showdown running.
func (s *PhaseSystem) checkVictory() {
	alive := make(map[core.Team]int, 2)

	for _, e := range s.world.Component.Vitality.Entities() {
		if s.world.Component.Death.Has(e) {
			continue
		}
		vit, _ := s.world.Component.Vitality.Get(e)
		if vit.Health <= 0 {
			continue
		}
		al, ok := s.world.Component.Allegiance.Get(e)
		if !ok || !al.Team.Targetable() {
			continue
		}
		alive[al.Team]++
	}

	if len(alive) >= 2 {
		return
	}

	s.state.Phase = core.PhaseVictory
	if len(alive) == 1 {
		for team := range alive {
			s.state.Winner = team
		}
	} else {
		// Simultaneous elimination
		s.state.Draw = true
	}

	if !s.state.victoryFired {
		s.state.victoryFired = true
		s.statVictories.Add(1)
		s.world.PushEvent(event.EventMatchOver, &event.MatchOverPayload{
			Winner: s.state.Winner,
			Draw:   s.state.Draw,
		})
	}
}

// publish mirrors controller state into the match resource for
// snapshots and frontends
func (s *PhaseSystem) publish() {
	res := s.world.Resource.Match
	res.Phase = s.state.Phase
	res.Winner = s.state.Winner
	res.Draw = s.state.Draw
	res.TimeToNext = s.timeToNext()
}

// timeToNext reports the remaining time before the next threshold,
// zero once no threshold remains
func (s *PhaseSystem) timeToNext() time.Duration {
	elapsed := s.world.Resource.Time.Elapsed
	cfg := s.world.Resource.Config

	var next time.Duration
	switch s.state.Phase {
	case core.PhaseNormal:
		next = cfg.WarningAt
	case core.PhaseWarning:
		next = cfg.CollapseAt
	case core.PhaseCollapse:
		next = cfg.ShowdownAt
	default:
		return 0
	}
	if next <= elapsed {
		return 0
	}
	return next - elapsed
}
