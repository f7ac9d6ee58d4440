package event

import (
	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
)

// GameEvent is one queued command or notification
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}

// MoveOrderPayload directs entities to a point
type MoveOrderPayload struct {
	Entities []core.Entity
	X, Y     float64
}

// AttackOrderPayload directs entities toward a target entity
type AttackOrderPayload struct {
	Entities []core.Entity
	Target   core.Entity
}

// AbilityTriggerPayload requests an ability for a set of entities
type AbilityTriggerPayload struct {
	Entities []core.Entity
	Kind     component.AbilityKind
}

// SelectionChangePayload carries frontend selection state through the
// queue; the simulation ignores it
type SelectionChangePayload struct {
	Entities []core.Entity
}

// PhaseChangedPayload announces a phase transition
type PhaseChangedPayload struct {
	Phase core.Phase
}

// MatchOverPayload announces the match result
type MatchOverPayload struct {
	Winner core.Team
	Draw   bool
}
