package event

// EventType tags queued commands and simulation notifications
type EventType int

const (
	EventNone EventType = iota

	// === Commands (external -> simulation, drained at tick start) ===

	// EventMoveOrder sets a movement destination for a set of entities
	// Consumer: MovementSystem | Payload: *MoveOrderPayload
	EventMoveOrder

	// EventAttackOrder moves entities toward a target entity's current
	// position; there is no separate focus-fire contract
	// Consumer: MovementSystem | Payload: *AttackOrderPayload
	EventAttackOrder

	// EventAbilityTrigger requests an ability activation. Triggers on
	// cooldown are silent no-ops
	// Consumer: AbilitySystem | Payload: *AbilityTriggerPayload
	EventAbilityTrigger

	// EventSelectionChange has no simulation effect; it exists so
	// frontends can observe each other's selection
	// Consumer: none | Payload: *SelectionChangePayload
	EventSelectionChange

	// === Notifications (simulation -> collaborators) ===

	// EventPhaseChanged announces a match phase transition
	// Trigger: PhaseSystem entry actions | Payload: *PhaseChangedPayload
	EventPhaseChanged

	// EventMatchOver announces the terminal victory state
	// Trigger: PhaseSystem victory check | Payload: *MatchOverPayload
	EventMatchOver
)
