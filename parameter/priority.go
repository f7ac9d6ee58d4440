package parameter

// System priorities. Lower runs first. The tick contract depends on
// this exact order: commands are dispatched before movement, combat
// reads positions that already reflect this tick's movement, the phase
// controller sees the tick's casualties, and cleanup runs last.
const (
	PriorityMovement = 10
	PriorityCombat   = 20
	PriorityAbility  = 30
	PriorityPhase    = 40
	PriorityCleanup  = 50
)
