package component

import "time"

// AbilityKind selects one of the three ability slots
type AbilityKind int

const (
	AbilityDash AbilityKind = iota
	AbilityShield
	AbilityRanged

	AbilityCount
)

func (k AbilityKind) String() string {
	switch k {
	case AbilityDash:
		return "dash"
	case AbilityShield:
		return "shield"
	case AbilityRanged:
		return "ranged"
	default:
		return "unknown"
	}
}

// AbilitySlot is the shared cooldown gate. Triggering while Cooldown > 0
// is a silent no-op; Active counts down the effect duration for the
// kinds that have one (dash, shield).
type AbilitySlot struct {
	Cooldown time.Duration
	Active   time.Duration
}

// Ready reports whether the slot can be triggered
func (s AbilitySlot) Ready() bool {
	return s.Cooldown <= 0
}

// AbilityComponent holds all three ability state machines for an
// entity. The slots share the trigger contract and differ only in
// their trigger and per-tick effects, which live in the ability system.
type AbilityComponent struct {
	Slots [AbilityCount]AbilitySlot

	// ShieldReduction is the live damage reduction fraction read by the
	// combat resolver and projectile hits. Non-zero only while the
	// shield slot is active.
	ShieldReduction float64
}
