package component

import "time"

// AttackComponent is the auto-attack profile. Cooldown decreases
// monotonically with elapsed tick time and is usable at <= 0; a swing
// resets it to 1/AttacksPerSec. Finding no target is not penalized:
// the cooldown simply stays at zero for re-evaluation next tick.
type AttackComponent struct {
	Damage        float64
	Range         float64
	AttacksPerSec float64
	Cooldown      time.Duration
}
