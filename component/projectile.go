package component

import (
	"time"

	"github.com/lixenwraith/skirmish/core"
)

// ProjectileComponent marks an in-flight ranged shot. Projectiles are
// ordinary entities with Transform and Kinetic; this component carries
// the payload. They are removed on hit, lifetime expiry, or leaving the
// arena, without the one-tick mortality grace combatants get.
type ProjectileComponent struct {
	Damage    float64
	Team      core.Team
	Owner     core.Entity
	Remaining time.Duration
}
