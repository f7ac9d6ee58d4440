package parameter

import "time"

// Baseline attack profile
const (
	DefaultDamage        = 25.0
	DefaultAttackRange   = 50.0
	DefaultAttacksPerSec = 1.0
)

// Dash ability
const (
	DashCooldown  = 5 * time.Second
	DashDuration  = 250 * time.Millisecond
	DashSpeed     = 400.0
	DashHitRadius = 12.0
	DashDamage    = 15.0
)

// Shield ability
const (
	ShieldCooldown  = 8 * time.Second
	ShieldDuration  = 2 * time.Second
	ShieldReduction = 0.5
)

// Ranged ability
const (
	RangedCooldown     = 2 * time.Second
	ProjectileSpeed    = 220.0
	ProjectileDamage   = 20.0
	ProjectileLifetime = 3 * time.Second
	ProjectileHitRange = 8.0

	// MaxProjectiles caps live projectile entities. Triggers past the
	// cap are skipped, not queued.
	MaxProjectiles = 256
)
