package arena

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"
	"time"

	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/parameter"
)

// UnitSnapshot is the read-only state of one fighter
type UnitSnapshot struct {
	Entity    core.Entity
	Team      core.Team
	X, Y      float64
	Health    float64
	MaxHealth float64
	Dead      bool

	// Cooldowns holds one fraction per ability: 0 means ready, 1 means
	// just triggered
	Cooldowns [component.AbilityCount]float64
}

// ProjectileSnapshot is the read-only state of one in-flight projectile
type ProjectileSnapshot struct {
	Entity core.Entity
	Team   core.Team
	X, Y   float64
}

// Snapshot is a deterministic view of the whole match. Units and
// projectiles are sorted by entity id so two identical runs produce
// byte-identical snapshots.
type Snapshot struct {
	Tick       int64
	Elapsed    time.Duration
	Phase      core.Phase
	TimeToNext time.Duration
	Winner     core.Team
	Draw       bool

	Units       []UnitSnapshot
	Projectiles []ProjectileSnapshot
}

var abilityCooldowns = [component.AbilityCount]time.Duration{
	component.AbilityDash:   parameter.DashCooldown,
	component.AbilityShield: parameter.ShieldCooldown,
	component.AbilityRanged: parameter.RangedCooldown,
}

// Snapshot captures the current match state
func (m *Match) Snapshot() Snapshot {
	w := m.world
	match := w.Resource.Match

	snap := Snapshot{
		Tick:       w.Resource.Time.Tick,
		Elapsed:    w.Resource.Time.Elapsed,
		Phase:      match.Phase,
		TimeToNext: match.TimeToNext,
		Winner:     match.Winner,
		Draw:       match.Draw,
	}

	c := &w.Component
	for _, e := range c.Vitality.Entities() {
		pos, ok := c.Transform.Get(e)
		if !ok {
			continue
		}
		vit, _ := c.Vitality.Get(e)
		alg, _ := c.Allegiance.Get(e)

		unit := UnitSnapshot{
			Entity:    e,
			Team:      alg.Team,
			X:         pos.X,
			Y:         pos.Y,
			Health:    vit.Health,
			MaxHealth: vit.MaxHealth,
			Dead:      c.Death.Has(e),
		}
		if ab, ok := c.Ability.Get(e); ok {
			for kind, slot := range ab.Slots {
				max := abilityCooldowns[kind]
				if slot.Cooldown > 0 && max > 0 {
					f := float64(slot.Cooldown) / float64(max)
					if f > 1 {
						f = 1
					}
					unit.Cooldowns[kind] = f
				}
			}
		}
		snap.Units = append(snap.Units, unit)
	}
	sort.Slice(snap.Units, func(i, j int) bool {
		return snap.Units[i].Entity < snap.Units[j].Entity
	})

	for _, e := range c.Projectile.Entities() {
		pos, ok := c.Transform.Get(e)
		if !ok {
			continue
		}
		proj, _ := c.Projectile.Get(e)
		snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{
			Entity: e,
			Team:   proj.Team,
			X:      pos.X,
			Y:      pos.Y,
		})
	}
	sort.Slice(snap.Projectiles, func(i, j int) bool {
		return snap.Projectiles[i].Entity < snap.Projectiles[j].Entity
	})

	return snap
}

// Digest hashes the snapshot into a stable 64-bit value. Equal runs
// give equal digests; any divergence in state shows up here.
func (s Snapshot) Digest() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeF64 := func(v float64) {
		writeU64(math.Float64bits(v))
	}

	writeU64(uint64(s.Tick))
	writeU64(uint64(s.Elapsed))
	writeU64(uint64(s.Phase))
	writeU64(uint64(s.TimeToNext))
	writeU64(uint64(int64(s.Winner)))
	if s.Draw {
		writeU64(1)
	} else {
		writeU64(0)
	}

	writeU64(uint64(len(s.Units)))
	for _, u := range s.Units {
		writeU64(uint64(u.Entity))
		writeU64(uint64(int64(u.Team)))
		writeF64(u.X)
		writeF64(u.Y)
		writeF64(u.Health)
		writeF64(u.MaxHealth)
		if u.Dead {
			writeU64(1)
		} else {
			writeU64(0)
		}
		for _, f := range u.Cooldowns {
			writeF64(f)
		}
	}

	writeU64(uint64(len(s.Projectiles)))
	for _, p := range s.Projectiles {
		writeU64(uint64(p.Entity))
		writeU64(uint64(int64(p.Team)))
		writeF64(p.X)
		writeF64(p.Y)
	}

	return h.Sum64()
}
