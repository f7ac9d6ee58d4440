package system

import (
	"github.com/lixenwraith/skirmish/component"
	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/engine"
)

// applyDamage subtracts shield-adjusted damage from a target's health,
// clamping at zero and applying the mortality tag on lethal hits.
// Returns true when the hit was lethal. Shared by the combat resolver,
// dash impacts, and projectile hits so shield math never drifts.
func applyDamage(w *engine.World, target core.Entity, amount float64, tick int64) (lethal bool) {
	vit, ok := w.Component.Vitality.Get(target)
	if !ok || vit.Health <= 0 {
		return false
	}

	reduction := 0.0
	if ab, ok := w.Component.Ability.Get(target); ok {
		reduction = ab.ShieldReduction
	}

	vit.Health -= amount * (1 - reduction)
	if vit.Health <= 0 {
		vit.Health = 0
		if !w.Component.Death.Has(target) {
			w.Component.Death.Set(target, component.DeathComponent{Tick: tick})
		}
		lethal = true
	}
	w.Component.Vitality.Set(target, vit)
	return lethal
}

// targetable reports whether attacker may strike candidate: hostile
// teams only, never the dead or the unkillable
func targetable(w *engine.World, attackerTeam core.Team, candidate core.Entity) bool {
	if w.Component.Death.Has(candidate) {
		return false
	}
	if !w.Component.Vitality.Has(candidate) {
		return false
	}
	al, ok := w.Component.Allegiance.Get(candidate)
	if !ok {
		return false
	}
	return core.Hostile(attackerTeam, al.Team)
}
