package engine

import (
	"github.com/lixenwraith/skirmish/component"
)

// ComponentStore holds the typed store for every component in the
// simulation. Systems cache the pointers they need at construction;
// there is no runtime type lookup on the hot path.
type ComponentStore struct {
	// Spatial state
	Transform *Store[component.TransformComponent]
	Kinetic   *Store[component.KineticComponent]

	// Combat state
	Vitality   *Store[component.VitalityComponent]
	Allegiance *Store[component.AllegianceComponent]
	Attack     *Store[component.AttackComponent]
	Ability    *Store[component.AbilityComponent]
	Projectile *Store[component.ProjectileComponent]

	// Orders and lifecycle
	Order  *Store[component.OrderComponent]
	Engage *Store[component.EngageComponent]
	Death  *Store[component.DeathComponent]
}

// initComponentStores wires every store into the world and registers
// them for uniform lifecycle handling
func initComponentStores(w *World) {
	w.Component = ComponentStore{
		Transform:  NewStore[component.TransformComponent](),
		Kinetic:    NewStore[component.KineticComponent](),
		Vitality:   NewStore[component.VitalityComponent](),
		Allegiance: NewStore[component.AllegianceComponent](),
		Attack:     NewStore[component.AttackComponent](),
		Ability:    NewStore[component.AbilityComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Order:      NewStore[component.OrderComponent](),
		Engage:     NewStore[component.EngageComponent](),
		Death:      NewStore[component.DeathComponent](),
	}

	w.allStores = []AnyStore{
		w.Component.Transform,
		w.Component.Kinetic,
		w.Component.Vitality,
		w.Component.Allegiance,
		w.Component.Attack,
		w.Component.Ability,
		w.Component.Projectile,
		w.Component.Order,
		w.Component.Engage,
		w.Component.Death,
	}
}
