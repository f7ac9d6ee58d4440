package engine

import "github.com/lixenwraith/skirmish/core"

// AnyStore is the type-erased store surface used for entity lifecycle
// (destroy-everywhere, clear-all) without knowing component types.
type AnyStore interface {
	Has(e core.Entity) bool
	Remove(e core.Entity)
	RemoveBatch(entities []core.Entity)
	Clear()
	Count() int
}

// QueryableStore is the surface the query builder needs: membership
// plus a stable entity snapshot.
type QueryableStore interface {
	Has(e core.Entity) bool
	Entities() []core.Entity
	Count() int
}
