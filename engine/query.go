package engine

import (
	"fmt"

	"github.com/lixenwraith/skirmish/core"
)

// QueryBuilder finds entities holding every component in a set. It
// starts from the smallest store and filters through the rest, and the
// result is a stable snapshot for the current tick.
//
//	ids := world.Query().
//	    With(world.Component.Vitality).
//	    With(world.Component.Allegiance).
//	    Execute()
type QueryBuilder struct {
	stores []QueryableStore
	err    error
}

// Query starts a new component intersection query
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the filter. A nil store marks the
// query as misconfigured; Execute will report ErrUnknownComponent.
func (q *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if store == nil || isNilStore(store) {
		q.err = fmt.Errorf("%w: nil store in query", core.ErrUnknownComponent)
		return q
	}
	q.stores = append(q.stores, store)
	return q
}

// Execute returns the matching entities. Misconfigured queries are a
// startup-time error surfaced through Err, not a play-time condition.
func (q *QueryBuilder) Execute() []core.Entity {
	if q.err != nil || len(q.stores) == 0 {
		return nil
	}

	// Seed from the smallest store to minimize membership checks
	smallest := q.stores[0]
	for _, s := range q.stores[1:] {
		if s.Count() < smallest.Count() {
			smallest = s
		}
	}

	result := make([]core.Entity, 0, smallest.Count())
	for _, e := range smallest.Entities() {
		hasAll := true
		for _, s := range q.stores {
			if s == smallest {
				continue
			}
			if !s.Has(e) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, e)
		}
	}
	return result
}

// Err reports query misconfiguration
func (q *QueryBuilder) Err() error {
	return q.err
}

// isNilStore catches a typed-nil *Store[T] hidden in the interface
func isNilStore(s QueryableStore) bool {
	type nilable interface{ isNil() bool }
	if n, ok := s.(nilable); ok {
		return n.isNil()
	}
	return false
}
