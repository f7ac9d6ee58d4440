package engine

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/skirmish/core"
	"github.com/lixenwraith/skirmish/event"
)

// World owns entity identifiers and component storage. Entity handles
// are generation-checked slots: destroying an entity bumps its slot
// generation so stale handles fail Alive instead of aliasing a reused
// slot.
type World struct {
	mu          sync.RWMutex
	generations []uint32
	freeSlots   []uint32
	aliveCount  int

	Component ComponentStore
	Resource  Resources
	Spatial   *SpatialIndex

	systems   []System
	allStores []AnyStore

	eventQueue *event.EventQueue
}

// NewWorld creates an ECS world with all component stores registered
func NewWorld() *World {
	w := &World{
		generations: make([]uint32, 0, 256),
		systems:     make([]System, 0),
	}
	initComponentStores(w)
	initResources(w)
	return w
}

// CreateEntity reserves a handle, reusing a free slot when available
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	var index uint32
	if n := len(w.freeSlots); n > 0 {
		index = w.freeSlots[n-1]
		w.freeSlots = w.freeSlots[:n-1]
	} else {
		index = uint32(len(w.generations))
		// Generations start at 1 so no handle is ever the zero value
		w.generations = append(w.generations, 1)
	}
	w.aliveCount++
	return core.MakeEntity(index, w.generations[index])
}

// Alive reports whether the handle still addresses a live entity
func (w *World) Alive(e core.Entity) bool {
	if e == core.NoEntity {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	idx := e.Index()
	return int(idx) < len(w.generations) && w.generations[idx] == e.Generation()
}

// ValidateEntity returns ErrInvalidEntity for stale or unknown handles.
// Callers drop the offending operation; nothing here is fatal.
func (w *World) ValidateEntity(e core.Entity) error {
	if !w.Alive(e) {
		return fmt.Errorf("%w: %#x", core.ErrInvalidEntity, uint64(e))
	}
	return nil
}

// DestroyEntity invalidates the handle and removes every component row
// and spatial entry. Operations against the handle afterwards are
// dropped by validation. No-op for stale handles.
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	idx := e.Index()
	if int(idx) >= len(w.generations) || w.generations[idx] != e.Generation() {
		w.mu.Unlock()
		return
	}
	w.generations[idx]++
	w.freeSlots = append(w.freeSlots, idx)
	w.aliveCount--
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Remove(e)
	}
	if w.Spatial != nil {
		w.Spatial.Remove(e)
	}
}

// DestroyBatch removes many entities with one compaction pass per store
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	w.mu.Lock()
	valid := make([]core.Entity, 0, len(entities))
	for _, e := range entities {
		idx := e.Index()
		if int(idx) >= len(w.generations) || w.generations[idx] != e.Generation() {
			continue
		}
		w.generations[idx]++
		w.freeSlots = append(w.freeSlots, idx)
		w.aliveCount--
		valid = append(valid, e)
	}
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.RemoveBatch(valid)
	}
	if w.Spatial != nil {
		for _, e := range valid {
			w.Spatial.Remove(e)
		}
	}
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.aliveCount
}

// Clear removes all entities and components, keeping registered stores
func (w *World) Clear() {
	w.mu.Lock()
	w.generations = w.generations[:0]
	w.freeSlots = w.freeSlots[:0]
	w.aliveCount = 0
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Clear()
	}
	if w.Spatial != nil {
		w.Spatial.Clear()
	}
}

// AddSystem registers a system, keeping the list sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems once in priority order. The tick is
// single-threaded and synchronous; correctness depends on this fixed
// ordering, not on locking.
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// SetEventQueue wires the queue used by PushEvent
func (w *World) SetEventQueue(q *event.EventQueue) {
	w.eventQueue = q
}

// PushEvent emits a notification stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return
	}
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    w.Resource.Time.Tick,
	})
}
