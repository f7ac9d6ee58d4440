package engine

import "github.com/lixenwraith/skirmish/event"

// System is one simulation pass, run once per tick in priority order
type System interface {
	// Name identifies the system in stats and diagnostics
	Name() string

	// Priority orders execution; lower runs first
	Priority() int

	// Update advances the system by the tick delta found in the world's
	// time resource
	Update()
}

// EventHandler is implemented by systems that consume queued commands
// or notifications. The router dispatches once at tick start.
type EventHandler interface {
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
}
