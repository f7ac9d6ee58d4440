package engine

import "github.com/lixenwraith/skirmish/event"

// EventRouter fans queued events out to subscribed handlers. Systems
// implementing EventHandler are auto-registered; external collaborators
// (frontend, audio) subscribe the same way.
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
}

func NewEventRouter() *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
	}
}

// Register subscribes a handler to every type it declares
func (r *EventRouter) Register(h EventHandler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// RegisterSystem subscribes a system if it handles events
func (r *EventRouter) RegisterSystem(s System) {
	if h, ok := s.(EventHandler); ok {
		r.Register(h)
	}
}

// Dispatch delivers a drained batch in FIFO order. Events with no
// subscriber are dropped silently; a malformed command costs nothing
// more than its slot in the queue.
func (r *EventRouter) Dispatch(events []event.GameEvent) {
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}
