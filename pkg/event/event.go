// Package event dispatches named domain events to registered listeners.
//
//	bus := event.NewBus()
//	bus.Listen("order.created", func(ctx context.Context, e event.Event) {
//	    o := e.Payload.(models.Order)
//	    ...
//	})
//	bus.Fire(ctx, "order.created", order)
//
// A nil *Bus accepts Fire and drops the event.
package event

import (
	"context"
	"sync"
)

// Any subscribes a listener to every event.
const Any = "*"

// Event is what listeners receive.
type Event struct {
	Name    string
	Payload any
}

// Handler is a function that receives an event.
type Handler func(ctx context.Context, e Event)

// Bus holds listeners by event name.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: map[string][]Handler{}}
}

// Listen registers a handler for the given event name, or for all events
// when name is Any.
func (b *Bus) Listen(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Fire dispatches synchronously, named listeners first, in registration
// order.
func (b *Bus) Fire(ctx context.Context, name string, payload any) {
	e := Event{Name: name, Payload: payload}
	for _, h := range b.listeners(name) {
		h(ctx, e)
	}
}

// Flush removes all listeners.
func (b *Bus) Flush() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = map[string][]Handler{}
}

func (b *Bus) listeners(name string) []Handler {
	if b == nil {
		return nil
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	hs := make([]Handler, 0, len(b.handlers[name])+len(b.handlers[Any]))
	hs = append(hs, b.handlers[name]...)
	if name != Any {
		hs = append(hs, b.handlers[Any]...)
	}
	return hs
}
