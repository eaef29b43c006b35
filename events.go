package flexlay

import "sync"

// Events is a simple event bus for host notifications. It is generic
// over the event type T. Listeners run synchronously, in subscription
// order, on the goroutine that calls Emit.
type Events[T any] struct {
	mu        sync.RWMutex
	listeners []func(T)
}

// NewEvents creates a new event bus.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

// Subscribe adds a listener for events.
func (e *Events[T]) Subscribe(fn func(T)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}

// Emit sends an event to all listeners.
func (e *Events[T]) Emit(event T) {
	e.mu.RLock()
	listeners := e.listeners
	e.mu.RUnlock()

	for _, fn := range listeners {
		fn(event)
	}
}
