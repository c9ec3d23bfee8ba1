package viewstate

import "sync"

// Event is a one-shot signal such as "login succeeded, navigate on". A value is
// delivered to exactly one consumer; a newer value replaces one not yet consumed.
type Event[T any] struct {
	mu sync.Mutex
	ch chan T
}

// NewEvent creates an event with nothing pending.
func NewEvent[T any]() *Event[T] {
	return &Event[T]{ch: make(chan T, 1)}
}

// Emit makes v pending.
func (e *Event[T]) Emit(v T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	select {
	case <-e.ch:
	default:
	}
	e.ch <- v
}

// Consume returns the pending value, if any, and clears it.
func (e *Event[T]) Consume() (T, bool) {
	select {
	case v := <-e.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// C exposes the event for select loops. Receiving from it consumes the value.
func (e *Event[T]) C() <-chan T {
	return e.ch
}
