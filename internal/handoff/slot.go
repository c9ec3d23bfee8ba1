// Package handoff provides single-slot stores used to pass a value between two
// decoupled steps of a multi-step flow.
package handoff

import "sync"

// Slot holds at most one value. Writes are last-write-wins with no versioning.
// The zero value is an empty slot ready for use.
type Slot[T any] struct {
	mu    sync.Mutex
	value T
	set   bool
}

// Set stores v, replacing any previous value.
func (s *Slot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.set = true
}

// Take returns the stored value and empties the slot in the same critical section,
// so a value is handed out at most once.
func (s *Slot[T]) Take() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.value, s.set
	var zero T
	s.value = zero
	s.set = false
	return v, ok
}

// Peek returns the stored value without clearing it.
func (s *Slot[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.set
}

// Clear empties the slot.
func (s *Slot[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.value = zero
	s.set = false
}

// Has reports whether a value is stored.
func (s *Slot[T]) Has() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}
