// Package viewstate holds per-screen state for the presentation layer. Each holder
// exposes intent methods that call at most one repository operation at a time and
// publish the result through an observable Store and one-shot Events.
package viewstate

import "sync"

// Store is an observable state value. Subscribers receive the latest state; states
// published while a subscriber is not reading are coalesced.
type Store[S any] struct {
	mu    sync.Mutex
	state S
	subs  map[int]chan S
	next  int
}

// NewStore creates a store holding initial.
func NewStore[S any](initial S) *Store[S] {
	return &Store[S]{state: initial, subs: make(map[int]chan S)}
}

// Snapshot returns the current state.
func (s *Store[S]) Snapshot() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies fn to the state and publishes the result. fn must replace slices
// rather than mutate them in place, since earlier snapshots share them.
func (s *Store[S]) Update(fn func(*S)) S {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s.state
	}
	return s.state
}

// Subscribe returns a channel primed with the current state and a cancel func that
// closes it.
func (s *Store[S]) Subscribe() (<-chan S, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan S, 1)
	ch <- s.state
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}
