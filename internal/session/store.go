// Package session keeps small per-user state in memory.
package session

import "sync"

// Store maps user IDs to state values. A missing user reads as the value
// returned by the store's init function.
type Store[T any] struct {
	mu       sync.RWMutex
	sessions map[string]T
	init     func() T
}

// NewStore creates a store; init may be nil, in which case the zero value is used.
func NewStore[T any](init func() T) *Store[T] {
	if init == nil {
		init = func() T {
			var zero T
			return zero
		}
	}
	return &Store[T]{sessions: make(map[string]T), init: init}
}

// Get retrieves the current state for a user.
func (s *Store[T]) Get(userID string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.sessions[userID]; ok {
		return state
	}
	return s.init()
}

// Modify applies fn to the user's state under the write lock and stores the result.
func (s *Store[T]) Modify(userID string, fn func(T) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[userID]
	if !ok {
		current = s.init()
	}
	next, err := fn(current)
	if err != nil {
		return current, err
	}
	s.sessions[userID] = next
	return next, nil
}

// Clear removes a user's state.
func (s *Store[T]) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
