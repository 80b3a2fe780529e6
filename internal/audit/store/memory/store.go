// Package memory holds an in-process audit sink used by tests and the
// sample server when no Kafka brokers are configured.
package memory

import (
	"context"
	"sync"

	"gatekit/internal/audit"
)

// Store accumulates events in memory.
type Store struct {
	mu     sync.RWMutex
	events []audit.Event
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Append records the event.
func (s *Store) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything recorded so far.
func (s *Store) Events() []audit.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events...)
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
