package session

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore keeps sessions in process memory. Intended for tests and
// single-instance deployments.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	clock    func() time.Time
}

// InMemoryStoreOption configures an InMemoryStore.
type InMemoryStoreOption func(*InMemoryStore)

// WithClock sets the clock function for testability.
func WithClock(clock func() time.Time) InMemoryStoreOption {
	return func(s *InMemoryStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewInMemoryStore(opts ...InMemoryStoreOption) *InMemoryStore {
	store := &InMemoryStore{
		sessions: make(map[string]*Session),
		clock:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	return store
}

func (s *InMemoryStore) Save(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *InMemoryStore) Find(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok || session.Expired(s.clock()) {
		return nil, ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
