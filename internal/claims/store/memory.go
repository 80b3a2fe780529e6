package store

import (
	"context"
	"sync"
)

type claimKey struct {
	subject string
	claim   string
	tag     string
}

// InMemoryStore keeps claim values in process memory. Intended for tests and
// single-instance deployments.
type InMemoryStore struct {
	mu     sync.RWMutex
	claims map[claimKey]any
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{claims: make(map[claimKey]any)}
}

func (s *InMemoryStore) ClaimValue(_ context.Context, subject, claim, tag string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.claims[claimKey{subject: subject, claim: claim, tag: tag}]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

func (s *InMemoryStore) SaveClaim(_ context.Context, subject, claim, tag string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims[claimKey{subject: subject, claim: claim, tag: tag}] = value
	return nil
}

func (s *InMemoryStore) DeleteSubject(_ context.Context, subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.claims {
		if key.subject == subject {
			delete(s.claims, key)
		}
	}
	return nil
}
