package credential

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory credential store, primarily for tests,
// examples, and embedding programs that manage credentials themselves.
type MemoryStore struct {
	mu    sync.RWMutex
	creds map[string]Credential
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{creds: make(map[string]Credential)}
}

// Put registers a credential under an identifier, replacing any previous
// entry with the same identifier.
func (s *MemoryStore) Put(id string, c Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[id] = c
}

// Fetch implements Store.
func (s *MemoryStore) Fetch(_ context.Context, id string) (Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.creds[id]
	if !ok {
		return nil, fmt.Errorf("credential %q: %w", id, ErrNotFound)
	}
	return c, nil
}
