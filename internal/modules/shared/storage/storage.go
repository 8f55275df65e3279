// Package storage provides the key-value snapshot store used by the
// stateful storefront modules. Managers persist their full state under a
// fixed key after every mutation, so a real datastore can be swapped in
// without touching manager logic.
package storage

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrKeyNotFound = errors.New("snapshot key not found")
)

// Store is the persistence port for state snapshots.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is the default Store, holding snapshots in process memory.
// It stands in for the browser-local storage of the original storefront.
type MemoryStore struct {
	entries map[string][]byte
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]byte),
	}
}

// Get returns the snapshot stored under key, or ErrKeyNotFound.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	// Copy so callers cannot mutate the stored snapshot.
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key, replacing any previous snapshot.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = stored
	return nil
}

// Delete removes the snapshot under key. Deleting a missing key is a no-op.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
