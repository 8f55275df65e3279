// Package store keeps the recent-search list, capped and persisted.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

const (
	snapshotKey = "recent_searches"
	maxRecent   = 5
)

// RecentStore holds the most-recent-first search history.
type RecentStore struct {
	entries []string
	storage storage.Store
	logger  logger.Logger
	mu      sync.RWMutex
}

// NewRecentStore creates a recent-search store and restores any persisted
// snapshot.
func NewRecentStore(ctx context.Context, st storage.Store, log logger.Logger) *RecentStore {
	s := &RecentStore{
		storage: st,
		logger:  log,
	}
	s.restore(ctx)
	return s
}

// Add records a search term at the front of the list. A term already in
// the list moves to the front instead of duplicating. The list keeps the
// five most recent entries.
func (s *RecentStore) Add(ctx context.Context, term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.entries {
		if strings.EqualFold(existing, term) {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}

	s.entries = append([]string{term}, s.entries...)
	if len(s.entries) > maxRecent {
		s.entries = s.entries[:maxRecent]
	}
	s.persist(ctx)
}

// Recent returns the history, most recent first.
func (s *RecentStore) Recent() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear empties the history.
func (s *RecentStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.persist(ctx)
}

func (s *RecentStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.entries)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal recent searches")
		return
	}
	if err := s.storage.Set(ctx, snapshotKey, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist recent searches")
	}
}

func (s *RecentStore) restore(ctx context.Context) {
	data, err := s.storage.Get(ctx, snapshotKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error().Err(err).Msg("Failed to load recent searches")
		}
		return
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		s.logger.Error().Err(err).Msg("Failed to decode recent searches")
	}
}
