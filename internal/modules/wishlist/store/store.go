// Package store holds the in-memory wishlist state and mirrors it to the
// snapshot store after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
	"github.com/lnsc/storefront/internal/modules/wishlist/domain"
)

const snapshotKey = "wishlist"

// WishlistStore owns the wishlist entries, keyed by product ID.
type WishlistStore struct {
	items   []*domain.Item
	storage storage.Store
	logger  logger.Logger
	mu      sync.RWMutex
}

// NewWishlistStore creates a wishlist store and restores any persisted snapshot.
func NewWishlistStore(ctx context.Context, st storage.Store, log logger.Logger) *WishlistStore {
	s := &WishlistStore{
		storage: st,
		logger:  log,
	}
	s.restore(ctx)
	return s
}

// Add inserts an entry. Adding a product that is already saved is a no-op,
// not an error: add is idempotent per product ID.
func (s *WishlistStore) Add(ctx context.Context, item *domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ProductID == item.ProductID {
			return
		}
	}

	s.items = append(s.items, item)
	s.persist(ctx)
}

// Remove deletes the entry for productID, if present.
func (s *WishlistStore) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.persist(ctx)
}

// Contains reports whether productID is saved.
func (s *WishlistStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Clear removes all entries.
func (s *WishlistStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the saved entries in insertion order.
func (s *WishlistStore) Items() []*domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Item, len(s.items))
	for i, item := range s.items {
		copied := *item
		out[i] = &copied
	}
	return out
}

// Count returns the number of saved entries.
func (s *WishlistStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *WishlistStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal wishlist snapshot")
		return
	}
	if err := s.storage.Set(ctx, snapshotKey, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist wishlist snapshot")
	}
}

func (s *WishlistStore) restore(ctx context.Context) {
	data, err := s.storage.Get(ctx, snapshotKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error().Err(err).Msg("Failed to load wishlist snapshot")
		}
		return
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		s.logger.Error().Err(err).Msg("Failed to decode wishlist snapshot")
	}
}
