// Package store holds the bounded comparison collection and mirrors it to
// the snapshot store after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/gaborage/go-bricks/logger"
	catalog "github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/comparison/domain"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

const snapshotKey = "comparison"

// ComparisonStore owns the compared product snapshots.
type ComparisonStore struct {
	products []*catalog.Product
	storage  storage.Store
	logger   logger.Logger
	mu       sync.RWMutex
}

// NewComparisonStore creates a comparison store and restores any persisted
// snapshot.
func NewComparisonStore(ctx context.Context, st storage.Store, log logger.Logger) *ComparisonStore {
	s := &ComparisonStore{
		storage: st,
		logger:  log,
	}
	s.restore(ctx)
	return s
}

// Add inserts a full product snapshot. Duplicates and insertions beyond
// the cap are silent no-ops, not errors.
func (s *ComparisonStore) Add(ctx context.Context, product *catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products) >= domain.MaxProducts {
		return
	}
	for _, existing := range s.products {
		if existing.ID == product.ID {
			return
		}
	}

	s.products = append(s.products, product)
	s.persist(ctx)
}

// Remove deletes the snapshot for productID, if present.
func (s *ComparisonStore) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	s.persist(ctx)
}

// Clear empties the collection.
func (s *ComparisonStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = nil
	s.persist(ctx)
}

// Contains reports whether productID is being compared.
func (s *ComparisonStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Products returns the compared snapshots in insertion order.
func (s *ComparisonStore) Products() []*catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *ComparisonStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.products)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal comparison snapshot")
		return
	}
	if err := s.storage.Set(ctx, snapshotKey, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist comparison snapshot")
	}
}

func (s *ComparisonStore) restore(ctx context.Context) {
	data, err := s.storage.Get(ctx, snapshotKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error().Err(err).Msg("Failed to load comparison snapshot")
		}
		return
	}
	if err := json.Unmarshal(data, &s.products); err != nil {
		s.logger.Error().Err(err).Msg("Failed to decode comparison snapshot")
	}
}
