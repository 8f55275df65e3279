// Package store holds the in-memory cart state and mirrors it to the
// snapshot store after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/cart/domain"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

const snapshotKey = "cart"

// CartStore owns the cart item list. All operations are total functions:
// invalid input is normalized (quantity <= 0 removes) rather than rejected.
type CartStore struct {
	items   []*domain.Item
	storage storage.Store
	logger  logger.Logger
	mu      sync.RWMutex
}

// NewCartStore creates a cart store and restores any persisted snapshot.
func NewCartStore(ctx context.Context, st storage.Store, log logger.Logger) *CartStore {
	s := &CartStore{
		storage: st,
		logger:  log,
	}
	s.restore(ctx)
	return s
}

// AddItem adds a snapshot line to the cart. If a line with the same product
// ID exists, its quantity is incremented by the new line's quantity.
func (s *CartStore) AddItem(ctx context.Context, item *domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	for _, existing := range s.items {
		if existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			if item.SelectedBranch != "" {
				existing.SelectedBranch = item.SelectedBranch
			}
			s.persist(ctx)
			return
		}
	}

	s.items = append(s.items, item)
	s.persist(ctx)
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or below
// removes the line.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		s.persist(ctx)
		return
	}

	for _, item := range s.items {
		if item.ProductID == productID {
			item.Quantity = quantity
			break
		}
	}
	s.persist(ctx)
}

// RemoveItem removes the line with the given product ID, if present.
func (s *CartStore) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	s.persist(ctx)
}

// Clear empties the cart. Fired after checkout completion.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the current cart lines.
func (s *CartStore) Items() []*domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Item, len(s.items))
	for i, item := range s.items {
		copied := *item
		out[i] = &copied
	}
	return out
}

// TotalItems returns the sum of line quantities.
func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity over all lines.
func (s *CartStore) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

func (s *CartStore) removeLocked(productID string) {
	for i, item := range s.items {
		if item.ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// persist mirrors the full item list, write-through. Failures are logged
// and swallowed; persistence is fire-and-forget.
func (s *CartStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal cart snapshot")
		return
	}
	if err := s.storage.Set(ctx, snapshotKey, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist cart snapshot")
	}
}

func (s *CartStore) restore(ctx context.Context) {
	data, err := s.storage.Get(ctx, snapshotKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error().Err(err).Msg("Failed to load cart snapshot")
		}
		return
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		s.logger.Error().Err(err).Msg("Failed to decode cart snapshot")
	}
}
