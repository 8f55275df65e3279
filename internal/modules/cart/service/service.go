package service

import (
	"context"
	"fmt"

	"github.com/gaborage/go-bricks/logger"
	catalogservice "github.com/lnsc/storefront/internal/modules/catalog/service"
	"github.com/lnsc/storefront/internal/modules/cart/domain"
	"github.com/lnsc/storefront/internal/modules/cart/store"
)

type CartService struct {
	store   *store.CartStore
	catalog *catalogservice.CatalogService
	logger  logger.Logger
}

func NewService(st *store.CartStore, catalog *catalogservice.CatalogService, log logger.Logger) *CartService {
	return &CartService{
		store:   st,
		catalog: catalog,
		logger:  log,
	}
}

// AddItem snapshots the product and adds it to the cart, merging quantity
// into an existing line for the same product.
func (s *CartService) AddItem(ctx context.Context, productID string, quantity int, selectedBranch string) (*domain.Item, error) {
	product, err := s.catalog.Snapshot(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	if selectedBranch != "" && !product.AvailableAt(selectedBranch) {
		return nil, fmt.Errorf("product %s is not available at branch %s", productID, selectedBranch)
	}

	item := domain.NewItem(product, quantity, selectedBranch)
	s.store.AddItem(ctx, item)

	s.logger.Info().Str("productID", productID).Int("quantity", item.Quantity).Msg("Cart item added")
	return item, nil
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	s.store.UpdateQuantity(ctx, productID, quantity)
}

// RemoveItem removes a line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, productID string) {
	s.store.RemoveItem(ctx, productID)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) {
	s.store.Clear(ctx)
	s.logger.Info().Msg("Cart cleared")
}

// Items returns the current cart lines.
func (s *CartService) Items() []*domain.Item {
	return s.store.Items()
}

// TotalItems returns the sum of quantities across lines.
func (s *CartService) TotalItems() int {
	return s.store.TotalItems()
}

// TotalPrice returns the cart total.
func (s *CartService) TotalPrice() float64 {
	return s.store.TotalPrice()
}
