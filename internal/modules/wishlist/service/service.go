package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gaborage/go-bricks/logger"
	cartservice "github.com/lnsc/storefront/internal/modules/cart/service"
	catalogservice "github.com/lnsc/storefront/internal/modules/catalog/service"
	"github.com/lnsc/storefront/internal/modules/wishlist/domain"
	"github.com/lnsc/storefront/internal/modules/wishlist/store"
)

type WishlistService struct {
	store   *store.WishlistStore
	catalog *catalogservice.CatalogService
	cart    *cartservice.CartService
	logger  logger.Logger
}

func NewService(st *store.WishlistStore, catalog *catalogservice.CatalogService, cart *cartservice.CartService, log logger.Logger) *WishlistService {
	return &WishlistService{
		store:   st,
		catalog: catalog,
		cart:    cart,
		logger:  log,
	}
}

// Add saves a product to the wishlist. Saving an already-saved product is
// a no-op.
func (s *WishlistService) Add(ctx context.Context, productID string) (*domain.Item, error) {
	product, err := s.catalog.Snapshot(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}

	item := domain.NewItem(product, time.Now().UTC())
	s.store.Add(ctx, item)

	return item, nil
}

// Remove deletes a saved product.
func (s *WishlistService) Remove(ctx context.Context, productID string) {
	s.store.Remove(ctx, productID)
}

// Contains reports whether the product is saved.
func (s *WishlistService) Contains(productID string) bool {
	return s.store.Contains(productID)
}

// Clear removes all saved products.
func (s *WishlistService) Clear(ctx context.Context) {
	s.store.Clear(ctx)
}

// Items returns the saved entries.
func (s *WishlistService) Items() []*domain.Item {
	return s.store.Items()
}

// Count returns the number of saved entries.
func (s *WishlistService) Count() int {
	return s.store.Count()
}

// MoveToCart removes a saved product and adds it to the cart with
// quantity one.
func (s *WishlistService) MoveToCart(ctx context.Context, productID string) error {
	if !s.store.Contains(productID) {
		return fmt.Errorf("product %s is not in the wishlist", productID)
	}

	if _, err := s.cart.AddItem(ctx, productID, 1, ""); err != nil {
		return fmt.Errorf("failed to move wishlist item to cart: %w", err)
	}

	s.store.Remove(ctx, productID)
	s.logger.Info().Str("productID", productID).Msg("Wishlist item moved to cart")
	return nil
}
