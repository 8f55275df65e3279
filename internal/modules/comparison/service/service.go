// Package service provides business logic for the comparison module.
package service

import (
	"context"

	"github.com/gaborage/go-bricks/logger"
	catalog "github.com/lnsc/storefront/internal/modules/catalog/domain"
	catalogservice "github.com/lnsc/storefront/internal/modules/catalog/service"
	"github.com/lnsc/storefront/internal/modules/comparison/domain"
	"github.com/lnsc/storefront/internal/modules/comparison/store"
)

// ComparisonService coordinates the comparison collection and its derived
// table view.
type ComparisonService struct {
	store   *store.ComparisonStore
	catalog *catalogservice.CatalogService
	logger  logger.Logger
}

// NewService creates a comparison service.
func NewService(s *store.ComparisonStore, c *catalogservice.CatalogService, l logger.Logger) *ComparisonService {
	return &ComparisonService{
		store:   s,
		catalog: c,
		logger:  l,
	}
}

// Add snapshots the product into the comparison collection. Unknown
// products error; duplicates and adds beyond the cap silently keep the
// current collection.
func (s *ComparisonService) Add(ctx context.Context, productID string) error {
	product, err := s.catalog.Snapshot(productID)
	if err != nil {
		return err
	}

	s.store.Add(ctx, product)

	s.logger.Info().
		Str("productID", productID).
		Int("count", len(s.store.Products())).
		Msg("Product added to comparison")

	return nil
}

// Remove drops a product from the comparison.
func (s *ComparisonService) Remove(ctx context.Context, productID string) {
	s.store.Remove(ctx, productID)
}

// Clear empties the comparison collection.
func (s *ComparisonService) Clear(ctx context.Context) {
	s.store.Clear(ctx)
}

// Contains reports whether productID is being compared.
func (s *ComparisonService) Contains(productID string) bool {
	return s.store.Contains(productID)
}

// Products returns the compared snapshots in insertion order.
func (s *ComparisonService) Products() []*catalog.Product {
	return s.store.Products()
}

// Table derives the side-by-side comparison table.
func (s *ComparisonService) Table(differencesOnly bool) *domain.Table {
	return domain.BuildTable(s.store.Products(), differencesOnly)
}
