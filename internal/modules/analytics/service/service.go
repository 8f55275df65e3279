// Package service provides business logic for product view tracking.
package service

import (
	"context"
	"time"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/analytics/domain"
	"github.com/lnsc/storefront/internal/modules/analytics/repository"
	catalogdomain "github.com/lnsc/storefront/internal/modules/catalog/domain"
	catalogservice "github.com/lnsc/storefront/internal/modules/catalog/service"
)

const (
	defaultTrendingLimit = 10
	maxTrendingLimit     = 100
)

// TrendingProduct joins a view count with its catalog product.
type TrendingProduct struct {
	Product    *catalogdomain.Product `json:"product"`
	TotalViews int64                  `json:"totalViews"`
}

// AnalyticsService records and aggregates product views.
type AnalyticsService struct {
	repo    repository.Repository
	catalog *catalogservice.CatalogService
	logger  logger.Logger
	now     func() time.Time
}

// NewService creates an analytics service.
func NewService(repo repository.Repository, catalog *catalogservice.CatalogService, log logger.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo:    repo,
		catalog: catalog,
		logger:  log,
		now:     time.Now,
	}
}

// RecordView stores a view event for a known product.
func (s *AnalyticsService) RecordView(ctx context.Context, productID, sessionID, source, referrer string) error {
	if _, err := s.catalog.GetProduct(productID); err != nil {
		return err
	}

	view := &domain.View{
		ProductID: productID,
		ViewedAt:  s.now().UTC(),
		SessionID: sessionID,
		Source:    source,
		Referrer:  referrer,
	}
	if err := s.repo.Insert(ctx, view); err != nil {
		s.logger.Error().
			Err(err).
			Str("productId", productID).
			Msg("Failed to record product view")
		return err
	}

	s.logger.Debug().
		Str("productId", productID).
		Msg("Product view recorded")

	return nil
}

// Stats returns aggregated view counts for one product.
func (s *AnalyticsService) Stats(ctx context.Context, productID string) (*domain.ViewStats, error) {
	if _, err := s.catalog.GetProduct(productID); err != nil {
		return nil, err
	}
	return s.repo.Stats(ctx, productID, s.now())
}

// Trending returns the most viewed products with their catalog records.
// Counts for products since removed from the catalog are skipped.
func (s *AnalyticsService) Trending(ctx context.Context, limit int) ([]*TrendingProduct, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}
	if limit > maxTrendingLimit {
		limit = maxTrendingLimit
	}

	counts, err := s.repo.TopViewed(ctx, limit)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int("limit", limit).
			Msg("Failed to load trending products")
		return nil, err
	}

	trending := make([]*TrendingProduct, 0, len(counts))
	for _, count := range counts {
		product, err := s.catalog.GetProduct(count.ProductID)
		if err != nil {
			continue
		}
		trending = append(trending, &TrendingProduct{
			Product:    product,
			TotalViews: count.TotalViews,
		})
	}
	return trending, nil
}
