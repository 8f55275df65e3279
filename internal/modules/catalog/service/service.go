package service

import (
	"fmt"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/catalog/repository"
)

type CatalogService struct {
	repository *repository.CatalogRepository
	logger     logger.Logger
}

func NewService(repo *repository.CatalogRepository, log logger.Logger) *CatalogService {
	return &CatalogService{
		repository: repo,
		logger:     log,
	}
}

// GetProduct retrieves a catalog product by its ID.
func (s *CatalogService) GetProduct(id string) (*domain.Product, error) {
	product, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts returns catalog products, optionally restricted to a category.
func (s *CatalogService) ListProducts(category string) []*domain.Product {
	if category == "" {
		return s.repository.List()
	}
	return s.repository.ListByCategory(category)
}

// Snapshot returns the display snapshot fields for a product, used by the
// cart, wishlist and comparison modules to denormalize catalog records.
func (s *CatalogService) Snapshot(id string) (*domain.Product, error) {
	product, err := s.repository.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot product %s: %w", id, err)
	}
	// Products are immutable, so the record itself serves as the snapshot
	// source; callers copy the fields they keep.
	return product, nil
}

// Brands returns the distinct brands available in the catalog.
func (s *CatalogService) Brands() []string {
	return s.repository.Brands()
}

// Branches returns the distinct pickup branches.
func (s *CatalogService) Branches() []string {
	return s.repository.Branches()
}

// Features returns the distinct feature strings.
func (s *CatalogService) Features() []string {
	return s.repository.Features()
}
