// Package repository provides read access to the seeded product catalog.
package repository

import (
	"sort"

	"github.com/lnsc/storefront/internal/modules/catalog/domain"
)

// Repository defines the interface for catalog data access.
type Repository interface {
	GetByID(id string) (*domain.Product, error)
	List() []*domain.Product
	ListByCategory(category string) []*domain.Product
}

// CatalogRepository serves the seed catalog from memory. The catalog is
// read-only, so no locking is needed.
type CatalogRepository struct {
	products []*domain.Product
	byID     map[string]*domain.Product
}

// NewCatalogRepository builds the in-memory catalog from seed data.
func NewCatalogRepository(products []*domain.Product) *CatalogRepository {
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CatalogRepository{
		products: products,
		byID:     byID,
	}
}

// GetByID retrieves a product by its ID.
func (r *CatalogRepository) GetByID(id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// List returns all catalog products in seed order.
func (r *CatalogRepository) List() []*domain.Product {
	out := make([]*domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

// ListByCategory returns the products in the given category.
func (r *CatalogRepository) ListByCategory(category string) []*domain.Product {
	var out []*domain.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Brands returns the distinct brands in the catalog, sorted.
func (r *CatalogRepository) Brands() []string {
	return r.distinct(func(p *domain.Product) []string { return []string{p.Brand} })
}

// Branches returns the distinct pickup branches in the catalog, sorted.
func (r *CatalogRepository) Branches() []string {
	return r.distinct(func(p *domain.Product) []string { return p.Availability })
}

// Features returns the distinct feature strings in the catalog, sorted.
func (r *CatalogRepository) Features() []string {
	return r.distinct(func(p *domain.Product) []string { return p.Features })
}

func (r *CatalogRepository) distinct(extract func(*domain.Product) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range r.products {
		for _, v := range extract(p) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
