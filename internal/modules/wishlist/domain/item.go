// Package domain defines the wishlist entities.
package domain

import (
	"time"

	catalog "github.com/lnsc/storefront/internal/modules/catalog/domain"
)

// Item is a saved product reference with a denormalized display snapshot.
// At most one item exists per product ID.
type Item struct {
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Image         string    `json:"image"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Category      string    `json:"category"`
	Availability  []string  `json:"availability"`
	AddedAt       time.Time `json:"addedAt"`
}

// NewItem snapshots a catalog product into a wishlist entry.
func NewItem(p *catalog.Product, addedAt time.Time) *Item {
	return &Item{
		ProductID:     p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Model:         p.Model,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Category:      p.Category,
		Availability:  p.Availability,
		AddedAt:       addedAt,
	}
}
