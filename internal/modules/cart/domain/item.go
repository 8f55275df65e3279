// Package domain defines the shopping cart entities.
package domain

import (
	catalog "github.com/lnsc/storefront/internal/modules/catalog/domain"
)

// Item is a cart line. Display fields are snapshotted from the catalog at
// add time, so later catalog price changes never affect items already in
// the cart. Items are keyed by product ID, which is unique within a cart.
type Item struct {
	ProductID      string        `json:"productId"`
	Name           string        `json:"name"`
	Brand          string        `json:"brand"`
	Price          float64       `json:"price"`
	OriginalPrice  float64       `json:"originalPrice,omitempty"`
	Image          string        `json:"image"`
	Specs          catalog.Specs `json:"specs"`
	Quantity       int           `json:"quantity"`
	SelectedBranch string        `json:"selectedBranch,omitempty"`
}

// NewItem snapshots a catalog product into a cart line.
func NewItem(p *catalog.Product, quantity int, selectedBranch string) *Item {
	return &Item{
		ProductID:      p.ID,
		Name:           p.Name,
		Brand:          p.Brand,
		Price:          p.Price,
		OriginalPrice:  p.OriginalPrice,
		Image:          p.Image,
		Specs:          p.Specs,
		Quantity:       quantity,
		SelectedBranch: selectedBranch,
	}
}

// Subtotal returns the line total.
func (i *Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
