// Package domain defines the read-only product catalog entities.
package domain

import (
	"fmt"
)

var (
	ErrProductNotFound = fmt.Errorf("product not found")
)

// SpecGroup is a free-form key/value group inside a product's
// specification tree (processor, graphics, memory, ...).
type SpecGroup map[string]string

// Specs is the nested specification tree of a product.
type Specs struct {
	Processor    SpecGroup `json:"processor"`
	Graphics     SpecGroup `json:"graphics"`
	Memory       SpecGroup `json:"memory"`
	Storage      SpecGroup `json:"storage"`
	Display      SpecGroup `json:"display"`
	Connectivity SpecGroup `json:"connectivity"`
	Physical     SpecGroup `json:"physical"`
}

// Groups returns the spec groups in their canonical display order.
func (s Specs) Groups() []struct {
	Name   string
	Values SpecGroup
} {
	return []struct {
		Name   string
		Values SpecGroup
	}{
		{"processor", s.Processor},
		{"graphics", s.Graphics},
		{"memory", s.Memory},
		{"storage", s.Storage},
		{"display", s.Display},
		{"connectivity", s.Connectivity},
		{"physical", s.Physical},
	}
}

// Product is a catalog record. Products are seeded at startup and never
// mutated; every other module works on denormalized snapshots of them.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Category      string   `json:"category"`
	Availability  []string `json:"availability"`
	Specs         Specs    `json:"specs"`
	Features      []string `json:"features"`
	KeyFeatures   []string `json:"keyFeatures"`
}

// HasDiscount reports whether the product carries a visible discount.
// OriginalPrice only counts when it is above the current price.
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice > p.Price
}

// AvailableAt reports whether the product can be picked up at branch.
func (p *Product) AvailableAt(branch string) bool {
	for _, b := range p.Availability {
		if b == branch {
			return true
		}
	}
	return false
}
