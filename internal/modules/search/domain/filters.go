// Package domain implements the catalog search predicate and structured
// filter conjunction.
package domain

import (
	"strings"

	catalog "github.com/lnsc/storefront/internal/modules/catalog/domain"
)

// PriceRange is an inclusive price bound.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filters is the structured filter set applied on top of the text query.
// Fields combine with AND; values within a field combine with OR, except
// Features when MatchAllFeatures is set.
type Filters struct {
	Categories       []string    `json:"categories"`
	Brands           []string    `json:"brands"`
	Branches         []string    `json:"branches"`
	PriceRange       *PriceRange `json:"priceRange"`
	MinRating        float64     `json:"minRating"`
	Features         []string    `json:"features"`
	MatchAllFeatures bool        `json:"matchAllFeatures"`
}

// MatchesQuery reports whether the product matches the text query by
// case-insensitive substring over name, brand, category, spec values, and
// features. An empty query matches nothing.
func MatchesQuery(p *catalog.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}

	if containsFold(p.Name, q) || containsFold(p.Brand, q) || containsFold(p.Category, q) {
		return true
	}
	for _, group := range p.Specs.Groups() {
		for _, v := range group.Values {
			if containsFold(v, q) {
				return true
			}
		}
	}
	for _, f := range p.Features {
		if containsFold(f, q) {
			return true
		}
	}
	return false
}

// Matches applies the filter conjunction to a product.
func (f Filters) Matches(p *catalog.Product) bool {
	if len(f.Categories) > 0 && !containsAnyFold(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !containsAnyFold(f.Brands, p.Brand) {
		return false
	}
	if len(f.Branches) > 0 && !availableAtAny(p, f.Branches) {
		return false
	}
	if f.PriceRange != nil && (p.Price < f.PriceRange.Min || p.Price > f.PriceRange.Max) {
		return false
	}
	if p.Rating < f.MinRating {
		return false
	}
	if len(f.Features) > 0 && !f.matchesFeatures(p) {
		return false
	}
	return true
}

// matchesFeatures defaults to ANY-of semantics: a product qualifies when
// at least one requested feature is present.
func (f Filters) matchesFeatures(p *catalog.Product) bool {
	for _, want := range f.Features {
		found := false
		for _, have := range p.Features {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if f.MatchAllFeatures && !found {
			return false
		}
		if !f.MatchAllFeatures && found {
			return true
		}
	}
	return f.MatchAllFeatures
}

func availableAtAny(p *catalog.Product, branches []string) bool {
	for _, b := range branches {
		if p.AvailableAt(b) {
			return true
		}
	}
	return false
}

func containsFold(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}

func containsAnyFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
