// Package service provides business logic for the search module.
package service

import (
	"context"
	"strings"

	"github.com/gaborage/go-bricks/logger"
	catalog "github.com/lnsc/storefront/internal/modules/catalog/domain"
	catalogservice "github.com/lnsc/storefront/internal/modules/catalog/service"
	"github.com/lnsc/storefront/internal/modules/search/domain"
	"github.com/lnsc/storefront/internal/modules/search/store"
)

const (
	maxSuggestions        = 8
	maxNameSuggestions    = 5
	maxBrandSuggestions   = 3
	maxFeatureSuggestions = 3
)

// SearchService runs text search and filtering over the catalog and keeps
// the recent-search history.
type SearchService struct {
	catalog *catalogservice.CatalogService
	recent  *store.RecentStore
	logger  logger.Logger
}

// NewService creates a search service.
func NewService(c *catalogservice.CatalogService, r *store.RecentStore, l logger.Logger) *SearchService {
	return &SearchService{
		catalog: c,
		recent:  r,
		logger:  l,
	}
}

// Search matches the query against the catalog and applies the structured
// filters. An empty query yields an empty result.
func (s *SearchService) Search(query string, filters domain.Filters) []*catalog.Product {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	var results []*catalog.Product
	for _, p := range s.catalog.ListProducts("") {
		if domain.MatchesQuery(p, query) && filters.Matches(p) {
			results = append(results, p)
		}
	}

	s.logger.Debug().
		Str("query", query).
		Int("results", len(results)).
		Msg("Search executed")

	return results
}

// Suggestions proposes product names, brands, and feature strings matching
// the prefix, deduplicated and capped at eight.
func (s *SearchService) Suggestions(prefix string) []string {
	q := strings.ToLower(strings.TrimSpace(prefix))
	if q == "" {
		return nil
	}

	var names []string
	for _, p := range s.catalog.ListProducts("") {
		if len(names) == maxNameSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), q) {
			names = append(names, p.Name)
		}
	}

	suggestions := names
	suggestions = append(suggestions, matchLimited(s.catalog.Brands(), q, maxBrandSuggestions)...)
	suggestions = append(suggestions, matchLimited(s.catalog.Features(), q, maxFeatureSuggestions)...)

	return dedupeCapped(suggestions, maxSuggestions)
}

// AddRecent records a search term in the history.
func (s *SearchService) AddRecent(ctx context.Context, term string) {
	s.recent.Add(ctx, term)
}

// Recent returns the search history, most recent first.
func (s *SearchService) Recent() []string {
	return s.recent.Recent()
}

// ClearRecent empties the search history.
func (s *SearchService) ClearRecent(ctx context.Context) {
	s.recent.Clear(ctx)
}

func matchLimited(values []string, loweredQuery string, limit int) []string {
	var out []string
	for _, v := range values {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(v), loweredQuery) {
			out = append(out, v)
		}
	}
	return out
}

func dedupeCapped(values []string, limit int) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
