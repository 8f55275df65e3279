// Package handlers provides HTTP handlers for the search module.
package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	catalogdomain "github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/search/domain"
)

type SearchRequest struct {
	Query            string `query:"q"`
	Categories       string `query:"categories"`
	Brands           string `query:"brands"`
	Branches         string `query:"branches"`
	MinPrice         string `query:"minPrice"`
	MaxPrice         string `query:"maxPrice"`
	MinRating        string `query:"minRating"`
	Features         string `query:"features"`
	MatchAllFeatures bool   `query:"matchAllFeatures"`
}

type SuggestionsRequest struct {
	Query string `query:"q"`
}

type AddRecentRequest struct {
	Term string `json:"term" binding:"required"`
}

type SearchResponse struct {
	Products []*catalogdomain.Product `json:"products"`
	Total    int                      `json:"total"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type RecentResponse struct {
	Searches []string `json:"searches"`
}

// SearchServiceInterface defines the service contract for handlers
type SearchServiceInterface interface {
	Search(query string, filters domain.Filters) []*catalogdomain.Product
	Suggestions(prefix string) []string
	AddRecent(ctx context.Context, term string)
	Recent() []string
	ClearRecent(ctx context.Context)
}

type SearchHandler struct {
	service SearchServiceInterface
	logger  logger.Logger
}

func NewSearchHandler(s SearchServiceInterface, l logger.Logger) *SearchHandler {
	return &SearchHandler{
		service: s,
		logger:  l,
	}
}

func (h *SearchHandler) Search(req SearchRequest, _ server.HandlerContext) (*SearchResponse, server.IAPIError) {
	filters, apiErr := h.parseFilters(req)
	if apiErr != nil {
		return nil, apiErr
	}

	products := h.service.Search(req.Query, filters)
	return &SearchResponse{Products: products, Total: len(products)}, nil
}

func (h *SearchHandler) GetSuggestions(req SuggestionsRequest, _ server.HandlerContext) (*SuggestionsResponse, server.IAPIError) {
	return &SuggestionsResponse{Suggestions: h.service.Suggestions(req.Query)}, nil
}

func (h *SearchHandler) GetRecent(_ struct{}, _ server.HandlerContext) (*RecentResponse, server.IAPIError) {
	return &RecentResponse{Searches: h.service.Recent()}, nil
}

func (h *SearchHandler) AddRecent(req AddRecentRequest, ctx server.HandlerContext) (server.Result[*RecentResponse], server.IAPIError) {
	h.service.AddRecent(ctx.Echo.Request().Context(), req.Term)
	return server.Created(&RecentResponse{Searches: h.service.Recent()}), nil
}

func (h *SearchHandler) ClearRecent(_ struct{}, ctx server.HandlerContext) (server.NoContentResult, server.IAPIError) {
	h.service.ClearRecent(ctx.Echo.Request().Context())
	return server.NoContent(), nil
}

// parseFilters maps comma-separated query params onto the filter struct.
func (h *SearchHandler) parseFilters(req SearchRequest) (domain.Filters, server.IAPIError) {
	filters := domain.Filters{
		Categories:       splitList(req.Categories),
		Brands:           splitList(req.Brands),
		Branches:         splitList(req.Branches),
		Features:         splitList(req.Features),
		MatchAllFeatures: req.MatchAllFeatures,
	}

	if req.MinRating != "" {
		rating, err := strconv.ParseFloat(req.MinRating, 64)
		if err != nil {
			return filters, server.NewBadRequestError("minRating must be numeric")
		}
		filters.MinRating = rating
	}

	if req.MinPrice != "" || req.MaxPrice != "" {
		priceRange := &domain.PriceRange{}
		if req.MinPrice != "" {
			minPrice, err := strconv.ParseFloat(req.MinPrice, 64)
			if err != nil {
				return filters, server.NewBadRequestError("minPrice must be numeric")
			}
			priceRange.Min = minPrice
		}
		if req.MaxPrice != "" {
			maxPrice, err := strconv.ParseFloat(req.MaxPrice, 64)
			if err != nil {
				return filters, server.NewBadRequestError("maxPrice must be numeric")
			}
			priceRange.Max = maxPrice
		}
		filters.PriceRange = priceRange
	}

	return filters, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// RegisterRoutes registers search HTTP routes
func (h *SearchHandler) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	server.GET(hr, r, "/search", h.Search)
	server.GET(hr, r, "/search/suggestions", h.GetSuggestions)
	server.GET(hr, r, "/search/recent", h.GetRecent)
	server.POST(hr, r, "/search/recent", h.AddRecent)
	server.DELETE(hr, r, "/search/recent", h.ClearRecent)
}
