// Package handlers provides HTTP handlers for product view tracking.
package handlers

import (
	"context"
	"errors"

	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/analytics/domain"
	"github.com/lnsc/storefront/internal/modules/analytics/service"
	catalogdomain "github.com/lnsc/storefront/internal/modules/catalog/domain"
)

type RecordViewRequest struct {
	ProductID string `param:"id" binding:"required"`
	SessionID string `json:"sessionId"`
	Source    string `json:"source"`
	Referrer  string `json:"referrer"`
}

type GetStatsRequest struct {
	ProductID string `param:"id" binding:"required"`
}

type TrendingRequest struct {
	Limit int `query:"limit"`
}

type TrendingResponse struct {
	Products []*service.TrendingProduct `json:"products"`
	Total    int                        `json:"total"`
}

// AnalyticsServiceInterface defines the service contract for handlers
type AnalyticsServiceInterface interface {
	RecordView(ctx context.Context, productID, sessionID, source, referrer string) error
	Stats(ctx context.Context, productID string) (*domain.ViewStats, error)
	Trending(ctx context.Context, limit int) ([]*service.TrendingProduct, error)
}

type AnalyticsHandler struct {
	service AnalyticsServiceInterface
	logger  logger.Logger
}

func NewAnalyticsHandler(s AnalyticsServiceInterface, l logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: s,
		logger:  l,
	}
}

func (h *AnalyticsHandler) RecordView(req RecordViewRequest, ctx server.HandlerContext) (server.NoContentResult, server.IAPIError) {
	err := h.service.RecordView(ctx.Echo.Request().Context(), req.ProductID, req.SessionID, req.Source, req.Referrer)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			return server.NoContentResult{}, server.NewNotFoundError("Product")
		}
		h.logger.Error().Err(err).Str("productId", req.ProductID).Msg("Failed to record product view")
		return server.NoContentResult{}, server.NewInternalServerError("Failed to record product view")
	}

	return server.NoContent(), nil
}

func (h *AnalyticsHandler) GetStats(req GetStatsRequest, ctx server.HandlerContext) (*domain.ViewStats, server.IAPIError) {
	stats, err := h.service.Stats(ctx.Echo.Request().Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			return nil, server.NewNotFoundError("Product")
		}
		h.logger.Error().Err(err).Str("productId", req.ProductID).Msg("Failed to load view stats")
		return nil, server.NewInternalServerError("Failed to retrieve view statistics")
	}
	return stats, nil
}

func (h *AnalyticsHandler) GetTrending(req TrendingRequest, ctx server.HandlerContext) (*TrendingResponse, server.IAPIError) {
	trending, err := h.service.Trending(ctx.Echo.Request().Context(), req.Limit)
	if err != nil {
		h.logger.Error().Err(err).Int("limit", req.Limit).Msg("Failed to load trending products")
		return nil, server.NewInternalServerError("Failed to retrieve trending products")
	}
	return &TrendingResponse{Products: trending, Total: len(trending)}, nil
}

// RegisterRoutes registers analytics HTTP routes
func (h *AnalyticsHandler) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	server.POST(hr, r, "/products/:id/views", h.RecordView)
	server.GET(hr, r, "/products/:id/views", h.GetStats)
	server.GET(hr, r, "/analytics/trending", h.GetTrending)
}
