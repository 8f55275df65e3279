// Package handlers provides HTTP handlers for the comparison module.
package handlers

import (
	"context"
	"errors"

	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	catalogdomain "github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/comparison/domain"
)

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type RemoveItemRequest struct {
	ProductID string `param:"productId" binding:"required"`
}

type TableRequest struct {
	DifferencesOnly bool `query:"differencesOnly"`
}

type ComparisonResponse struct {
	Products []*catalogdomain.Product `json:"products"`
	Total    int                      `json:"total"`
	Max      int                      `json:"max"`
}

// ComparisonServiceInterface defines the service contract for handlers
type ComparisonServiceInterface interface {
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string)
	Clear(ctx context.Context)
	Products() []*catalogdomain.Product
	Table(differencesOnly bool) *domain.Table
}

type ComparisonHandler struct {
	service ComparisonServiceInterface
	logger  logger.Logger
}

func NewComparisonHandler(s ComparisonServiceInterface, l logger.Logger) *ComparisonHandler {
	return &ComparisonHandler{
		service: s,
		logger:  l,
	}
}

func (h *ComparisonHandler) GetComparison(_ struct{}, _ server.HandlerContext) (*ComparisonResponse, server.IAPIError) {
	return h.comparisonResponse(), nil
}

func (h *ComparisonHandler) GetTable(req TableRequest, _ server.HandlerContext) (*domain.Table, server.IAPIError) {
	return h.service.Table(req.DifferencesOnly), nil
}

func (h *ComparisonHandler) AddItem(req AddItemRequest, ctx server.HandlerContext) (server.Result[*ComparisonResponse], server.IAPIError) {
	if err := h.service.Add(ctx.Echo.Request().Context(), req.ProductID); err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			return server.Result[*ComparisonResponse]{}, server.NewNotFoundError("Product")
		}
		h.logger.Error().Err(err).Str("productID", req.ProductID).Msg("Failed to add comparison item")
		return server.Result[*ComparisonResponse]{}, server.NewInternalServerError("Failed to add comparison item")
	}

	return server.Created(h.comparisonResponse()), nil
}

func (h *ComparisonHandler) RemoveItem(req RemoveItemRequest, ctx server.HandlerContext) (*ComparisonResponse, server.IAPIError) {
	h.service.Remove(ctx.Echo.Request().Context(), req.ProductID)
	return h.comparisonResponse(), nil
}

func (h *ComparisonHandler) ClearComparison(_ struct{}, ctx server.HandlerContext) (server.NoContentResult, server.IAPIError) {
	h.service.Clear(ctx.Echo.Request().Context())
	return server.NoContent(), nil
}

func (h *ComparisonHandler) comparisonResponse() *ComparisonResponse {
	products := h.service.Products()
	return &ComparisonResponse{
		Products: products,
		Total:    len(products),
		Max:      domain.MaxProducts,
	}
}

// RegisterRoutes registers comparison HTTP routes
func (h *ComparisonHandler) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	server.GET(hr, r, "/comparison", h.GetComparison)
	server.GET(hr, r, "/comparison/table", h.GetTable)
	server.POST(hr, r, "/comparison/items", h.AddItem)
	server.DELETE(hr, r, "/comparison/items/:productId", h.RemoveItem)
	server.DELETE(hr, r, "/comparison", h.ClearComparison)
}
