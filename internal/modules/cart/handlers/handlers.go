// Package handlers provides HTTP handlers for the cart module.
package handlers

import (
	"context"
	"errors"

	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	catalogdomain "github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/cart/domain"
)

type AddItemRequest struct {
	ProductID      string `json:"productId" binding:"required"`
	Quantity       int    `json:"quantity"`
	SelectedBranch string `json:"selectedBranch"`
}

type UpdateQuantityRequest struct {
	ProductID string `param:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type RemoveItemRequest struct {
	ProductID string `param:"productId" binding:"required"`
}

type CartResponse struct {
	Items      []*domain.Item `json:"items"`
	TotalItems int            `json:"totalItems"`
	TotalPrice float64        `json:"totalPrice"`
}

// CartServiceInterface defines the service contract for handlers
type CartServiceInterface interface {
	AddItem(ctx context.Context, productID string, quantity int, selectedBranch string) (*domain.Item, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int)
	RemoveItem(ctx context.Context, productID string)
	Clear(ctx context.Context)
	Items() []*domain.Item
	TotalItems() int
	TotalPrice() float64
}

type CartHandler struct {
	service CartServiceInterface
	logger  logger.Logger
}

func NewCartHandler(s CartServiceInterface, l logger.Logger) *CartHandler {
	return &CartHandler{
		service: s,
		logger:  l,
	}
}

func (h *CartHandler) GetCart(_ struct{}, _ server.HandlerContext) (*CartResponse, server.IAPIError) {
	return h.cartResponse(), nil
}

func (h *CartHandler) AddItem(req AddItemRequest, ctx server.HandlerContext) (server.Result[*CartResponse], server.IAPIError) {
	_, err := h.service.AddItem(ctx.Echo.Request().Context(), req.ProductID, req.Quantity, req.SelectedBranch)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			return server.Result[*CartResponse]{}, server.NewNotFoundError("Product")
		}
		h.logger.Error().Err(err).Str("productID", req.ProductID).Msg("Failed to add cart item")
		return server.Result[*CartResponse]{}, server.NewBadRequestError(err.Error())
	}

	return server.Created(h.cartResponse()), nil
}

func (h *CartHandler) UpdateQuantity(req UpdateQuantityRequest, ctx server.HandlerContext) (*CartResponse, server.IAPIError) {
	h.service.UpdateQuantity(ctx.Echo.Request().Context(), req.ProductID, req.Quantity)
	return h.cartResponse(), nil
}

func (h *CartHandler) RemoveItem(req RemoveItemRequest, ctx server.HandlerContext) (*CartResponse, server.IAPIError) {
	h.service.RemoveItem(ctx.Echo.Request().Context(), req.ProductID)
	return h.cartResponse(), nil
}

func (h *CartHandler) ClearCart(_ struct{}, ctx server.HandlerContext) (server.NoContentResult, server.IAPIError) {
	h.service.Clear(ctx.Echo.Request().Context())
	return server.NoContent(), nil
}

func (h *CartHandler) cartResponse() *CartResponse {
	return &CartResponse{
		Items:      h.service.Items(),
		TotalItems: h.service.TotalItems(),
		TotalPrice: h.service.TotalPrice(),
	}
}

// RegisterRoutes registers cart HTTP routes
func (h *CartHandler) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	server.GET(hr, r, "/cart", h.GetCart)
	server.POST(hr, r, "/cart/items", h.AddItem)
	server.PUT(hr, r, "/cart/items/:productId", h.UpdateQuantity)
	server.DELETE(hr, r, "/cart/items/:productId", h.RemoveItem)
	server.DELETE(hr, r, "/cart", h.ClearCart)
}
