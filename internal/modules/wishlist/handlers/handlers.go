// Package handlers provides HTTP handlers for the wishlist module.
package handlers

import (
	"context"
	"errors"

	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	catalogdomain "github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/wishlist/domain"
)

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type RemoveItemRequest struct {
	ProductID string `param:"productId" binding:"required"`
}

type MoveToCartRequest struct {
	ProductID string `param:"productId" binding:"required"`
}

type WishlistResponse struct {
	Items []*domain.Item `json:"items"`
	Total int            `json:"total"`
}

// WishlistServiceInterface defines the service contract for handlers
type WishlistServiceInterface interface {
	Add(ctx context.Context, productID string) (*domain.Item, error)
	Remove(ctx context.Context, productID string)
	Clear(ctx context.Context)
	Items() []*domain.Item
	Count() int
	MoveToCart(ctx context.Context, productID string) error
}

type WishlistHandler struct {
	service WishlistServiceInterface
	logger  logger.Logger
}

func NewWishlistHandler(s WishlistServiceInterface, l logger.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: s,
		logger:  l,
	}
}

func (h *WishlistHandler) GetWishlist(_ struct{}, _ server.HandlerContext) (*WishlistResponse, server.IAPIError) {
	return h.wishlistResponse(), nil
}

func (h *WishlistHandler) AddItem(req AddItemRequest, ctx server.HandlerContext) (server.Result[*WishlistResponse], server.IAPIError) {
	_, err := h.service.Add(ctx.Echo.Request().Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			return server.Result[*WishlistResponse]{}, server.NewNotFoundError("Product")
		}
		h.logger.Error().Err(err).Str("productID", req.ProductID).Msg("Failed to add wishlist item")
		return server.Result[*WishlistResponse]{}, server.NewInternalServerError("Failed to add wishlist item")
	}

	return server.Created(h.wishlistResponse()), nil
}

func (h *WishlistHandler) RemoveItem(req RemoveItemRequest, ctx server.HandlerContext) (*WishlistResponse, server.IAPIError) {
	h.service.Remove(ctx.Echo.Request().Context(), req.ProductID)
	return h.wishlistResponse(), nil
}

func (h *WishlistHandler) MoveToCart(req MoveToCartRequest, ctx server.HandlerContext) (*WishlistResponse, server.IAPIError) {
	if err := h.service.MoveToCart(ctx.Echo.Request().Context(), req.ProductID); err != nil {
		return nil, server.NewBadRequestError(err.Error())
	}
	return h.wishlistResponse(), nil
}

func (h *WishlistHandler) ClearWishlist(_ struct{}, ctx server.HandlerContext) (server.NoContentResult, server.IAPIError) {
	h.service.Clear(ctx.Echo.Request().Context())
	return server.NoContent(), nil
}

func (h *WishlistHandler) wishlistResponse() *WishlistResponse {
	return &WishlistResponse{
		Items: h.service.Items(),
		Total: h.service.Count(),
	}
}

// RegisterRoutes registers wishlist HTTP routes
func (h *WishlistHandler) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	server.GET(hr, r, "/wishlist", h.GetWishlist)
	server.POST(hr, r, "/wishlist/items", h.AddItem)
	server.DELETE(hr, r, "/wishlist/items/:productId", h.RemoveItem)
	server.POST(hr, r, "/wishlist/items/:productId/move-to-cart", h.MoveToCart)
	server.DELETE(hr, r, "/wishlist", h.ClearWishlist)
}
