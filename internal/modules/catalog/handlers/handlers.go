// Package handlers provides HTTP handlers for the catalog module.
package handlers

import (
	"errors"

	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/catalog/domain"
)

type GetProductRequest struct {
	ID string `param:"id" binding:"required"`
}

type ListProductsRequest struct {
	Category string `query:"category"`
}

type ListProductsResponse struct {
	Products []*domain.Product `json:"products"`
	Total    int               `json:"total"`
}

type FacetsResponse struct {
	Brands   []string `json:"brands"`
	Branches []string `json:"branches"`
	Features []string `json:"features"`
}

// CatalogServiceInterface defines the service contract for handlers
type CatalogServiceInterface interface {
	GetProduct(id string) (*domain.Product, error)
	ListProducts(category string) []*domain.Product
	Brands() []string
	Branches() []string
	Features() []string
}

type CatalogHandler struct {
	service CatalogServiceInterface
	logger  logger.Logger
}

func NewCatalogHandler(s CatalogServiceInterface, l logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: s,
		logger:  l,
	}
}

func (h *CatalogHandler) GetProduct(req GetProductRequest, _ server.HandlerContext) (*domain.Product, server.IAPIError) {
	product, err := h.service.GetProduct(req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, server.NewNotFoundError("Product")
		}
		h.logger.Error().Err(err).Str("productID", req.ID).Msg("Failed to get product")
		return nil, server.NewInternalServerError("Failed to retrieve product")
	}

	return product, nil
}

func (h *CatalogHandler) ListProducts(req ListProductsRequest, _ server.HandlerContext) (*ListProductsResponse, server.IAPIError) {
	products := h.service.ListProducts(req.Category)
	return &ListProductsResponse{
		Products: products,
		Total:    len(products),
	}, nil
}

func (h *CatalogHandler) GetFacets(_ struct{}, _ server.HandlerContext) (*FacetsResponse, server.IAPIError) {
	return &FacetsResponse{
		Brands:   h.service.Brands(),
		Branches: h.service.Branches(),
		Features: h.service.Features(),
	}, nil
}

// RegisterRoutes registers catalog HTTP routes
func (h *CatalogHandler) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	server.GET(hr, r, "/products/:id", h.GetProduct)
	server.GET(hr, r, "/products", h.ListProducts)
	server.GET(hr, r, "/catalog/facets", h.GetFacets)
}
