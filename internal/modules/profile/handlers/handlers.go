// Package handlers provides HTTP handlers for auth, profile, and orders.
package handlers

import (
	"context"
	"errors"

	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/profile/domain"
	"github.com/lnsc/storefront/internal/modules/profile/service"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName   *string                   `json:"firstName"`
	LastName    *string                   `json:"lastName"`
	Phone       *string                   `json:"phone"`
	DateOfBirth *string                   `json:"dateOfBirth"`
	Address     *domain.Address           `json:"address"`
	Preferences *domain.NotificationPrefs `json:"preferences"`
}

type GetOrderRequest struct {
	OrderID string `param:"id" binding:"required"`
}

type CheckoutRequest struct {
	ShippingAddress domain.Address `json:"shippingAddress" binding:"required"`
	PaymentMethod   string         `json:"paymentMethod" binding:"required"`
}

type OrdersResponse struct {
	Orders []*domain.Order `json:"orders"`
	Total  int             `json:"total"`
}

// ProfileServiceInterface defines the service contract for handlers
type ProfileServiceInterface interface {
	Register(ctx context.Context, input service.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context)
	CurrentUser() (*domain.User, error)
	UpdateProfile(ctx context.Context, update service.ProfileUpdate) (*domain.User, error)
	OrderHistory() ([]*domain.Order, error)
	OrderByID(orderID string) (*domain.Order, error)
	Checkout(ctx context.Context, input service.CheckoutInput) (*domain.Order, error)
}

type ProfileHandler struct {
	service ProfileServiceInterface
	logger  logger.Logger
}

func NewProfileHandler(s ProfileServiceInterface, l logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: s,
		logger:  l,
	}
}

func (h *ProfileHandler) Register(req RegisterRequest, ctx server.HandlerContext) (server.Result[*domain.User], server.IAPIError) {
	user, err := h.service.Register(ctx.Echo.Request().Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return server.Result[*domain.User]{}, h.mapError(err, "Failed to register account")
	}

	return server.Created(user), nil
}

func (h *ProfileHandler) Login(req LoginRequest, ctx server.HandlerContext) (*domain.User, server.IAPIError) {
	user, err := h.service.Login(ctx.Echo.Request().Context(), req.Email, req.Password)
	if err != nil {
		return nil, h.mapError(err, "Failed to log in")
	}
	return user, nil
}

func (h *ProfileHandler) Logout(_ struct{}, ctx server.HandlerContext) (server.NoContentResult, server.IAPIError) {
	h.service.Logout(ctx.Echo.Request().Context())
	return server.NoContent(), nil
}

func (h *ProfileHandler) GetProfile(_ struct{}, _ server.HandlerContext) (*domain.User, server.IAPIError) {
	user, err := h.service.CurrentUser()
	if err != nil {
		return nil, h.mapError(err, "Failed to load profile")
	}
	return user, nil
}

func (h *ProfileHandler) UpdateProfile(req UpdateProfileRequest, ctx server.HandlerContext) (*domain.User, server.IAPIError) {
	user, err := h.service.UpdateProfile(ctx.Echo.Request().Context(), service.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		Preferences: req.Preferences,
	})
	if err != nil {
		return nil, h.mapError(err, "Failed to update profile")
	}
	return user, nil
}

func (h *ProfileHandler) GetOrders(_ struct{}, _ server.HandlerContext) (*OrdersResponse, server.IAPIError) {
	orders, err := h.service.OrderHistory()
	if err != nil {
		return nil, h.mapError(err, "Failed to load orders")
	}
	return &OrdersResponse{Orders: orders, Total: len(orders)}, nil
}

func (h *ProfileHandler) GetOrder(req GetOrderRequest, _ server.HandlerContext) (*domain.Order, server.IAPIError) {
	order, err := h.service.OrderByID(req.OrderID)
	if err != nil {
		return nil, h.mapError(err, "Failed to load order")
	}
	return order, nil
}

func (h *ProfileHandler) Checkout(req CheckoutRequest, ctx server.HandlerContext) (server.Result[*domain.Order], server.IAPIError) {
	order, err := h.service.Checkout(ctx.Echo.Request().Context(), service.CheckoutInput{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return server.Result[*domain.Order]{}, h.mapError(err, "Failed to place order")
	}

	return server.Created(order), nil
}

func (h *ProfileHandler) mapError(err error, fallback string) server.IAPIError {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return server.NewNotFoundError("Order")
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrEmptyCart):
		return server.NewBadRequestError(err.Error())
	default:
		h.logger.Error().Err(err).Msg(fallback)
		return server.NewInternalServerError(fallback)
	}
}

// RegisterRoutes registers auth, profile, and order HTTP routes
func (h *ProfileHandler) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	server.POST(hr, r, "/auth/register", h.Register)
	server.POST(hr, r, "/auth/login", h.Login)
	server.POST(hr, r, "/auth/logout", h.Logout)
	server.GET(hr, r, "/profile", h.GetProfile)
	server.PUT(hr, r, "/profile", h.UpdateProfile)
	server.GET(hr, r, "/orders", h.GetOrders)
	server.GET(hr, r, "/orders/:id", h.GetOrder)
	server.POST(hr, r, "/checkout", h.Checkout)
}
