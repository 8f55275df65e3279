// Package handlers provides HTTP handlers for the reviews module.
package handlers

import (
	"context"
	"errors"

	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	catalogdomain "github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/reviews/domain"
	"github.com/lnsc/storefront/internal/modules/reviews/service"
)

type ProductReviewsRequest struct {
	ProductID string `param:"id" binding:"required"`
}

type UserReviewsRequest struct {
	UserID string `param:"id" binding:"required"`
}

type SubmitReviewRequest struct {
	ProductID string         `json:"productId" binding:"required"`
	UserID    string         `json:"userId" binding:"required"`
	UserName  string         `json:"userName"`
	Rating    int            `json:"rating"`
	Title     string         `json:"title"`
	Comment   string         `json:"comment"`
	Pros      []string       `json:"pros"`
	Cons      []string       `json:"cons"`
	Images    []domain.Image `json:"images"`
	Verified  bool           `json:"verified"`
}

type UpdateReviewRequest struct {
	ReviewID string         `param:"id" binding:"required"`
	Rating   int            `json:"rating"`
	Title    string         `json:"title"`
	Comment  string         `json:"comment"`
	Pros     []string       `json:"pros"`
	Cons     []string       `json:"cons"`
	Images   []domain.Image `json:"images"`
}

type DeleteReviewRequest struct {
	ReviewID string `param:"id" binding:"required"`
}

type VoteRequest struct {
	ReviewID string      `param:"id" binding:"required"`
	UserID   string      `json:"userId" binding:"required"`
	Vote     domain.Vote `json:"vote" binding:"required"`
}

type ReviewListResponse struct {
	Reviews []*domain.Review `json:"reviews"`
	Total   int              `json:"total"`
}

// ReviewServiceInterface defines the service contract for handlers
type ReviewServiceInterface interface {
	Submit(ctx context.Context, input service.SubmitInput) (*domain.Review, error)
	Update(ctx context.Context, reviewID string, input service.UpdateInput) (*domain.Review, error)
	Delete(ctx context.Context, reviewID string) error
	Vote(ctx context.Context, reviewID, userID string, vote domain.Vote) (*domain.Review, error)
	ProductReviews(productID string) []*domain.Review
	UserReviews(userID string) []*domain.Review
	Stats(productID string) *domain.Stats
}

type ReviewHandler struct {
	service ReviewServiceInterface
	logger  logger.Logger
}

func NewReviewHandler(s ReviewServiceInterface, l logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: s,
		logger:  l,
	}
}

func (h *ReviewHandler) GetProductReviews(req ProductReviewsRequest, _ server.HandlerContext) (*ReviewListResponse, server.IAPIError) {
	reviews := h.service.ProductReviews(req.ProductID)
	return &ReviewListResponse{Reviews: reviews, Total: len(reviews)}, nil
}

func (h *ReviewHandler) GetProductStats(req ProductReviewsRequest, _ server.HandlerContext) (*domain.Stats, server.IAPIError) {
	return h.service.Stats(req.ProductID), nil
}

func (h *ReviewHandler) GetUserReviews(req UserReviewsRequest, _ server.HandlerContext) (*ReviewListResponse, server.IAPIError) {
	reviews := h.service.UserReviews(req.UserID)
	return &ReviewListResponse{Reviews: reviews, Total: len(reviews)}, nil
}

func (h *ReviewHandler) SubmitReview(req SubmitReviewRequest, ctx server.HandlerContext) (server.Result[*domain.Review], server.IAPIError) {
	review, err := h.service.Submit(ctx.Echo.Request().Context(), service.SubmitInput{
		ProductID: req.ProductID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		Pros:      req.Pros,
		Cons:      req.Cons,
		Images:    req.Images,
		Verified:  req.Verified,
	})
	if err != nil {
		return server.Result[*domain.Review]{}, h.mapError(err, "Failed to submit review")
	}

	return server.Created(review), nil
}

func (h *ReviewHandler) UpdateReview(req UpdateReviewRequest, ctx server.HandlerContext) (*domain.Review, server.IAPIError) {
	review, err := h.service.Update(ctx.Echo.Request().Context(), req.ReviewID, service.UpdateInput{
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
		Pros:    req.Pros,
		Cons:    req.Cons,
		Images:  req.Images,
	})
	if err != nil {
		return nil, h.mapError(err, "Failed to update review")
	}
	return review, nil
}

func (h *ReviewHandler) DeleteReview(req DeleteReviewRequest, ctx server.HandlerContext) (server.NoContentResult, server.IAPIError) {
	if err := h.service.Delete(ctx.Echo.Request().Context(), req.ReviewID); err != nil {
		return server.NoContent(), h.mapError(err, "Failed to delete review")
	}
	return server.NoContent(), nil
}

func (h *ReviewHandler) VoteReview(req VoteRequest, ctx server.HandlerContext) (*domain.Review, server.IAPIError) {
	review, err := h.service.Vote(ctx.Echo.Request().Context(), req.ReviewID, req.UserID, req.Vote)
	if err != nil {
		return nil, h.mapError(err, "Failed to record vote")
	}
	return review, nil
}

func (h *ReviewHandler) mapError(err error, fallback string) server.IAPIError {
	var fieldErrs domain.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return server.NewBadRequestError(err.Error())
	case errors.Is(err, domain.ErrReviewNotFound):
		return server.NewNotFoundError("Review")
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		return server.NewNotFoundError("Product")
	default:
		h.logger.Error().Err(err).Msg(fallback)
		return server.NewInternalServerError(fallback)
	}
}

// RegisterRoutes registers review HTTP routes
func (h *ReviewHandler) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	server.GET(hr, r, "/products/:id/reviews", h.GetProductReviews)
	server.GET(hr, r, "/products/:id/reviews/stats", h.GetProductStats)
	server.GET(hr, r, "/users/:id/reviews", h.GetUserReviews)
	server.POST(hr, r, "/reviews", h.SubmitReview)
	server.PUT(hr, r, "/reviews/:id", h.UpdateReview)
	server.DELETE(hr, r, "/reviews/:id", h.DeleteReview)
	server.POST(hr, r, "/reviews/:id/vote", h.VoteReview)
}
