// Package service provides business logic for the reviews module.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/gaborage/go-bricks/logger"
	"github.com/google/uuid"
	catalogservice "github.com/lnsc/storefront/internal/modules/catalog/service"
	"github.com/lnsc/storefront/internal/modules/reviews/domain"
	"github.com/lnsc/storefront/internal/modules/reviews/store"
)

const minCommentLength = 10

// SubmitInput is the payload for a new review.
type SubmitInput struct {
	ProductID string
	UserID    string
	UserName  string
	Rating    int
	Title     string
	Comment   string
	Pros      []string
	Cons      []string
	Images    []domain.Image
	Verified  bool
}

// UpdateInput is the patch applied to an existing review.
type UpdateInput struct {
	Rating  int
	Title   string
	Comment string
	Pros    []string
	Cons    []string
	Images  []domain.Image
}

// ReviewService coordinates review submission, voting, and aggregate
// statistics.
type ReviewService struct {
	store   *store.ReviewStore
	catalog *catalogservice.CatalogService
	logger  logger.Logger
	now     func() time.Time
}

// NewService creates a review service.
func NewService(s *store.ReviewStore, c *catalogservice.CatalogService, l logger.Logger) *ReviewService {
	return &ReviewService{
		store:   s,
		catalog: c,
		logger:  l,
		now:     time.Now,
	}
}

// Submit validates and stores a new review. Validation failures return
// field-level errors and store nothing. New reviews start with zero vote
// counters and IsEdited false.
func (s *ReviewService) Submit(ctx context.Context, input SubmitInput) (*domain.Review, error) {
	if errs := validate(input.Rating, input.Title, input.Comment); len(errs) > 0 {
		return nil, errs
	}
	if _, err := s.catalog.GetProduct(input.ProductID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:        uuid.NewString(),
		ProductID: input.ProductID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		Rating:    input.Rating,
		Title:     strings.TrimSpace(input.Title),
		Comment:   input.Comment,
		Pros:      input.Pros,
		Cons:      input.Cons,
		Images:    input.Images,
		Verified:  input.Verified,
		CreatedAt: s.now().UTC(),
	}
	s.store.Add(ctx, review)

	s.logger.Info().
		Str("reviewID", review.ID).
		Str("productID", review.ProductID).
		Int("rating", review.Rating).
		Msg("Review submitted")

	return review, nil
}

// Update patches an existing review, stamping UpdatedAt and marking it
// edited.
func (s *ReviewService) Update(ctx context.Context, reviewID string, input UpdateInput) (*domain.Review, error) {
	if errs := validate(input.Rating, input.Title, input.Comment); len(errs) > 0 {
		return nil, errs
	}

	review, err := s.store.ByID(reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.Title = strings.TrimSpace(input.Title)
	review.Comment = input.Comment
	review.Pros = input.Pros
	review.Cons = input.Cons
	review.Images = input.Images
	review.IsEdited = true
	updated := s.now().UTC()
	review.UpdatedAt = &updated

	if err := s.store.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	return s.store.Delete(ctx, reviewID)
}

// Vote applies the tri-state helpfulness toggle for a user.
func (s *ReviewService) Vote(ctx context.Context, reviewID, userID string, vote domain.Vote) (*domain.Review, error) {
	if !vote.Valid() {
		return nil, domain.FieldErrors{"vote": "vote must be helpful or notHelpful"}
	}
	if err := s.store.Vote(ctx, reviewID, userID, vote); err != nil {
		return nil, err
	}
	return s.store.ByID(reviewID)
}

// ProductReviews returns a product's reviews, newest first.
func (s *ReviewService) ProductReviews(productID string) []*domain.Review {
	return s.store.ForProduct(productID)
}

// UserReviews returns a user's reviews, newest first.
func (s *ReviewService) UserReviews(userID string) []*domain.Review {
	return s.store.ForUser(userID)
}

// CanUserReview reports whether the (productID, userID) pair has no review
// yet.
func (s *ReviewService) CanUserReview(productID, userID string) bool {
	return !s.store.HasReviewed(productID, userID)
}

// Stats recomputes the aggregate statistics for a product from its full
// review list.
func (s *ReviewService) Stats(productID string) *domain.Stats {
	return domain.ComputeStats(s.store.ForProduct(productID))
}

func validate(rating int, title, comment string) domain.FieldErrors {
	errs := domain.FieldErrors{}
	if rating < 1 || rating > 5 {
		errs["rating"] = "rating must be between 1 and 5"
	}
	if strings.TrimSpace(title) == "" {
		errs["title"] = "title is required"
	}
	if len(comment) < minCommentLength {
		errs["comment"] = "comment must be at least 10 characters"
	}
	return errs
}
