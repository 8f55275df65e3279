package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gaborage/go-bricks/logger"
	catalogdomain "github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/catalog/repository"
	catalogservice "github.com/lnsc/storefront/internal/modules/catalog/service"
	"github.com/lnsc/storefront/internal/modules/reviews/domain"
	"github.com/lnsc/storefront/internal/modules/reviews/store"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

func newTestService() *ReviewService {
	log := logger.New("info", false)
	catalog := catalogservice.NewService(repository.NewCatalogRepository(catalogdomain.SeedProducts()), log)
	reviews := store.NewReviewStore(context.Background(), storage.NewMemoryStore(), log)
	return NewService(reviews, catalog, log)
}

func validInput() SubmitInput {
	return SubmitInput{
		ProductID: "3",
		UserID:    "u200",
		UserName:  "Test User",
		Rating:    4,
		Title:     "Solid choice",
		Comment:   "Does everything a student needs without breaking the bank.",
	}
}

func TestSubmitRejectsShortComment(t *testing.T) {
	svc := newTestService()

	input := validInput()
	input.Comment = "Nice!"

	before := len(svc.ProductReviews(input.ProductID))
	_, err := svc.Submit(context.Background(), input)

	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("Submit error = %v, want FieldErrors", err)
	}
	if _, ok := fieldErrs["comment"]; !ok {
		t.Errorf("FieldErrors missing comment entry: %v", fieldErrs)
	}
	if after := len(svc.ProductReviews(input.ProductID)); after != before {
		t.Errorf("review count changed on failed submit: %d -> %d", before, after)
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SubmitInput)
		wantField string
	}{
		{
			name:      "rating below range",
			mutate:    func(in *SubmitInput) { in.Rating = 0 },
			wantField: "rating",
		},
		{
			name:      "rating above range",
			mutate:    func(in *SubmitInput) { in.Rating = 6 },
			wantField: "rating",
		},
		{
			name:      "blank title",
			mutate:    func(in *SubmitInput) { in.Title = "   " },
			wantField: "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Submit(context.Background(), input)

			var fieldErrs domain.FieldErrors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("Submit error = %v, want FieldErrors", err)
			}
			if _, ok := fieldErrs[tt.wantField]; !ok {
				t.Errorf("FieldErrors missing %q entry: %v", tt.wantField, fieldErrs)
			}
		})
	}
}

func TestSubmitUnknownProduct(t *testing.T) {
	svc := newTestService()

	input := validInput()
	input.ProductID = "999"

	if _, err := svc.Submit(context.Background(), input); !errors.Is(err, catalogdomain.ErrProductNotFound) {
		t.Errorf("Submit error = %v, want ErrProductNotFound", err)
	}
}

func TestCanUserReviewFlipsAfterSubmit(t *testing.T) {
	svc := newTestService()
	input := validInput()

	if !svc.CanUserReview(input.ProductID, input.UserID) {
		t.Fatal("CanUserReview before submit = false, want true")
	}

	if _, err := svc.Submit(context.Background(), input); err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	if svc.CanUserReview(input.ProductID, input.UserID) {
		t.Error("CanUserReview after submit = true, want false")
	}
	if !svc.CanUserReview(input.ProductID, "someone-else") {
		t.Error("CanUserReview for other user = false, want true")
	}
}

func TestSubmitStartsUnedited(t *testing.T) {
	svc := newTestService()

	review, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	if review.IsEdited {
		t.Error("new review IsEdited = true, want false")
	}
	if review.HelpfulCount != 0 || review.NotHelpfulCount != 0 {
		t.Errorf("new review counts = (%d, %d), want (0, 0)", review.HelpfulCount, review.NotHelpfulCount)
	}
}

func TestSubmitCarriesImagesWithAltText(t *testing.T) {
	svc := newTestService()

	input := validInput()
	input.Images = []domain.Image{
		{ID: "img1", URL: "/placeholder.svg?text=Unboxing", Alt: "Laptop fresh out of the box"},
	}

	review, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	if len(review.Images) != 1 {
		t.Fatalf("image count = %d, want 1", len(review.Images))
	}
	if review.Images[0].Alt != "Laptop fresh out of the box" {
		t.Errorf("Images[0].Alt = %q, want alt text preserved", review.Images[0].Alt)
	}

	stored := svc.ProductReviews(input.ProductID)
	var found *domain.Review
	for _, r := range stored {
		if r.ID == review.ID {
			found = r
		}
	}
	if found == nil {
		t.Fatal("submitted review not found for product")
	}
	if len(found.Images) != 1 || found.Images[0].Alt != "Laptop fresh out of the box" {
		t.Errorf("stored images = %+v, want alt text preserved", found.Images)
	}
}

func TestUpdateMarksEdited(t *testing.T) {
	svc := newTestService()

	review, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	updated, err := svc.Update(context.Background(), review.ID, UpdateInput{
		Rating:  3,
		Title:   "Revised after a month",
		Comment: "Still good, though the battery degraded faster than expected.",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if !updated.IsEdited {
		t.Error("updated review IsEdited = false, want true")
	}
	if updated.UpdatedAt == nil {
		t.Error("updated review UpdatedAt = nil, want stamp")
	}
	if updated.Rating != 3 {
		t.Errorf("updated Rating = %d, want 3", updated.Rating)
	}
}

func TestStatsDistribution(t *testing.T) {
	svc := newTestService()

	stats := svc.Stats("1")
	if stats.TotalReviews != 2 {
		t.Fatalf("TotalReviews = %d, want 2", stats.TotalReviews)
	}
	if stats.AverageRating != 4.5 {
		t.Errorf("AverageRating = %v, want 4.5", stats.AverageRating)
	}
	if stats.RatingDistribution[5] != 1 || stats.RatingDistribution[4] != 1 {
		t.Errorf("RatingDistribution = %v, want one 5 and one 4", stats.RatingDistribution)
	}
	if stats.VerifiedPurchases != 2 {
		t.Errorf("VerifiedPurchases = %d, want 2", stats.VerifiedPurchases)
	}
}

func TestVoteRejectsInvalidValue(t *testing.T) {
	svc := newTestService()

	_, err := svc.Vote(context.Background(), "r1", "voter", domain.Vote("meh"))

	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Errorf("Vote error = %v, want FieldErrors", err)
	}
}
