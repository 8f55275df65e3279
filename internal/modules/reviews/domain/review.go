// Package domain defines the review entities, vote states, and aggregate
// statistics.
package domain

import (
	"fmt"
	"time"
)

var (
	ErrReviewNotFound = fmt.Errorf("review not found")
)

// Vote is a user's helpfulness vote on a review. The empty value means no
// vote has been cast.
type Vote string

const (
	VoteNone       Vote = ""
	VoteHelpful    Vote = "helpful"
	VoteNotHelpful Vote = "notHelpful"
)

// Valid reports whether v is a castable vote.
func (v Vote) Valid() bool {
	return v == VoteHelpful || v == VoteNotHelpful
}

// Image is a photo attached to a review.
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Review is a user-submitted product review.
type Review struct {
	ID              string     `json:"id"`
	ProductID       string     `json:"productId"`
	UserID          string     `json:"userId"`
	UserName        string     `json:"userName"`
	Rating          int        `json:"rating"`
	Title           string     `json:"title"`
	Comment         string     `json:"comment"`
	Pros            []string   `json:"pros"`
	Cons            []string   `json:"cons"`
	Images          []Image    `json:"images"`
	Verified        bool       `json:"verified"`
	IsEdited        bool       `json:"isEdited"`
	HelpfulCount    int        `json:"helpfulCount"`
	NotHelpfulCount int        `json:"notHelpfulCount"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// Stats is the aggregate view over a product's reviews, recomputed from
// the full review list on every read.
type Stats struct {
	AverageRating      float64     `json:"averageRating"`
	TotalReviews       int         `json:"totalReviews"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
	VerifiedPurchases  int         `json:"verifiedPurchases"`
	WithPhotos         int         `json:"withPhotos"`
}

// ComputeStats derives aggregate statistics for a review slice.
func ComputeStats(reviews []*Review) *Stats {
	stats := &Stats{
		TotalReviews:       len(reviews),
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
		stats.RatingDistribution[r.Rating]++
		if r.Verified {
			stats.VerifiedPurchases++
		}
		if len(r.Images) > 0 {
			stats.WithPhotos++
		}
	}
	if len(reviews) > 0 {
		stats.AverageRating = float64(sum) / float64(len(reviews))
	}

	return stats
}
