// Package store holds the review list and per-user vote state, mirrored to
// the snapshot store after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/reviews/domain"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

const snapshotKey = "reviews"

// snapshot is the persisted shape: the review list plus each user's vote
// per review.
type snapshot struct {
	Reviews []*domain.Review                  `json:"reviews"`
	Votes   map[string]map[string]domain.Vote `json:"votes"`
}

// ReviewStore owns all reviews and helpfulness votes.
type ReviewStore struct {
	reviews []*domain.Review
	votes   map[string]map[string]domain.Vote
	storage storage.Store
	logger  logger.Logger
	mu      sync.RWMutex
}

// NewReviewStore creates a review store, restoring a persisted snapshot or
// falling back to the seed review set.
func NewReviewStore(ctx context.Context, st storage.Store, log logger.Logger) *ReviewStore {
	s := &ReviewStore{
		votes:   make(map[string]map[string]domain.Vote),
		storage: st,
		logger:  log,
	}
	if !s.restore(ctx) {
		s.reviews = domain.SeedReviews()
	}
	return s
}

// Add appends a new review.
func (s *ReviewStore) Add(ctx context.Context, review *domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = append(s.reviews, review)
	s.persist(ctx)
}

// Update replaces the stored review with the same ID.
func (s *ReviewStore) Update(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reviews {
		if r.ID == review.ID {
			s.reviews[i] = review
			s.persist(ctx)
			return nil
		}
	}
	return domain.ErrReviewNotFound
}

// Delete removes a review and its vote state.
func (s *ReviewStore) Delete(ctx context.Context, reviewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reviews {
		if r.ID == reviewID {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			delete(s.votes, reviewID)
			s.persist(ctx)
			return nil
		}
	}
	return domain.ErrReviewNotFound
}

// ByID returns a copy of the review with the given ID.
func (s *ReviewStore) ByID(reviewID string) (*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reviews {
		if r.ID == reviewID {
			out := *r
			return &out, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

// ForProduct returns the product's reviews, newest first.
func (s *ReviewStore) ForProduct(productID string) []*domain.Review {
	return s.filter(func(r *domain.Review) bool { return r.ProductID == productID })
}

// ForUser returns the user's reviews, newest first.
func (s *ReviewStore) ForUser(userID string) []*domain.Review {
	return s.filter(func(r *domain.Review) bool { return r.UserID == userID })
}

// HasReviewed reports whether the (productID, userID) pair already has a
// review.
func (s *ReviewStore) HasReviewed(productID, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reviews {
		if r.ProductID == productID && r.UserID == userID {
			return true
		}
	}
	return false
}

// Vote applies the tri-state toggle: repeating the current vote clears it,
// the opposite vote moves the count between buckets, a first vote simply
// increments.
func (s *ReviewStore) Vote(ctx context.Context, reviewID, userID string, vote domain.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var review *domain.Review
	for _, r := range s.reviews {
		if r.ID == reviewID {
			review = r
			break
		}
	}
	if review == nil {
		return domain.ErrReviewNotFound
	}

	current := s.votes[reviewID][userID]
	if current == vote {
		s.applyVote(review, vote, -1)
		delete(s.votes[reviewID], userID)
	} else {
		if current != domain.VoteNone {
			s.applyVote(review, current, -1)
		}
		s.applyVote(review, vote, 1)
		if s.votes[reviewID] == nil {
			s.votes[reviewID] = make(map[string]domain.Vote)
		}
		s.votes[reviewID][userID] = vote
	}

	s.persist(ctx)
	return nil
}

// UserVote returns the user's current vote on a review.
func (s *ReviewStore) UserVote(reviewID, userID string) domain.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.votes[reviewID][userID]
}

func (s *ReviewStore) applyVote(review *domain.Review, vote domain.Vote, delta int) {
	switch vote {
	case domain.VoteHelpful:
		review.HelpfulCount += delta
	case domain.VoteNotHelpful:
		review.NotHelpfulCount += delta
	}
}

func (s *ReviewStore) filter(keep func(*domain.Review) bool) []*domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Review
	for _, r := range s.reviews {
		if keep(r) {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *ReviewStore) persist(ctx context.Context) {
	data, err := json.Marshal(snapshot{Reviews: s.reviews, Votes: s.votes})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to marshal reviews snapshot")
		return
	}
	if err := s.storage.Set(ctx, snapshotKey, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist reviews snapshot")
	}
}

func (s *ReviewStore) restore(ctx context.Context) bool {
	data, err := s.storage.Get(ctx, snapshotKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error().Err(err).Msg("Failed to load reviews snapshot")
		}
		return false
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Error().Err(err).Msg("Failed to decode reviews snapshot")
		return false
	}

	s.reviews = snap.Reviews
	if snap.Votes != nil {
		s.votes = snap.Votes
	}
	return true
}
