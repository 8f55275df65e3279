package store

import (
	"context"
	"testing"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/reviews/domain"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

func newTestStore() *ReviewStore {
	return NewReviewStore(context.Background(), storage.NewMemoryStore(), logger.New("info", false))
}

func counts(t *testing.T, store *ReviewStore, reviewID string) (helpful, notHelpful int) {
	t.Helper()
	review, err := store.ByID(reviewID)
	if err != nil {
		t.Fatalf("ByID(%s) error: %v", reviewID, err)
	}
	return review.HelpfulCount, review.NotHelpfulCount
}

func TestVoteDoubleApplicationRestoresCounts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	baseHelpful, baseNotHelpful := counts(t, store, "r1")

	if err := store.Vote(ctx, "r1", "voter", domain.VoteHelpful); err != nil {
		t.Fatalf("first vote error: %v", err)
	}
	if h, _ := counts(t, store, "r1"); h != baseHelpful+1 {
		t.Errorf("HelpfulCount after vote = %d, want %d", h, baseHelpful+1)
	}

	if err := store.Vote(ctx, "r1", "voter", domain.VoteHelpful); err != nil {
		t.Fatalf("second vote error: %v", err)
	}
	h, n := counts(t, store, "r1")
	if h != baseHelpful || n != baseNotHelpful {
		t.Errorf("counts after toggle-off = (%d, %d), want (%d, %d)", h, n, baseHelpful, baseNotHelpful)
	}
	if got := store.UserVote("r1", "voter"); got != domain.VoteNone {
		t.Errorf("UserVote after toggle-off = %q, want none", got)
	}
}

func TestVoteSwitchingMovesCount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	baseHelpful, baseNotHelpful := counts(t, store, "r1")

	if err := store.Vote(ctx, "r1", "voter", domain.VoteHelpful); err != nil {
		t.Fatalf("helpful vote error: %v", err)
	}
	if err := store.Vote(ctx, "r1", "voter", domain.VoteNotHelpful); err != nil {
		t.Fatalf("switch vote error: %v", err)
	}

	h, n := counts(t, store, "r1")
	if h != baseHelpful {
		t.Errorf("HelpfulCount after switch = %d, want %d", h, baseHelpful)
	}
	if n != baseNotHelpful+1 {
		t.Errorf("NotHelpfulCount after switch = %d, want %d", n, baseNotHelpful+1)
	}
	if got := store.UserVote("r1", "voter"); got != domain.VoteNotHelpful {
		t.Errorf("UserVote after switch = %q, want notHelpful", got)
	}
}

func TestVoteUnknownReview(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	if err := store.Vote(ctx, "missing", "voter", domain.VoteHelpful); err != domain.ErrReviewNotFound {
		t.Errorf("Vote on missing review error = %v, want ErrReviewNotFound", err)
	}
}

func TestForProductNewestFirst(t *testing.T) {
	store := newTestStore()

	reviews := store.ForProduct("1")
	if len(reviews) != 2 {
		t.Fatalf("ForProduct(1) length = %d, want 2", len(reviews))
	}
	if reviews[0].CreatedAt.Before(reviews[1].CreatedAt) {
		t.Error("ForProduct(1) not sorted newest first")
	}
}

func TestDeleteRemovesVoteState(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	if err := store.Vote(ctx, "r3", "voter", domain.VoteHelpful); err != nil {
		t.Fatalf("vote error: %v", err)
	}
	if err := store.Delete(ctx, "r3"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if got := store.UserVote("r3", "voter"); got != domain.VoteNone {
		t.Errorf("UserVote after delete = %q, want none", got)
	}
	if _, err := store.ByID("r3"); err != domain.ErrReviewNotFound {
		t.Errorf("ByID after delete error = %v, want ErrReviewNotFound", err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	shared := storage.NewMemoryStore()
	log := logger.New("info", false)

	first := NewReviewStore(ctx, shared, log)
	if err := first.Vote(ctx, "r1", "voter", domain.VoteHelpful); err != nil {
		t.Fatalf("vote error: %v", err)
	}

	second := NewReviewStore(ctx, shared, log)
	if got := second.UserVote("r1", "voter"); got != domain.VoteHelpful {
		t.Errorf("restored UserVote = %q, want helpful", got)
	}
}
