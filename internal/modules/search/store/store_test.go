package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

func newTestStore() *RecentStore {
	return NewRecentStore(context.Background(), storage.NewMemoryStore(), logger.New("info", false))
}

func TestAddKeepsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.Add(ctx, "gaming")
	store.Add(ctx, "thinkpad")

	want := []string{"thinkpad", "gaming"}
	if got := store.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("Recent() = %v, want %v", got, want)
	}
}

func TestAddDedupesByReinsertion(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.Add(ctx, "gaming")
	store.Add(ctx, "thinkpad")
	store.Add(ctx, "gaming")

	want := []string{"gaming", "thinkpad"}
	if got := store.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("Recent() = %v, want %v", got, want)
	}
}

func TestAddCapsAtFive(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	terms := []string{"one", "two", "three", "four", "five", "six"}
	for _, term := range terms {
		store.Add(ctx, term)
	}

	want := []string{"six", "five", "four", "three", "two"}
	if got := store.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("Recent() = %v, want %v", got, want)
	}
}

func TestAddIgnoresBlankTerms(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.Add(ctx, "   ")

	if got := store.Recent(); len(got) != 0 {
		t.Errorf("Recent() after blank add = %v, want empty", got)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.Add(ctx, "gaming")
	store.Clear(ctx)

	if got := store.Recent(); len(got) != 0 {
		t.Errorf("Recent() after clear = %v, want empty", got)
	}
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	shared := storage.NewMemoryStore()
	log := logger.New("info", false)

	first := NewRecentStore(ctx, shared, log)
	first.Add(ctx, "gaming")
	first.Add(ctx, "thinkpad")

	second := NewRecentStore(ctx, shared, log)
	want := []string{"thinkpad", "gaming"}
	if got := second.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("restored Recent() = %v, want %v", got, want)
	}
}
