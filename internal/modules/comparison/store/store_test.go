package store

import (
	"context"
	"strconv"
	"testing"

	"github.com/gaborage/go-bricks/logger"
	catalog "github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

func newTestStore() *ComparisonStore {
	return NewComparisonStore(context.Background(), storage.NewMemoryStore(), logger.New("info", false))
}

func testProduct(id string) *catalog.Product {
	return &catalog.Product{
		ID:   id,
		Name: "Product " + id,
	}
}

func TestAddCapsAtFourProducts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	for i := 1; i <= 5; i++ {
		store.Add(ctx, testProduct(strconv.Itoa(i)))
	}

	products := store.Products()
	if len(products) != 4 {
		t.Fatalf("Products() length after 5 adds = %d, want 4", len(products))
	}
	for i, p := range products {
		want := strconv.Itoa(i + 1)
		if p.ID != want {
			t.Errorf("Products()[%d].ID = %q, want %q", i, p.ID, want)
		}
	}
	if store.Contains("5") {
		t.Error("Contains(5) after capped add = true, want false")
	}
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.Add(ctx, testProduct("1"))
	store.Add(ctx, testProduct("1"))

	if got := len(store.Products()); got != 1 {
		t.Errorf("Products() length after duplicate add = %d, want 1", got)
	}
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.Add(ctx, testProduct("1"))
	store.Add(ctx, testProduct("2"))

	store.Remove(ctx, "1")
	if store.Contains("1") {
		t.Error("Contains(1) after remove = true, want false")
	}
	if !store.Contains("2") {
		t.Error("Contains(2) after removing 1 = false, want true")
	}

	store.Clear(ctx)
	if got := len(store.Products()); got != 0 {
		t.Errorf("Products() length after clear = %d, want 0", got)
	}
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	shared := storage.NewMemoryStore()
	log := logger.New("info", false)

	first := NewComparisonStore(ctx, shared, log)
	first.Add(ctx, testProduct("1"))
	first.Add(ctx, testProduct("2"))

	second := NewComparisonStore(ctx, shared, log)
	if got := len(second.Products()); got != 2 {
		t.Errorf("restored Products() length = %d, want 2", got)
	}
}
