package store

import (
	"context"
	"testing"

	"github.com/gaborage/go-bricks/logger"
	catalog "github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/cart/domain"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

func newMockLogger() logger.Logger {
	return logger.New("info", false)
}

func newTestStore() *CartStore {
	return NewCartStore(context.Background(), storage.NewMemoryStore(), newMockLogger())
}

func testItem(productID string, price float64, quantity int) *domain.Item {
	return domain.NewItem(&catalog.Product{
		ID:    productID,
		Name:  "Product " + productID,
		Brand: "TestBrand",
		Price: price,
	}, quantity, "")
}

func TestAddItemMergesQuantity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.AddItem(ctx, testItem("p1", 10000, 2))
	store.AddItem(ctx, testItem("p1", 10000, 3))

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("Items() count = %d, want 1 merged line", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", items[0].Quantity)
	}
}

func TestCartTotals(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	// Scenario from the checkout flow: A 10000 x2, B 5000 x1.
	store.AddItem(ctx, testItem("a", 10000, 2))
	store.AddItem(ctx, testItem("b", 5000, 1))

	if got := store.TotalPrice(); got != 25000 {
		t.Errorf("TotalPrice() = %v, want 25000", got)
	}
	if got := store.TotalItems(); got != 3 {
		t.Errorf("TotalItems() = %v, want 3", got)
	}

	store.RemoveItem(ctx, "a")

	if got := store.TotalPrice(); got != 5000 {
		t.Errorf("TotalPrice() after remove = %v, want 5000", got)
	}
	if got := store.TotalItems(); got != 1 {
		t.Errorf("TotalItems() after remove = %v, want 1", got)
	}
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantItems int
		wantQty   int
	}{
		{name: "positive quantity sets", quantity: 4, wantItems: 1, wantQty: 4},
		{name: "zero quantity removes", quantity: 0, wantItems: 0},
		{name: "negative quantity removes", quantity: -2, wantItems: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newTestStore()
			store.AddItem(ctx, testItem("p1", 100, 1))

			store.UpdateQuantity(ctx, "p1", tt.quantity)

			items := store.Items()
			if len(items) != tt.wantItems {
				t.Fatalf("Items() count = %d, want %d", len(items), tt.wantItems)
			}
			if tt.wantItems > 0 && items[0].Quantity != tt.wantQty {
				t.Errorf("Quantity = %d, want %d", items[0].Quantity, tt.wantQty)
			}
		})
	}
}

func TestTotalsTrackQuantities(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.AddItem(ctx, testItem("p1", 100, 2))
	store.AddItem(ctx, testItem("p2", 50, 1))
	store.UpdateQuantity(ctx, "p2", 4)
	store.RemoveItem(ctx, "p1")
	store.AddItem(ctx, testItem("p3", 10, 3))

	wantItems := 0
	wantPrice := 0.0
	for _, item := range store.Items() {
		wantItems += item.Quantity
		wantPrice += item.Price * float64(item.Quantity)
	}

	if got := store.TotalItems(); got != wantItems {
		t.Errorf("TotalItems() = %d, want sum of quantities %d", got, wantItems)
	}
	if got := store.TotalPrice(); got != wantPrice {
		t.Errorf("TotalPrice() = %v, want %v", got, wantPrice)
	}
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.AddItem(ctx, testItem("p1", 100, 2))
	store.Clear(ctx)

	if got := store.TotalItems(); got != 0 {
		t.Errorf("TotalItems() after clear = %d, want 0", got)
	}
	if items := store.Items(); len(items) != 0 {
		t.Errorf("Items() after clear = %d lines, want 0", len(items))
	}
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	shared := storage.NewMemoryStore()
	log := newMockLogger()

	first := NewCartStore(ctx, shared, log)
	first.AddItem(ctx, testItem("p1", 100, 2))

	// A new store over the same snapshot backend restores the cart.
	second := NewCartStore(ctx, shared, log)
	if got := second.TotalItems(); got != 2 {
		t.Errorf("restored TotalItems() = %d, want 2", got)
	}
}
