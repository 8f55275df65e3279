package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/profile/domain"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

func newTestStore(backing storage.Store) *ProfileStore {
	return NewProfileStore(context.Background(), backing, logger.New("info", false))
}

func testUser(id, email string) *domain.User {
	return &domain.User{
		ID:          id,
		Email:       email,
		FirstName:   "Juan",
		LastName:    "Dela Cruz",
		Preferences: domain.DefaultPreferences(),
		CreatedAt:   time.Now().UTC(),
	}
}

func TestCreateAccountRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	s := newTestStore(storage.NewMemoryStore())
	ctx := context.Background()

	if err := s.CreateAccount(ctx, testUser("u1", "juan@lnsc.ph"), "secret"); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	err := s.CreateAccount(ctx, testUser("u2", "Juan@LNSC.ph"), "other")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("CreateAccount duplicate error = %v, want ErrEmailTaken", err)
	}
}

func TestAuthenticateMatchesExactPassword(t *testing.T) {
	s := newTestStore(storage.NewMemoryStore())
	ctx := context.Background()

	if err := s.CreateAccount(ctx, testUser("u1", "juan@lnsc.ph"), "secret"); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}

	user, err := s.Authenticate("JUAN@lnsc.ph", "secret")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("ID = %q, want u1", user.ID)
	}

	if _, err := s.Authenticate("juan@lnsc.ph", "SECRET"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Authenticate wrong-case password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestCurrentSessionLifecycle(t *testing.T) {
	s := newTestStore(storage.NewMemoryStore())
	ctx := context.Background()

	if _, err := s.Current(); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("Current without session error = %v, want ErrNotAuthenticated", err)
	}

	if err := s.CreateAccount(ctx, testUser("u1", "juan@lnsc.ph"), "secret"); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	s.SetCurrent(ctx, "u1")

	user, err := s.Current()
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("Current ID = %q, want u1", user.ID)
	}

	s.ClearCurrent(ctx)
	if _, err := s.Current(); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("Current after clear error = %v, want ErrNotAuthenticated", err)
	}
}

func TestOrdersForUserSortsNewestFirst(t *testing.T) {
	s := newTestStore(storage.NewMemoryStore())
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	s.InsertOrder(ctx, &domain.Order{ID: "o1", UserID: "u1", OrderDate: base})
	s.InsertOrder(ctx, &domain.Order{ID: "o2", UserID: "u1", OrderDate: base.Add(48 * time.Hour)})
	s.InsertOrder(ctx, &domain.Order{ID: "o3", UserID: "u2", OrderDate: base.Add(24 * time.Hour)})

	orders := s.OrdersForUser("u1")
	if len(orders) != 2 {
		t.Fatalf("order count = %d, want 2", len(orders))
	}
	if orders[0].ID != "o2" || orders[1].ID != "o1" {
		t.Errorf("order = [%s %s], want [o2 o1]", orders[0].ID, orders[1].ID)
	}

	if _, err := s.OrderForUser("u1", "o3"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("OrderForUser foreign order error = %v, want ErrOrderNotFound", err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	backing := storage.NewMemoryStore()
	ctx := context.Background()

	first := newTestStore(backing)
	if err := first.CreateAccount(ctx, testUser("u1", "juan@lnsc.ph"), "secret"); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	first.SetCurrent(ctx, "u1")
	first.InsertOrder(ctx, &domain.Order{ID: "o1", UserID: "u1", OrderDate: time.Now().UTC()})

	second := newTestStore(backing)

	user, err := second.Current()
	if err != nil {
		t.Fatalf("Current after restore error: %v", err)
	}
	if user.Email != "juan@lnsc.ph" {
		t.Errorf("restored email = %q, want juan@lnsc.ph", user.Email)
	}
	if _, err := second.Authenticate("juan@lnsc.ph", "secret"); err != nil {
		t.Errorf("Authenticate after restore error: %v", err)
	}
	if got := len(second.OrdersForUser("u1")); got != 1 {
		t.Errorf("restored order count = %d, want 1", got)
	}
}
