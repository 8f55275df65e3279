package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/gaborage/go-bricks/database"
	dbtest "github.com/gaborage/go-bricks/database/testing"
	dbtypes "github.com/gaborage/go-bricks/database/types"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Get(ctx, "cart:user-1"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() on empty store error = %v, want %v", err, ErrKeyNotFound)
	}

	if err := store.Set(ctx, "cart:user-1", []byte(`[{"productId":"p1"}]`)); err != nil {
		t.Fatalf("Set() unexpected error = %v", err)
	}

	value, err := store.Get(ctx, "cart:user-1")
	if err != nil {
		t.Fatalf("Get() unexpected error = %v", err)
	}
	if string(value) != `[{"productId":"p1"}]` {
		t.Errorf("Get() value = %s, want stored snapshot", value)
	}

	// Mutating the returned slice must not affect the stored copy.
	value[0] = 'X'
	again, err := store.Get(ctx, "cart:user-1")
	if err != nil {
		t.Fatalf("Get() unexpected error = %v", err)
	}
	if string(again) != `[{"productId":"p1"}]` {
		t.Errorf("Get() after caller mutation = %s, want original snapshot", again)
	}

	if err := store.Delete(ctx, "cart:user-1"); err != nil {
		t.Fatalf("Delete() unexpected error = %v", err)
	}
	if _, err := store.Get(ctx, "cart:user-1"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() after delete error = %v, want %v", err, ErrKeyNotFound)
	}

	// Deleting a missing key is a no-op.
	if err := store.Delete(ctx, "cart:user-1"); err != nil {
		t.Errorf("Delete() on missing key error = %v, want nil", err)
	}
}

func TestSQLStoreGet(t *testing.T) {
	ctx := context.Background()

	t.Run("successful get", func(t *testing.T) {
		db := dbtest.NewTestDB(dbtypes.PostgreSQL)
		db.ExpectQuery("SELECT").
			WillReturnRows(
				dbtest.NewRowSet("value").
					AddRow([]byte(`{"items":[]}`)),
			)

		getDB := func(ctx context.Context) (database.Interface, error) {
			return db, nil
		}

		store := NewSQLStore(getDB)
		value, err := store.Get(ctx, "wishlist:user-1")

		if err != nil {
			t.Fatalf("Get() unexpected error = %v", err)
		}
		if string(value) != `{"items":[]}` {
			t.Errorf("Get() value = %s, want stored snapshot", value)
		}
		dbtest.AssertQueryExecuted(t, db, "SELECT")
	})

	t.Run("key not found", func(t *testing.T) {
		db := dbtest.NewTestDB(dbtypes.PostgreSQL)
		db.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

		getDB := func(ctx context.Context) (database.Interface, error) {
			return db, nil
		}

		store := NewSQLStore(getDB)
		_, err := store.Get(ctx, "missing")

		if !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("Get() error = %v, want %v", err, ErrKeyNotFound)
		}
	})
}

func TestSQLStoreSet(t *testing.T) {
	ctx := context.Background()

	t.Run("successful upsert", func(t *testing.T) {
		db := dbtest.NewTestDB(dbtypes.PostgreSQL)
		db.ExpectExec("INSERT INTO state_snapshots").WillReturnRowsAffected(1)

		getDB := func(ctx context.Context) (database.Interface, error) {
			return db, nil
		}

		store := NewSQLStore(getDB)
		err := store.Set(ctx, "cart:user-1", []byte(`[]`))

		if err != nil {
			t.Errorf("Set() unexpected error = %v", err)
		}
		dbtest.AssertExecExecuted(t, db, "INSERT")
	})

	t.Run("database error", func(t *testing.T) {
		db := dbtest.NewTestDB(dbtypes.PostgreSQL)
		db.ExpectExec("INSERT INTO state_snapshots").WillReturnError(errors.New("database error"))

		getDB := func(ctx context.Context) (database.Interface, error) {
			return db, nil
		}

		store := NewSQLStore(getDB)
		if err := store.Set(ctx, "cart:user-1", []byte(`[]`)); err == nil {
			t.Error("Set() expected error, got nil")
		}
	})
}

func TestSQLStoreDelete(t *testing.T) {
	ctx := context.Background()

	db := dbtest.NewTestDB(dbtypes.PostgreSQL)
	db.ExpectExec("DELETE FROM state_snapshots").WillReturnRowsAffected(1)

	getDB := func(ctx context.Context) (database.Interface, error) {
		return db, nil
	}

	store := NewSQLStore(getDB)
	if err := store.Delete(ctx, "cart:user-1"); err != nil {
		t.Errorf("Delete() unexpected error = %v", err)
	}
	dbtest.AssertExecExecuted(t, db, "DELETE")
}
