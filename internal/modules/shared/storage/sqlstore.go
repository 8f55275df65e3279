package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gaborage/go-bricks/database"
)

const (
	dbUnavailableErrMsg = "failed to get database connection: %w"

	snapshotsTable = "state_snapshots"
)

// SQLStore persists state snapshots in a key-value table, for deployments
// where snapshots must survive process restarts.
type SQLStore struct {
	getDB func(context.Context) (database.Interface, error)
}

// NewSQLStore creates a snapshot store backed by the application database.
func NewSQLStore(getDB func(context.Context) (database.Interface, error)) *SQLStore {
	return &SQLStore{
		getDB: getDB,
	}
}

// Get returns the snapshot stored under key, or ErrKeyNotFound.
func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	db, err := s.getDB(ctx)
	if err != nil {
		return nil, fmt.Errorf(dbUnavailableErrMsg, err)
	}

	qb := database.NewQueryBuilder(database.PostgreSQL)
	query, args, err := qb.Select("value").
		From(snapshotsTable).
		Where(qb.Filter().Eq("key", key)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var value []byte
	row := db.QueryRow(ctx, query, args...)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to scan snapshot: %w", err)
	}

	return value, nil
}

// Set stores value under key, replacing any previous snapshot.
// Raw SQL is used here for the ON CONFLICT upsert clause.
func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	db, err := s.getDB(ctx)
	if err != nil {
		return fmt.Errorf(dbUnavailableErrMsg, err)
	}

	query := `
		INSERT INTO state_snapshots (key, value, updated_date)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_date = NOW()
	`

	if _, err := db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	return nil
}

// Delete removes the snapshot under key. Deleting a missing key is a no-op.
func (s *SQLStore) Delete(ctx context.Context, key string) error {
	db, err := s.getDB(ctx)
	if err != nil {
		return fmt.Errorf(dbUnavailableErrMsg, err)
	}

	qb := database.NewQueryBuilder(database.PostgreSQL)
	query, args, err := qb.Delete(snapshotsTable).
		Where(qb.Filter().Eq("key", key)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
