// Package repository provides data access for product view tracking. View
// events live in the named "analytics" database, separate from the default
// application database.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gaborage/go-bricks/database"
	"github.com/google/uuid"
	"github.com/lnsc/storefront/internal/modules/analytics/domain"
)

const dbUnavailableErrMsg = "failed to get analytics database connection: %w"

// Repository defines the interface for view tracking data access.
type Repository interface {
	Insert(ctx context.Context, view *domain.View) error
	Stats(ctx context.Context, productID string, now time.Time) (*domain.ViewStats, error)
	TopViewed(ctx context.Context, limit int) ([]*domain.ViewCount, error)
}

// ViewRepository implements view tracking over the named database.
type ViewRepository struct {
	getDB func(context.Context) (database.Interface, error)
}

// NewViewRepository creates a view repository. getDB should wrap
// deps.DBByName for the analytics database.
func NewViewRepository(getDB func(context.Context) (database.Interface, error)) *ViewRepository {
	return &ViewRepository{
		getDB: getDB,
	}
}

// Insert records one view event.
func (r *ViewRepository) Insert(ctx context.Context, view *domain.View) error {
	db, err := r.getDB(ctx)
	if err != nil {
		return fmt.Errorf(dbUnavailableErrMsg, err)
	}

	view.ID = uuid.NewString()
	entity := view.Entity()

	qb := database.NewQueryBuilder(database.PostgreSQL)
	query, args, err := qb.Insert(entity.TableName()).
		Columns("id", "product_id", "viewed_at", "session_id", "source", "referrer").
		Values(entity.ID, entity.ProductID, entity.ViewedAt, entity.SessionID, entity.Source, entity.Referrer).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert product view: %w", err)
	}
	return nil
}

// Stats aggregates view counts for one product relative to now.
func (r *ViewRepository) Stats(ctx context.Context, productID string, now time.Time) (*domain.ViewStats, error) {
	db, err := r.getDB(ctx)
	if err != nil {
		return nil, fmt.Errorf(dbUnavailableErrMsg, err)
	}

	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))

	// Raw SQL for the aggregate FILTER clauses.
	query := `
		SELECT
			COUNT(*) as total_views,
			COUNT(*) FILTER (WHERE viewed_at >= $2) as views_today,
			COUNT(*) FILTER (WHERE viewed_at >= $3) as views_this_week,
			MAX(viewed_at) as last_viewed_at
		FROM product_views
		WHERE product_id = $1
	`

	stats := domain.ViewStats{ProductID: productID}
	row := db.QueryRow(ctx, query, productID, startOfDay, startOfWeek)
	if err := row.Scan(&stats.TotalViews, &stats.ViewsToday, &stats.ViewsThisWeek, &stats.LastViewedAt); err != nil {
		return nil, fmt.Errorf("failed to query view stats: %w", err)
	}
	return &stats, nil
}

// TopViewed returns the most viewed products, descending.
func (r *ViewRepository) TopViewed(ctx context.Context, limit int) ([]*domain.ViewCount, error) {
	db, err := r.getDB(ctx)
	if err != nil {
		return nil, fmt.Errorf(dbUnavailableErrMsg, err)
	}

	// Raw SQL for the GROUP BY aggregate.
	query := `
		SELECT product_id, COUNT(*) as total_views
		FROM product_views
		GROUP BY product_id
		ORDER BY total_views DESC
		LIMIT $1
	`

	rows, err := db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top viewed products: %w", err)
	}
	defer rows.Close()

	var counts []*domain.ViewCount
	for rows.Next() {
		var count domain.ViewCount
		if err := rows.Scan(&count.ProductID, &count.TotalViews); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		counts = append(counts, &count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return counts, nil
}
