package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gaborage/go-bricks/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lnsc/storefront/internal/modules/analytics/domain"
	catalogdomain "github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/catalog/repository"
	catalogservice "github.com/lnsc/storefront/internal/modules/catalog/service"
)

type mockRepository struct {
	insertFunc    func(ctx context.Context, view *domain.View) error
	statsFunc     func(ctx context.Context, productID string, now time.Time) (*domain.ViewStats, error)
	topViewedFunc func(ctx context.Context, limit int) ([]*domain.ViewCount, error)
	inserted      []*domain.View
}

func (m *mockRepository) Insert(ctx context.Context, view *domain.View) error {
	m.inserted = append(m.inserted, view)
	if m.insertFunc != nil {
		return m.insertFunc(ctx, view)
	}
	return nil
}

func (m *mockRepository) Stats(ctx context.Context, productID string, now time.Time) (*domain.ViewStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, productID, now)
	}
	return &domain.ViewStats{ProductID: productID}, nil
}

func (m *mockRepository) TopViewed(ctx context.Context, limit int) ([]*domain.ViewCount, error) {
	if m.topViewedFunc != nil {
		return m.topViewedFunc(ctx, limit)
	}
	return nil, nil
}

func newTestService(repo *mockRepository) *AnalyticsService {
	log := logger.New("info", false)
	catalog := catalogservice.NewService(repository.NewCatalogRepository(catalogdomain.SeedProducts()), log)
	return NewService(repo, catalog, log)
}

func TestRecordViewStampsTime(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo)

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	err := svc.RecordView(context.Background(), "1", "sess-1", "search", "")
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	view := repo.inserted[0]
	assert.Equal(t, "1", view.ProductID)
	assert.Equal(t, "sess-1", view.SessionID)
	assert.True(t, view.ViewedAt.Equal(at))
}

func TestRecordViewRejectsUnknownProduct(t *testing.T) {
	repo := &mockRepository{}
	svc := newTestService(repo)

	err := svc.RecordView(context.Background(), "999", "", "", "")
	require.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
	assert.Empty(t, repo.inserted)
}

func TestRecordViewPropagatesRepositoryError(t *testing.T) {
	repo := &mockRepository{
		insertFunc: func(_ context.Context, _ *domain.View) error {
			return errors.New("connection refused")
		},
	}
	svc := newTestService(repo)

	err := svc.RecordView(context.Background(), "1", "", "", "")
	require.Error(t, err)
}

func TestStatsRejectsUnknownProduct(t *testing.T) {
	svc := newTestService(&mockRepository{})

	_, err := svc.Stats(context.Background(), "999")
	require.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestTrendingResolvesCatalogProducts(t *testing.T) {
	repo := &mockRepository{
		topViewedFunc: func(_ context.Context, _ int) ([]*domain.ViewCount, error) {
			return []*domain.ViewCount{
				{ProductID: "1", TotalViews: 42},
				{ProductID: "999", TotalViews: 17},
				{ProductID: "4", TotalViews: 9},
			}, nil
		},
	}
	svc := newTestService(repo)

	trending, err := svc.Trending(context.Background(), 10)
	require.NoError(t, err)

	// The unknown product 999 is dropped.
	require.Len(t, trending, 2)
	assert.Equal(t, "Gaming Beast Pro", trending[0].Product.Name)
	assert.Equal(t, int64(42), trending[0].TotalViews)
	assert.Equal(t, "Budget Champion", trending[1].Product.Name)
}

func TestTrendingClampsLimit(t *testing.T) {
	var gotLimit int
	repo := &mockRepository{
		topViewedFunc: func(_ context.Context, limit int) ([]*domain.ViewCount, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Trending(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)

	_, err = svc.Trending(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, 100, gotLimit)
}
