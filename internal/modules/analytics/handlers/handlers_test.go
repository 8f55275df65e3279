package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaborage/go-bricks/config"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/server"
	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lnsc/storefront/internal/modules/analytics/domain"
	"github.com/lnsc/storefront/internal/modules/analytics/service"
	catalogdomain "github.com/lnsc/storefront/internal/modules/catalog/domain"
)

type mockService struct {
	recordViewFunc func(ctx context.Context, productID, sessionID, source, referrer string) error
	statsFunc      func(ctx context.Context, productID string) (*domain.ViewStats, error)
	trendingFunc   func(ctx context.Context, limit int) ([]*service.TrendingProduct, error)
}

func (m *mockService) RecordView(ctx context.Context, productID, sessionID, source, referrer string) error {
	if m.recordViewFunc != nil {
		return m.recordViewFunc(ctx, productID, sessionID, source, referrer)
	}
	return errors.New("not implemented")
}

func (m *mockService) Stats(ctx context.Context, productID string) (*domain.ViewStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, productID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockService) Trending(ctx context.Context, limit int) ([]*service.TrendingProduct, error) {
	if m.trendingFunc != nil {
		return m.trendingFunc(ctx, limit)
	}
	return nil, errors.New("not implemented")
}

func newHandlerContext() server.HandlerContext {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return server.HandlerContext{
		Echo: e.NewContext(req, rec),
		Config: &config.Config{
			App: config.AppConfig{
				Name:    "test",
				Version: "1.0.0",
				Env:     "test",
				Debug:   true,
			},
		},
	}
}

func TestRecordView(t *testing.T) {
	tests := []struct {
		name        string
		serviceFunc func(ctx context.Context, productID, sessionID, source, referrer string) error
		wantStatus  int
	}{
		{
			name: "successful record",
			serviceFunc: func(_ context.Context, _, _, _, _ string) error {
				return nil
			},
		},
		{
			name: "unknown product",
			serviceFunc: func(_ context.Context, _, _, _, _ string) error {
				return catalogdomain.ErrProductNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "database error",
			serviceFunc: func(_ context.Context, _, _, _, _ string) error {
				return errors.New("connection refused")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAnalyticsHandler(&mockService{recordViewFunc: tt.serviceFunc}, logger.New("info", false))

			_, apiErr := handler.RecordView(RecordViewRequest{ProductID: "1"}, newHandlerContext())

			if tt.wantStatus == 0 {
				assert.Nil(t, apiErr)
				return
			}
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.HTTPStatus())
		})
	}
}

func TestGetStats(t *testing.T) {
	handler := NewAnalyticsHandler(&mockService{
		statsFunc: func(_ context.Context, productID string) (*domain.ViewStats, error) {
			return &domain.ViewStats{ProductID: productID, TotalViews: 7, ViewsToday: 2}, nil
		},
	}, logger.New("info", false))

	stats, apiErr := handler.GetStats(GetStatsRequest{ProductID: "1"}, newHandlerContext())

	require.Nil(t, apiErr)
	assert.Equal(t, "1", stats.ProductID)
	assert.Equal(t, int64(7), stats.TotalViews)
}

func TestGetTrending(t *testing.T) {
	handler := NewAnalyticsHandler(&mockService{
		trendingFunc: func(_ context.Context, _ int) ([]*service.TrendingProduct, error) {
			return []*service.TrendingProduct{
				{Product: &catalogdomain.Product{ID: "1", Name: "Gaming Beast Pro"}, TotalViews: 42},
			}, nil
		},
	}, logger.New("info", false))

	resp, apiErr := handler.GetTrending(TrendingRequest{Limit: 5}, newHandlerContext())

	require.Nil(t, apiErr)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Gaming Beast Pro", resp.Products[0].Product.Name)
}
