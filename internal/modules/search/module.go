// Package search implements catalog text search, structured filtering,
// suggestions, and the recent-search history.
package search

import (
	"context"

	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/messaging"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/catalog"
	"github.com/lnsc/storefront/internal/modules/search/handlers"
	"github.com/lnsc/storefront/internal/modules/search/service"
	"github.com/lnsc/storefront/internal/modules/search/store"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

type Module struct {
	catalog  *catalog.Module
	snapshot storage.Store
	service  *service.SearchService
	handler  *handlers.SearchHandler
	recent   *store.RecentStore
	logger   logger.Logger
}

// NewModule creates a search module. The catalog module must be registered
// before this one.
func NewModule(catalogModule *catalog.Module, snapshot storage.Store) *Module {
	return &Module{
		catalog:  catalogModule,
		snapshot: snapshot,
	}
}

// Name returns the module name for registration.
func (m *Module) Name() string {
	return "search"
}

// Init initializes the module with application dependencies.
func (m *Module) Init(deps *app.ModuleDeps) error {
	m.logger = deps.Logger.WithFields(map[string]any{
		"module": "search",
	})

	m.logger.Info().Msg("Initializing search module")

	m.recent = store.NewRecentStore(context.Background(), m.snapshot, m.logger)
	m.service = service.NewService(m.catalog.Service(), m.recent, m.logger)
	m.handler = handlers.NewSearchHandler(m.service, m.logger)

	m.logger.Info().Msg("Search module initialized successfully")

	return nil
}

// RegisterRoutes registers HTTP endpoints for search operations.
func (m *Module) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	m.handler.RegisterRoutes(hr, r)
}

// DeclareMessaging declares messaging infrastructure for this module.
func (m *Module) DeclareMessaging(_ *messaging.Declarations) {
	// No messaging needed for the search module.
}

// RegisterJobs registers scheduled jobs for this module.
func (m *Module) RegisterJobs(_ app.JobRegistrar) error {
	return nil
}

// Shutdown performs cleanup when the module is stopped.
func (m *Module) Shutdown() error {
	return nil
}
