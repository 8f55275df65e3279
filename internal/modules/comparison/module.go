// Package comparison implements the bounded side-by-side product
// comparison with derived best/worst highlighting.
package comparison

import (
	"context"

	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/messaging"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/catalog"
	"github.com/lnsc/storefront/internal/modules/comparison/handlers"
	"github.com/lnsc/storefront/internal/modules/comparison/service"
	"github.com/lnsc/storefront/internal/modules/comparison/store"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

type Module struct {
	catalog  *catalog.Module
	snapshot storage.Store
	service  *service.ComparisonService
	handler  *handlers.ComparisonHandler
	store    *store.ComparisonStore
	logger   logger.Logger
}

// NewModule creates a comparison module. The catalog module must be
// registered before this one.
func NewModule(catalogModule *catalog.Module, snapshot storage.Store) *Module {
	return &Module{
		catalog:  catalogModule,
		snapshot: snapshot,
	}
}

// Name returns the module name for registration.
func (m *Module) Name() string {
	return "comparison"
}

// Init initializes the module with application dependencies.
func (m *Module) Init(deps *app.ModuleDeps) error {
	m.logger = deps.Logger.WithFields(map[string]any{
		"module": "comparison",
	})

	m.logger.Info().Msg("Initializing comparison module")

	m.store = store.NewComparisonStore(context.Background(), m.snapshot, m.logger)
	m.service = service.NewService(m.store, m.catalog.Service(), m.logger)
	m.handler = handlers.NewComparisonHandler(m.service, m.logger)

	m.logger.Info().Msg("Comparison module initialized successfully")

	return nil
}

// RegisterRoutes registers HTTP endpoints for comparison operations.
func (m *Module) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	m.handler.RegisterRoutes(hr, r)
}

// DeclareMessaging declares messaging infrastructure for this module.
func (m *Module) DeclareMessaging(_ *messaging.Declarations) {
	// No messaging needed for the comparison module.
}

// RegisterJobs registers scheduled jobs for this module.
func (m *Module) RegisterJobs(_ app.JobRegistrar) error {
	return nil
}

// Shutdown performs cleanup when the module is stopped.
func (m *Module) Shutdown() error {
	return nil
}
