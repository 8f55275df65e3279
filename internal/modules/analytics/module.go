// Package analytics tracks product page views in the named "analytics"
// database, accessed via deps.DBByName instead of the default connection.
package analytics

import (
	"context"

	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/database"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/messaging"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/analytics/handlers"
	"github.com/lnsc/storefront/internal/modules/analytics/repository"
	"github.com/lnsc/storefront/internal/modules/analytics/service"
	"github.com/lnsc/storefront/internal/modules/catalog"
)

// analyticsDBName matches the key under "databases:" in the config file.
const analyticsDBName = "analytics"

type Module struct {
	catalogModule *catalog.Module
	service       *service.AnalyticsService
	handler       *handlers.AnalyticsHandler
	repo          repository.Repository
	logger        logger.Logger
}

// NewModule creates an analytics module. Views are validated against the
// catalog, so the catalog module must be initialized first.
func NewModule(catalogModule *catalog.Module) *Module {
	return &Module{
		catalogModule: catalogModule,
	}
}

// Name returns the module name for registration.
func (m *Module) Name() string {
	return "analytics"
}

// Init initializes the module with application dependencies.
func (m *Module) Init(deps *app.ModuleDeps) error {
	m.logger = deps.Logger.WithFields(map[string]any{
		"module": "analytics",
	})

	m.logger.Info().Msg("Initializing analytics module")

	getAnalyticsDB := func(ctx context.Context) (database.Interface, error) {
		return deps.DBByName(ctx, analyticsDBName)
	}

	m.repo = repository.NewViewRepository(getAnalyticsDB)
	m.service = service.NewService(m.repo, m.catalogModule.Service(), m.logger)
	m.handler = handlers.NewAnalyticsHandler(m.service, m.logger)

	m.logger.Info().
		Str("database", analyticsDBName).
		Msg("Analytics module initialized successfully")

	return nil
}

// RegisterRoutes registers HTTP endpoints for view tracking.
func (m *Module) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	m.handler.RegisterRoutes(hr, r)
}

// DeclareMessaging declares messaging infrastructure for this module.
func (m *Module) DeclareMessaging(_ *messaging.Declarations) {
	// No messaging needed for the analytics module.
}

// RegisterJobs registers scheduled jobs for this module.
func (m *Module) RegisterJobs(_ app.JobRegistrar) error {
	return nil
}

// Shutdown gracefully shuts down the module.
func (m *Module) Shutdown() error {
	return nil
}
