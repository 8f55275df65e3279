// Package reviews implements user product reviews with tri-state
// helpfulness voting and on-read aggregate statistics.
package reviews

import (
	"context"

	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/messaging"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/catalog"
	"github.com/lnsc/storefront/internal/modules/reviews/handlers"
	"github.com/lnsc/storefront/internal/modules/reviews/service"
	"github.com/lnsc/storefront/internal/modules/reviews/store"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

type Module struct {
	catalog  *catalog.Module
	snapshot storage.Store
	service  *service.ReviewService
	handler  *handlers.ReviewHandler
	store    *store.ReviewStore
	logger   logger.Logger
}

// NewModule creates a reviews module. The catalog module must be registered
// before this one.
func NewModule(catalogModule *catalog.Module, snapshot storage.Store) *Module {
	return &Module{
		catalog:  catalogModule,
		snapshot: snapshot,
	}
}

// Name returns the module name for registration.
func (m *Module) Name() string {
	return "reviews"
}

// Init initializes the module with application dependencies.
func (m *Module) Init(deps *app.ModuleDeps) error {
	m.logger = deps.Logger.WithFields(map[string]any{
		"module": "reviews",
	})

	m.logger.Info().Msg("Initializing reviews module")

	m.store = store.NewReviewStore(context.Background(), m.snapshot, m.logger)
	m.service = service.NewService(m.store, m.catalog.Service(), m.logger)
	m.handler = handlers.NewReviewHandler(m.service, m.logger)

	m.logger.Info().Msg("Reviews module initialized successfully")

	return nil
}

// Service exposes the review service to dependent modules.
func (m *Module) Service() *service.ReviewService {
	return m.service
}

// RegisterRoutes registers HTTP endpoints for review operations.
func (m *Module) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	m.handler.RegisterRoutes(hr, r)
}

// DeclareMessaging declares messaging infrastructure for this module.
func (m *Module) DeclareMessaging(_ *messaging.Declarations) {
	// No messaging needed for the reviews module.
}

// RegisterJobs registers scheduled jobs for this module.
func (m *Module) RegisterJobs(_ app.JobRegistrar) error {
	return nil
}

// Shutdown performs cleanup when the module is stopped.
func (m *Module) Shutdown() error {
	return nil
}
