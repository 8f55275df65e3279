// Package cart implements the shopping cart manager: snapshot lines,
// quantity merging, totals, and write-through snapshot persistence.
package cart

import (
	"context"

	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/messaging"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/cart/handlers"
	"github.com/lnsc/storefront/internal/modules/cart/service"
	"github.com/lnsc/storefront/internal/modules/cart/store"
	"github.com/lnsc/storefront/internal/modules/catalog"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

type Module struct {
	catalog  *catalog.Module
	snapshot storage.Store
	service  *service.CartService
	handler  *handlers.CartHandler
	store    *store.CartStore
	logger   logger.Logger
}

// NewModule creates a cart module. The catalog module supplies product
// snapshots; the snapshot store mirrors cart state. The catalog module
// must be registered before this one.
func NewModule(catalogModule *catalog.Module, snapshot storage.Store) *Module {
	return &Module{
		catalog:  catalogModule,
		snapshot: snapshot,
	}
}

// Name returns the module name for registration.
func (m *Module) Name() string {
	return "cart"
}

// Init initializes the module with application dependencies.
func (m *Module) Init(deps *app.ModuleDeps) error {
	m.logger = deps.Logger.WithFields(map[string]any{
		"module": "cart",
	})

	m.logger.Info().Msg("Initializing cart module")

	m.store = store.NewCartStore(context.Background(), m.snapshot, m.logger)
	m.service = service.NewService(m.store, m.catalog.Service(), m.logger)
	m.handler = handlers.NewCartHandler(m.service, m.logger)

	m.logger.Info().Msg("Cart module initialized successfully")

	return nil
}

// Service exposes the cart service for checkout.
func (m *Module) Service() *service.CartService {
	return m.service
}

// RegisterRoutes registers HTTP endpoints for cart operations.
func (m *Module) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	m.handler.RegisterRoutes(hr, r)
}

// DeclareMessaging declares messaging infrastructure for this module.
func (m *Module) DeclareMessaging(_ *messaging.Declarations) {
	// No messaging needed for the cart module.
}

// RegisterJobs registers scheduled jobs for this module.
func (m *Module) RegisterJobs(_ app.JobRegistrar) error {
	return nil
}

// Shutdown performs cleanup when the module is stopped.
func (m *Module) Shutdown() error {
	return nil
}
