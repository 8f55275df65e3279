// Package wishlist implements the saved-products manager with idempotent
// add semantics and move-to-cart integration.
package wishlist

import (
	"context"

	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/messaging"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/cart"
	"github.com/lnsc/storefront/internal/modules/catalog"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
	"github.com/lnsc/storefront/internal/modules/wishlist/handlers"
	"github.com/lnsc/storefront/internal/modules/wishlist/service"
	"github.com/lnsc/storefront/internal/modules/wishlist/store"
)

type Module struct {
	catalog  *catalog.Module
	cart     *cart.Module
	snapshot storage.Store
	service  *service.WishlistService
	handler  *handlers.WishlistHandler
	store    *store.WishlistStore
	logger   logger.Logger
}

// NewModule creates a wishlist module. The catalog and cart modules must be
// registered before this one.
func NewModule(catalogModule *catalog.Module, cartModule *cart.Module, snapshot storage.Store) *Module {
	return &Module{
		catalog:  catalogModule,
		cart:     cartModule,
		snapshot: snapshot,
	}
}

// Name returns the module name for registration.
func (m *Module) Name() string {
	return "wishlist"
}

// Init initializes the module with application dependencies.
func (m *Module) Init(deps *app.ModuleDeps) error {
	m.logger = deps.Logger.WithFields(map[string]any{
		"module": "wishlist",
	})

	m.logger.Info().Msg("Initializing wishlist module")

	m.store = store.NewWishlistStore(context.Background(), m.snapshot, m.logger)
	m.service = service.NewService(m.store, m.catalog.Service(), m.cart.Service(), m.logger)
	m.handler = handlers.NewWishlistHandler(m.service, m.logger)

	m.logger.Info().Msg("Wishlist module initialized successfully")

	return nil
}

// RegisterRoutes registers HTTP endpoints for wishlist operations.
func (m *Module) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	m.handler.RegisterRoutes(hr, r)
}

// DeclareMessaging declares messaging infrastructure for this module.
func (m *Module) DeclareMessaging(_ *messaging.Declarations) {
	// No messaging needed for the wishlist module.
}

// RegisterJobs registers scheduled jobs for this module.
func (m *Module) RegisterJobs(_ app.JobRegistrar) error {
	return nil
}

// Shutdown performs cleanup when the module is stopped.
func (m *Module) Shutdown() error {
	return nil
}
