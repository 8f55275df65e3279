// Package profile implements accounts, sessions, order history, and the
// checkout flow spanning the cart and email modules.
package profile

import (
	"context"

	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/messaging"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/cart"
	"github.com/lnsc/storefront/internal/modules/email"
	"github.com/lnsc/storefront/internal/modules/profile/handlers"
	"github.com/lnsc/storefront/internal/modules/profile/service"
	"github.com/lnsc/storefront/internal/modules/profile/store"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

type Module struct {
	cartModule  *cart.Module
	emailModule *email.Module
	snapshot    storage.Store
	service     *service.ProfileService
	handler     *handlers.ProfileHandler
	store       *store.ProfileStore
	logger      logger.Logger
}

// NewModule creates a profile module. Checkout reads the cart module and
// notifies through the email module, so both must be initialized first.
func NewModule(cartModule *cart.Module, emailModule *email.Module, snapshot storage.Store) *Module {
	return &Module{
		cartModule:  cartModule,
		emailModule: emailModule,
		snapshot:    snapshot,
	}
}

// Name returns the module name for registration.
func (m *Module) Name() string {
	return "profile"
}

// Init initializes the module with application dependencies.
func (m *Module) Init(deps *app.ModuleDeps) error {
	m.logger = deps.Logger.WithFields(map[string]any{
		"module": "profile",
	})

	m.logger.Info().Msg("Initializing profile module")

	m.store = store.NewProfileStore(context.Background(), m.snapshot, m.logger)
	m.service = service.NewService(m.store, m.cartModule.Service(), m.emailModule.Service(), m.logger)
	m.handler = handlers.NewProfileHandler(m.service, m.logger)

	m.logger.Info().Msg("Profile module initialized successfully")

	return nil
}

// RegisterRoutes registers HTTP endpoints for auth, profile, and orders.
func (m *Module) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	m.handler.RegisterRoutes(hr, r)
}

// DeclareMessaging declares messaging infrastructure for this module.
func (m *Module) DeclareMessaging(_ *messaging.Declarations) {
	// No messaging needed for the profile module.
}

// RegisterJobs registers scheduled jobs for this module.
func (m *Module) RegisterJobs(_ app.JobRegistrar) error {
	return nil
}

// Shutdown gracefully shuts down the module.
func (m *Module) Shutdown() error {
	return nil
}
