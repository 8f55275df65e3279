// Package chat implements the simulated support chat with agent
// assignment, canned replies, and unread tracking.
package chat

import (
	"context"

	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/messaging"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/chat/handlers"
	"github.com/lnsc/storefront/internal/modules/chat/service"
	"github.com/lnsc/storefront/internal/modules/chat/store"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

type Module struct {
	snapshot storage.Store
	service  *service.ChatService
	handler  *handlers.ChatHandler
	store    *store.ChatStore
	logger   logger.Logger
}

// NewModule creates a chat module over the given snapshot store.
func NewModule(snapshot storage.Store) *Module {
	return &Module{
		snapshot: snapshot,
	}
}

// Name returns the module name for registration.
func (m *Module) Name() string {
	return "chat"
}

// Init initializes the module with application dependencies.
func (m *Module) Init(deps *app.ModuleDeps) error {
	m.logger = deps.Logger.WithFields(map[string]any{
		"module": "chat",
	})

	m.logger.Info().Msg("Initializing chat module")

	m.store = store.NewChatStore(context.Background(), m.snapshot, m.logger)
	m.service = service.NewService(m.store, service.DefaultConfig(), m.logger)
	m.handler = handlers.NewChatHandler(m.service, m.logger)

	m.logger.Info().Msg("Chat module initialized successfully")

	return nil
}

// RegisterRoutes registers HTTP endpoints for chat operations.
func (m *Module) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	m.handler.RegisterRoutes(hr, r)
}

// DeclareMessaging declares messaging infrastructure for this module.
func (m *Module) DeclareMessaging(_ *messaging.Declarations) {
	// No messaging needed for the chat module.
}

// RegisterJobs registers scheduled jobs for this module.
func (m *Module) RegisterJobs(_ app.JobRegistrar) error {
	return nil
}

// Shutdown cancels every pending reply timer.
func (m *Module) Shutdown() error {
	if m.service != nil {
		m.service.Shutdown()
	}
	return nil
}
