// Package email implements the email notification simulator: preference
// gating, probabilistic delivery, scheduling, retries, and campaigns.
package email

import (
	"context"
	"time"

	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/messaging"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/email/handlers"
	"github.com/lnsc/storefront/internal/modules/email/job"
	"github.com/lnsc/storefront/internal/modules/email/service"
	"github.com/lnsc/storefront/internal/modules/email/store"
	"github.com/lnsc/storefront/internal/modules/shared/smtpcreds"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
)

const dispatchInterval = 30 * time.Second

type Module struct {
	snapshot storage.Store
	creds    smtpcreds.Source
	service  *service.EmailService
	handler  *handlers.EmailHandler
	store    *store.EmailStore
	logger   logger.Logger
}

// NewModule creates an email module over the given snapshot store and SMTP
// credential source.
func NewModule(snapshot storage.Store, creds smtpcreds.Source) *Module {
	return &Module{
		snapshot: snapshot,
		creds:    creds,
	}
}

// Name returns the module name for registration.
func (m *Module) Name() string {
	return "email"
}

// Init initializes the module with application dependencies.
func (m *Module) Init(deps *app.ModuleDeps) error {
	m.logger = deps.Logger.WithFields(map[string]any{
		"module": "email",
	})

	m.logger.Info().Msg("Initializing email module")

	m.store = store.NewEmailStore(context.Background(), m.snapshot, m.logger)
	m.service = service.NewService(m.store, m.creds, service.DefaultConfig(), m.logger)
	m.handler = handlers.NewEmailHandler(m.service, m.logger)

	m.logger.Info().Msg("Email module initialized successfully")

	return nil
}

// Service exposes the email service to dependent modules.
func (m *Module) Service() *service.EmailService {
	return m.service
}

// RegisterRoutes registers HTTP endpoints for email operations.
func (m *Module) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	m.handler.RegisterRoutes(hr, r)
}

// DeclareMessaging declares messaging infrastructure for this module.
func (m *Module) DeclareMessaging(_ *messaging.Declarations) {
	// No messaging needed for the email module.
}

// RegisterJobs registers the scheduled-dispatch job.
func (m *Module) RegisterJobs(scheduler app.JobRegistrar) error {
	return scheduler.FixedRate("email-dispatch", &job.DispatchJob{Service: m.service}, dispatchInterval)
}

// Shutdown performs cleanup when the module is stopped.
func (m *Module) Shutdown() error {
	return nil
}
