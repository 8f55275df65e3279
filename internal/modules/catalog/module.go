// Package catalog serves the read-only product catalog every other
// storefront module draws its snapshots from.
package catalog

import (
	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/logger"
	"github.com/gaborage/go-bricks/messaging"
	"github.com/gaborage/go-bricks/server"
	"github.com/lnsc/storefront/internal/modules/catalog/domain"
	"github.com/lnsc/storefront/internal/modules/catalog/handlers"
	"github.com/lnsc/storefront/internal/modules/catalog/repository"
	"github.com/lnsc/storefront/internal/modules/catalog/service"
)

type Module struct {
	service *service.CatalogService
	handler *handlers.CatalogHandler
	repo    *repository.CatalogRepository
	logger  logger.Logger
}

// NewModule creates a new catalog module instance.
func NewModule() *Module {
	return &Module{}
}

// Name returns the module name for registration.
func (m *Module) Name() string {
	return "catalog"
}

// Init initializes the module with application dependencies.
func (m *Module) Init(deps *app.ModuleDeps) error {
	m.logger = deps.Logger.WithFields(map[string]any{
		"module": "catalog",
	})

	m.logger.Info().Msg("Initializing catalog module")

	m.repo = repository.NewCatalogRepository(domain.SeedProducts())
	m.service = service.NewService(m.repo, m.logger)
	m.handler = handlers.NewCatalogHandler(m.service, m.logger)

	m.logger.Info().Int("products", len(m.repo.List())).Msg("Catalog module initialized")

	return nil
}

// Service exposes the catalog service for modules that snapshot products.
func (m *Module) Service() *service.CatalogService {
	return m.service
}

// RegisterRoutes registers HTTP endpoints for catalog operations.
func (m *Module) RegisterRoutes(hr *server.HandlerRegistry, r server.RouteRegistrar) {
	m.handler.RegisterRoutes(hr, r)
}

// DeclareMessaging declares messaging infrastructure for this module.
func (m *Module) DeclareMessaging(_ *messaging.Declarations) {
	// No messaging needed for the catalog module.
}

// RegisterJobs registers scheduled jobs for this module.
func (m *Module) RegisterJobs(_ app.JobRegistrar) error {
	return nil
}

// Shutdown performs cleanup when the module is stopped.
func (m *Module) Shutdown() error {
	return nil
}
