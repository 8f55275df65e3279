// Package main is the entry point for the LNSC storefront API.
package main

import (
	"context"
	"os"
	"time"

	"github.com/gaborage/go-bricks/app"
	"github.com/gaborage/go-bricks/logger"
	"github.com/lnsc/storefront/internal/modules/analytics"
	"github.com/lnsc/storefront/internal/modules/cart"
	"github.com/lnsc/storefront/internal/modules/catalog"
	"github.com/lnsc/storefront/internal/modules/chat"
	"github.com/lnsc/storefront/internal/modules/comparison"
	"github.com/lnsc/storefront/internal/modules/email"
	"github.com/lnsc/storefront/internal/modules/profile"
	"github.com/lnsc/storefront/internal/modules/reviews"
	"github.com/lnsc/storefront/internal/modules/search"
	"github.com/lnsc/storefront/internal/modules/shared/smtpcreds"
	"github.com/lnsc/storefront/internal/modules/shared/storage"
	"github.com/lnsc/storefront/internal/modules/wishlist"
)

func main() {
	// Create application instance with environment-based configuration
	application, log, err := app.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	modulesToLoad := getModulesToLoad(log)

	if err := registerModules(application, modulesToLoad, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to register modules")
	}

	if err := application.Run(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
}

type ModuleConfig struct {
	Name    string
	Enabled bool
	Module  app.Module
}

// getModulesToLoad wires the module graph. Order matters: every module
// that consumes another module's service comes after it.
func getModulesToLoad(log logger.Logger) []ModuleConfig {
	snapshot := storage.NewMemoryStore()
	creds := smtpCredentialSource(log)

	catalogModule := catalog.NewModule()
	cartModule := cart.NewModule(catalogModule, snapshot)
	wishlistModule := wishlist.NewModule(catalogModule, cartModule, snapshot)
	comparisonModule := comparison.NewModule(catalogModule, snapshot)
	reviewsModule := reviews.NewModule(catalogModule, snapshot)
	searchModule := search.NewModule(catalogModule, snapshot)
	emailModule := email.NewModule(snapshot, creds)
	chatModule := chat.NewModule(snapshot)
	profileModule := profile.NewModule(cartModule, emailModule, snapshot)
	analyticsModule := analytics.NewModule(catalogModule)

	return []ModuleConfig{
		{Name: "catalog", Enabled: true, Module: catalogModule},
		{Name: "cart", Enabled: true, Module: cartModule},
		{Name: "wishlist", Enabled: true, Module: wishlistModule},
		{Name: "comparison", Enabled: true, Module: comparisonModule},
		{Name: "reviews", Enabled: true, Module: reviewsModule},
		{Name: "search", Enabled: true, Module: searchModule},
		{Name: "email", Enabled: true, Module: emailModule},
		{Name: "chat", Enabled: true, Module: chatModule},
		{Name: "profile", Enabled: true, Module: profileModule},
		{Name: "analytics", Enabled: true, Module: analyticsModule},
	}
}

// smtpCredentialSource picks Secrets Manager when a secret name is
// configured, otherwise the static development default.
func smtpCredentialSource(log logger.Logger) smtpcreds.Source {
	secretName := os.Getenv("SMTP_SECRET_NAME")
	if secretName == "" {
		log.Info().Msg("Using static SMTP credentials")
		return smtpcreds.NewStaticSource(nil)
	}

	cfg := smtpcreds.AWSConfig{
		SecretName:  secretName,
		EndpointURL: os.Getenv("AWS_ENDPOINT_URL"),
	}
	if ttl, err := time.ParseDuration(os.Getenv("SMTP_SECRET_CACHE_TTL")); err == nil {
		cfg.CacheTTL = ttl
	}

	source, err := smtpcreds.NewAWSSource(context.Background(), log, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize SMTP credential source")
	}
	return source
}

func registerModules(appInstance *app.App, modules []ModuleConfig, log logger.Logger) error {
	for _, mod := range modules {
		if !mod.Enabled {
			log.Info().Str("Module %s is disabled, skipping registration", mod.Name)
			continue
		}

		log.Info().Str("Registering module: %s", mod.Name)
		if err := appInstance.RegisterModule(mod.Module); err != nil {
			return err
		}
		log.Info().Str("Module %s registered successfully", mod.Name)
	}

	return nil
}
