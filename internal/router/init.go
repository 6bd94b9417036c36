package router

import (
	"github.com/cinespot/cinespot-api/internal/application"
	"github.com/cinespot/cinespot-api/internal/container"
	pginfra "github.com/cinespot/cinespot-api/internal/infrastructure/postgres"
	handlers "github.com/cinespot/cinespot-api/internal/interface/http"
	"github.com/cinespot/cinespot-api/internal/router/modules"
	"github.com/cinespot/cinespot-api/pkg/mailer"
)

// InitModules builds every feature module from the container singletons
// and registers it with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	collectionRepo := pginfra.NewCollectionRepository(container.GetPGPool())

	notifier := mailer.NewQueueNotifier(container.GetRabbitPub())

	authSvc := application.NewAuthService(
		userRepo,
		container.GetJWT(),
		notifier,
		logger,
		cfg.VerifyOTPTTL,
		cfg.ResetOTPTTL,
	)
	userSvc := application.NewUserService(userRepo, container.GetGCS(), cfg.GCSBucket, logger)
	collectionSvc := application.NewCollectionService(collectionRepo, container.GetES(), cfg.ESCollectionsIndex, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	collectionHandler := handlers.NewCollectionHandler(collectionSvc, logger)
	catalogHandler := handlers.NewCatalogHandler(cfg.TMDBBaseURL, cfg.TMDBAPIKey, logger)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewCollectionModule(collectionHandler, container.GetJWT()))
	r.Add(modules.NewCatalogModule(catalogHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
