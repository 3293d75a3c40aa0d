package main

import (
	"context"
	"fmt"

	"github.com/kazijehangir/monarch-bridge/internal/config"
	"github.com/kazijehangir/monarch-bridge/internal/handler"
	"github.com/kazijehangir/monarch-bridge/internal/logger"
	"github.com/kazijehangir/monarch-bridge/internal/monarch"
	"github.com/kazijehangir/monarch-bridge/internal/server"
	"github.com/kazijehangir/monarch-bridge/internal/service"
	"github.com/kazijehangir/monarch-bridge/internal/store"
	"github.com/kazijehangir/monarch-bridge/internal/workers"
	"github.com/kazijehangir/monarch-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("monarch-bridge")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("session_file", cfg.Session.File).Msg("received configs")

	client := monarch.NewClient(monarch.Config{
		BaseURL: cfg.Monarch.BaseURL,
		Timeout: cfg.Monarch.RequestTimeout,
	})

	sessionStore := store.NewFileSessionStore(cfg.Session.File)

	services := service.NewServices(client, sessionStore, log)

	ctx := context.Background()
	establishSession(ctx, cfg.Monarch, services.SessionService, log)

	keepAlive := service.NewKeepAliveJob(services.SessionService, log)
	backgroundWorkers := workers.NewWorkers(
		workers.NewKeepAliveWorker(keepAlive, cfg.Workers.KeepAliveInterval()),
	)
	backgroundWorkers.Start(ctx)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	backgroundWorkers.Stop()

	if services.SessionService.Authenticated() {
		services.SessionService.Persist(ctx)
	}
}

// establishSession tries to bring up a provider session at startup: first
// from the persisted blob, then via automated login when credentials are
// configured. Failures are logged; the bridge still serves /health and the
// auth endpoints without a session.
func establishSession(ctx context.Context, cfg config.Monarch, session service.SessionService, log *logger.Logger) {
	if session.Restore(ctx) {
		return
	}

	if cfg.Email == "" || cfg.Password == "" {
		log.Info().Msg("no stored session and no credentials configured, waiting for login via API")
		return
	}

	result, err := session.Login(ctx, models.Credentials{
		Email:     cfg.Email,
		Password:  cfg.Password,
		MFASecret: cfg.MFASecret,
	})
	if err != nil {
		log.Error().Err(err).Msg("automated login failed")
		return
	}

	switch result.Status {
	case models.LoginAuthenticated:
		log.Info().Msg("automated login succeeded")
	case models.LoginMFARequired:
		log.Warn().Msg("automated login requires a second factor, complete it via POST /auth/mfa")
	case models.LoginRejected:
		log.Error().Str("reason", result.Reason).Msg("automated login rejected")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
