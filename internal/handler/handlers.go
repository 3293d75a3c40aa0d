package handler

import (
	"github.com/kazijehangir/monarch-bridge/internal/config"
	"github.com/kazijehangir/monarch-bridge/internal/handler/http"
	"github.com/kazijehangir/monarch-bridge/internal/logger"
	"github.com/kazijehangir/monarch-bridge/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
