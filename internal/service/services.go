package service

import (
	"github.com/kazijehangir/monarch-bridge/internal/logger"
	"github.com/kazijehangir/monarch-bridge/internal/monarch"
	"github.com/kazijehangir/monarch-bridge/internal/store"
)

type Services struct {
	SessionService     SessionService
	TransactionService TransactionService
}

func NewServices(client monarch.Client, sessionStore store.SessionStore, logger *logger.Logger) *Services {
	return &Services{
		SessionService:     NewSessionService(client, sessionStore, logger),
		TransactionService: NewTransactionService(client, logger),
	}
}
