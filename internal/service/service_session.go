package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kazijehangir/monarch-bridge/internal/logger"
	"github.com/kazijehangir/monarch-bridge/internal/monarch"
	"github.com/kazijehangir/monarch-bridge/internal/store"
	"github.com/kazijehangir/monarch-bridge/models"
)

type sessionService struct {
	client monarch.Client
	store  store.SessionStore

	logger *logger.Logger
}

// NewSessionService constructs the process-wide session owner.
func NewSessionService(client monarch.Client, sessionStore store.SessionStore, logger *logger.Logger) SessionService {
	return &sessionService{client: client, store: sessionStore, logger: logger}
}

func (s *sessionService) Restore(ctx context.Context) bool {
	blob, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			s.logger.Info().Msg("no persisted session found")
		} else {
			s.logger.Error().Err(err).Msg("failed to load persisted session")
		}
		return false
	}

	if err = s.client.ImportSession(blob); err != nil {
		s.logger.Error().Err(err).Msg("failed to import persisted session")
		return false
	}

	s.logger.Info().Msg("session restored from disk")
	return true
}

func (s *sessionService) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	err := s.client.Login(ctx, creds)
	switch {
	case err == nil:
		s.logger.Info().Str("email", creds.Email).Msg("logged in successfully")
		s.Persist(ctx)
		return models.LoginResult{Status: models.LoginAuthenticated}, nil

	case errors.Is(err, monarch.ErrMFARequired):
		s.logger.Info().Str("email", creds.Email).Msg("login requires a second factor")
		return models.LoginResult{Status: models.LoginMFARequired}, nil

	case errors.Is(err, monarch.ErrLoginFailed):
		s.logger.Error().Err(err).Str("email", creds.Email).Msg("login rejected by provider")
		return models.LoginResult{Status: models.LoginRejected, Reason: rejectionReason(err)}, nil

	default:
		return models.LoginResult{}, fmt.Errorf("login: %w", err)
	}
}

func (s *sessionService) CompleteMFA(ctx context.Context, creds models.Credentials, code string) error {
	err := s.client.MultiFactorAuthenticate(ctx, creds, code)
	if err != nil {
		if errors.Is(err, monarch.ErrLoginFailed) || errors.Is(err, monarch.ErrMFARequired) {
			s.logger.Error().Err(err).Str("email", creds.Email).Msg("second factor rejected by provider")
			return fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
		}
		return fmt.Errorf("complete mfa: %w", err)
	}

	if !s.client.Authenticated() {
		return ErrNotAuthenticated
	}

	s.logger.Info().Str("email", creds.Email).Msg("second factor accepted")
	s.Persist(ctx)
	return nil
}

func (s *sessionService) Authenticated() bool {
	return s.client.Authenticated()
}

func (s *sessionService) Persist(ctx context.Context) {
	blob, err := s.client.ExportSession()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to export session")
		return
	}

	if err = s.store.Save(ctx, blob); err != nil {
		s.logger.Error().Err(err).Msg("failed to save session")
		return
	}

	s.logger.Info().Msg("session saved")
}

func (s *sessionService) KeepAlive(ctx context.Context) error {
	if !s.client.Authenticated() {
		return ErrNotAuthenticated
	}

	if _, err := s.client.GetAccounts(ctx); err != nil {
		return fmt.Errorf("keep-alive ping: %w", err)
	}
	return nil
}

// rejectionReason strips the sentinel prefix so that only the
// provider-supplied message travels to the caller.
func rejectionReason(err error) string {
	reason := strings.TrimPrefix(err.Error(), monarch.ErrLoginFailed.Error())
	return strings.TrimPrefix(reason, ": ")
}
