package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kazijehangir/monarch-bridge/internal/logger"
	"github.com/kazijehangir/monarch-bridge/internal/service"
	"github.com/kazijehangir/monarch-bridge/internal/utils"
	"github.com/kazijehangir/monarch-bridge/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.SessionService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during login")
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	switch result.Status {
	case models.LoginAuthenticated:
		_, _ = utils.WriteJSON(w, models.StatusResponse{Status: string(models.LoginAuthenticated)}, http.StatusOK)
	case models.LoginMFARequired:
		_, _ = utils.WriteJSON(w, models.StatusResponse{Status: string(models.LoginMFARequired)}, http.StatusOK)
	case models.LoginRejected:
		log.Warn().Str("reason", result.Reason).Msg("login rejected")
		writeError(w, result.Reason, http.StatusUnauthorized)
	default:
		log.Error().Str("status", string(result.Status)).Msg("unknown login status")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) mfa(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.MFARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	creds := models.Credentials{Email: req.Email, Password: req.Password}
	if err := h.services.SessionService.CompleteMFA(ctx, creds, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			log.Err(err).Msg("second factor did not produce a session")
			writeError(w, err.Error(), http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during mfa")
			writeError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: string(models.LoginAuthenticated)}, http.StatusOK)
}
