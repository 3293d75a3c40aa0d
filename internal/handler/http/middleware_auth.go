package http

import (
	"net/http"

	"github.com/kazijehangir/monarch-bridge/internal/logger"
)

// requireSession is an HTTP middleware that rejects requests while no
// provider session is held.
//
// It consults the session service's in-memory state only: no network call is
// made, and rejected requests never reach the provider. Requests are refused
// with HTTP 401 Unauthorized and the standard error envelope.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.SessionService.Authenticated() {
			log := logger.FromRequest(r)
			log.Warn().Str("uri", r.RequestURI).Msg("request refused, no active session")
			writeError(w, msgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
