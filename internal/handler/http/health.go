package http

import (
	"net/http"

	"github.com/kazijehangir/monarch-bridge/internal/utils"
	"github.com/kazijehangir/monarch-bridge/models"
)

// health reports liveness and the current authentication state. It never
// performs network calls, so it stays fast and dependable for probes.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthResponse{
		Status:   "ok",
		LoggedIn: h.services.SessionService.Authenticated(),
	}, http.StatusOK)
}
