package http

import (
	"net/http"

	"github.com/kazijehangir/monarch-bridge/internal/utils"
	"github.com/kazijehangir/monarch-bridge/models"
)

const (
	msgInvalidJSON      = "Invalid JSON was passed"
	msgNotAuthenticated = "not authenticated"
)

// writeError sends the standard error envelope {"detail": "..."} with the
// given status code.
func writeError(w http.ResponseWriter, detail string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
