package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kazijehangir/monarch-bridge/internal/logger"
	"github.com/kazijehangir/monarch-bridge/internal/utils"
	"github.com/kazijehangir/monarch-bridge/models"
)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Err(err).Str("days", raw).Msg("unparsable days parameter")
			writeError(w, "days must be an integer", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	payload, err := h.services.TransactionService.List(ctx, days)
	if err != nil {
		log.Err(err).Msg("failed to fetch transactions")
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	transactionID := chi.URLParam(r, "id")

	var update models.TransactionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	applied, err := h.services.TransactionService.Update(ctx, transactionID, update)
	if err != nil {
		log.Err(err).Str("transaction_id", transactionID).Msg("failed to update transaction")
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if !applied {
		_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "no_change"}, http.StatusOK)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "success"}, http.StatusOK)
}
