package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without an active session
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/auth/login", h.login)
		r.Post("/auth/mfa", h.mfa)
	})

	// routes requiring an active provider session
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/transactions", h.listTransactions)
		r.Patch("/transactions/{id}", h.updateTransaction)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
