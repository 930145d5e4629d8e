// Package http provides the headless HTTP shell: the same navigation routes
// and board flows as the terminal UI, served as JSON.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-client/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	boardHandler *handlers.BoardHandler,
	navHandler *handlers.NavHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Navigation shell.
	r.Get("/", boardHandler.View)
	r.Get("/login", navHandler.Login)
	r.Get("/register", navHandler.Register)

	// Board flows.
	r.Post("/todos", boardHandler.CreateTodo)
	r.Get("/todos/{id}", boardHandler.GetTodo)
	r.Put("/todos/{id}", boardHandler.EditTodo)
	r.Delete("/todos/{id}", boardHandler.DeleteTodo)

	return r
}
