// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	listHandler *handlers.ToDoListHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/lists", func(r chi.Router) {
		r.Get("/", listHandler.ListLists)
		r.Post("/", listHandler.CreateList)

		r.Route("/{list_id}", func(r chi.Router) {
			r.Get("/", listHandler.GetList)
			r.Delete("/", listHandler.DeleteList)

			r.Post("/items", listHandler.AddItem)
			r.Patch("/items/{item_id}", listHandler.SetItemDone)
			r.Delete("/items/{item_id}", listHandler.DeleteItem)
		})
	})

	return r
}
