package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rentmy/rentmy-api/internal/application"
)

// Handler is the HTTP adapter entrypoint for the rental API use-cases.
// Keeping only the application dependency here preserves clean adapter boundaries.
type Handler struct {
	service *application.Service
}

// NewHandler constructs an HTTP handler bound to the application service.
func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

// NewRouter registers routes and the middleware stack. Item routes sit behind
// bearer-token auth; auth and probe routes are public.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/", handler.swaggerUI)
	r.Get("/swagger/openapi.yaml", handler.swaggerSpec)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.register)
		r.Post("/login", handler.login)
	})

	r.Route("/items", func(r chi.Router) {
		r.Use(handler.authMiddleware)
		r.Get("/", handler.listItems)
		r.Post("/", handler.createItem)
		r.Get("/{id}", handler.getItem)
		r.Put("/{id}", handler.updateItem)
		r.Delete("/{id}", handler.deleteItem)
	})

	return r
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ok")
}

func (h *Handler) readyz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ready")
}
