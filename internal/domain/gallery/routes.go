package gallery

import (
	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns public gallery and services routes
func (h *Handler) PublicRoutes() chi.Router {
	r := chi.NewRouter()

	r.Get("/gallery", h.List)
	r.Get("/services", h.Services)

	return r
}

// AdminRoutes returns admin gallery routes
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Upload)
	r.Delete("/{id}", h.Delete)

	return r
}
