package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PublicRoutes returns public contact routes
func (h *Handler) PublicRoutes(throttle func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.With(throttle).Post("/", h.Submit)

	return r
}
