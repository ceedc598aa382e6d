package admin

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns admin dashboard routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/submissions", h.Submissions)
	r.Get("/bookings", h.ListBookings)
	r.Get("/contacts", h.ListContacts)
	r.Patch("/bookings/{id}/status", h.UpdateBookingStatus)

	return r
}
