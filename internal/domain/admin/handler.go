package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/domain/booking"
	"github.com/capturesangli/studio-api/internal/domain/contact"
	"github.com/capturesangli/studio-api/internal/pkg/response"
	"github.com/capturesangli/studio-api/internal/pkg/validator"
)

// Handler handles admin dashboard HTTP requests. The admin surface is
// assumed to sit behind an externally managed access boundary.
type Handler struct {
	svc *Service
}

// NewHandler creates admin handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submissions handles GET /admin/submissions. Both sections load
// concurrently; a failed section comes back empty with an error flag.
func (h *Handler) Submissions(w http.ResponseWriter, r *http.Request) {
	dash := h.svc.LoadAll(r.Context())
	response.OK(w, ToDashboardResponse(dash))
}

// ListBookings handles GET /admin/bookings
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.svc.bookings.ListBookings(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load booking requests")
		response.InternalError(w)
		return
	}

	response.OK(w, ToBookingListResponse(bookings))
}

// ListContacts handles GET /admin/contacts
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.svc.contacts.ListSubmissions(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load contact submissions")
		response.InternalError(w)
		return
	}

	items := make([]*contact.SubmissionResponse, len(contacts))
	for i, c := range contacts {
		items[i] = contact.ToResponse(c)
	}

	response.OK(w, map[string]interface{}{"contacts": items})
}

// UpdateBookingStatus handles PATCH /admin/bookings/{id}/status. On success
// the response carries the freshly re-fetched bookings list.
func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req booking.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	bookings, err := h.svc.SetBookingStatus(r.Context(), id, booking.Status(req.Status))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			response.NotFound(w, "Booking request not found")
			return
		}
		log.Error().Err(err).Str("booking_id", id.String()).Msg("Failed to update booking status")
		response.InternalError(w)
		return
	}

	response.OK(w, ToBookingListResponse(bookings))
}
