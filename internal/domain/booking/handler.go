package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/pkg/response"
	"github.com/capturesangli/studio-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates booking handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /bookings (public)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	booking, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrDateInPast) {
			response.ValidationError(w, map[string]string{
				"booking_date": "Booking date must be today or later",
			})
			return
		}
		log.Error().Err(err).Msg("Failed to create booking request")
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(booking))
}

// TimeSlotList handles GET /bookings/time-slots (public)
func (h *Handler) TimeSlotList(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{"time_slots": TimeSlots})
}
