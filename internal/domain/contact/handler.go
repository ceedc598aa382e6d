package contact

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/pkg/response"
	"github.com/capturesangli/studio-api/internal/pkg/validator"
)

// Handler handles contact HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates contact handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Submit handles POST /contacts (public)
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	submission, err := h.svc.Submit(r.Context(), &req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create contact submission")
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(submission))
}
