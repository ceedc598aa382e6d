package notifyfn

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/pkg/email"
	"github.com/capturesangli/studio-api/internal/pkg/response"
)

// Request is the notification request body
type Request struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ContactData carries a contact submission payload
type ContactData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// BookingData carries a booking request payload
type BookingData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Service     string `json:"service"`
	BookingDate string `json:"booking_date"`
	TimeSlot    string `json:"time_slot"`
}

// Handler is the notification function: one endpoint that turns a
// submission payload into an email to the studio.
type Handler struct {
	sender      email.Sender
	renderer    *email.Renderer
	studioEmail string
}

// NewHandler creates the notification handler
func NewHandler(sender email.Sender, renderer *email.Renderer, studioEmail string) *Handler {
	return &Handler{
		sender:      sender,
		renderer:    renderer,
		studioEmail: studioEmail,
	}
}

// ServeHTTP dispatches on method: OPTIONS preflight and POST notifications.
// Cross-origin requests are permitted from any origin.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is supported")
		return
	}

	h.handleSend(w, r)
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusInternalServerError, "SEND_FAILED", "Invalid JSON body")
		return
	}

	var (
		subject string
		html    string
		err     error
	)

	switch req.Type {
	case "contact":
		var data ContactData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			response.Error(w, http.StatusInternalServerError, "SEND_FAILED", "Invalid contact payload")
			return
		}
		subject = "New Contact Form Submission"
		html, err = h.renderer.Render("contact_submission", data)

	case "booking":
		var data BookingData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			response.Error(w, http.StatusInternalServerError, "SEND_FAILED", "Invalid booking payload")
			return
		}
		subject = "New Photography Session Booking"
		html, err = h.renderer.Render("booking_request", data)

	default:
		log.Error().Str("type", req.Type).Msg("Unknown notification type")
		response.Error(w, http.StatusInternalServerError, "SEND_FAILED", "Invalid notification type")
		return
	}

	if err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("Failed to render notification email")
		response.Error(w, http.StatusInternalServerError, "SEND_FAILED", "Failed to render email")
		return
	}

	msg := &email.EmailMessage{
		To:          h.studioEmail,
		Subject:     subject,
		HTMLContent: html,
	}

	if err := h.sender.Send(r.Context(), msg); err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("Failed to send notification email")
		response.Error(w, http.StatusInternalServerError, "SEND_FAILED", "Failed to send email")
		return
	}

	response.OK(w, map[string]string{"type": req.Type, "to": h.studioEmail})
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}
