package booking

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for booking dates: a plain calendar date,
// independent of time zone display.
const DateLayout = "2006-01-02"

// CreateBookingRequest for the public booking form
type CreateBookingRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=7,max=20"`
	Service     string `json:"service" validate:"required,service"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	TimeSlot    string `json:"time_slot" validate:"required,time_slot"`
}

// UpdateStatusRequest for operator status transitions
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,booking_status"`
}

// BookingResponse for API responses
type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Service      string    `json:"service"`
	ServiceLabel string    `json:"service_label"`
	BookingDate  string    `json:"booking_date"`
	TimeSlot     string    `json:"time_slot"`
	Status       string    `json:"status"`
	StatusBadge  string    `json:"status_badge"`
	CreatedAt    string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(b *Request) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		Service:      string(b.Service),
		ServiceLabel: ServiceLabel(b.Service),
		BookingDate:  b.BookingDate.Format(DateLayout),
		TimeSlot:     b.TimeSlot,
		Status:       string(b.Status),
		StatusBadge:  StatusBadge(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

// NotificationData is the payload shape sent to the notification sink
type NotificationData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Service     string `json:"service"`
	BookingDate string `json:"booking_date"`
	TimeSlot    string `json:"time_slot"`
}
