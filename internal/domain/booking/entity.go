package booking

import (
	"time"

	"github.com/google/uuid"
)

// Status of a booking request. Transitions are operator-triggered only and
// unconstrained: any status may move to any other.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether s is one of the three known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ServiceType is the booked photography service.
type ServiceType string

const (
	ServiceWedding    ServiceType = "wedding"
	ServiceEvent      ServiceType = "event"
	ServicePortrait   ServiceType = "portrait"
	ServiceCommercial ServiceType = "commercial"
)

// TimeSlots are the four bookable ranges. No overlap checking is done:
// multiple requests may target the same date and slot.
var TimeSlots = []string{
	"9:00 AM - 11:00 AM",
	"11:30 AM - 1:30 PM",
	"2:00 PM - 4:00 PM",
	"4:30 PM - 6:30 PM",
}

// Request is one booking request. status is the only mutable field.
type Request struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Email       string      `db:"email" json:"email"`
	Phone       string      `db:"phone" json:"phone"`
	Service     ServiceType `db:"service" json:"service"`
	BookingDate time.Time   `db:"booking_date" json:"booking_date"`
	TimeSlot    string      `db:"time_slot" json:"time_slot"`
	Status      Status      `db:"status" json:"status"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

// ServiceLabel maps a service code to its display label.
func ServiceLabel(s ServiceType) string {
	switch s {
	case ServiceWedding:
		return "Wedding Photography"
	case ServiceEvent:
		return "Event Coverage"
	case ServicePortrait:
		return "Portrait Session"
	case ServiceCommercial:
		return "Commercial Photography"
	default:
		return string(s)
	}
}

// StatusBadge maps a status to its display badge class.
func StatusBadge(s Status) string {
	switch s {
	case StatusConfirmed:
		return "bg-green-100 text-green-800"
	case StatusCancelled:
		return "bg-red-100 text-red-800"
	default:
		return "bg-yellow-100 text-yellow-800"
	}
}
