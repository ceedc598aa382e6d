package admin

import (
	"github.com/capturesangli/studio-api/internal/domain/booking"
	"github.com/capturesangli/studio-api/internal/domain/contact"
)

// SectionError flags a failed dashboard section
type SectionError struct {
	Message string `json:"message"`
}

// DashboardResponse for GET /admin/submissions
type DashboardResponse struct {
	Contacts    []*contact.SubmissionResponse `json:"contacts"`
	Bookings    []*booking.BookingResponse    `json:"bookings"`
	ContactsErr *SectionError                 `json:"contacts_error,omitempty"`
	BookingsErr *SectionError                 `json:"bookings_error,omitempty"`
}

// ToDashboardResponse converts a loaded dashboard to its API shape
func ToDashboardResponse(d *Dashboard) *DashboardResponse {
	resp := &DashboardResponse{
		Contacts: make([]*contact.SubmissionResponse, len(d.Contacts)),
		Bookings: make([]*booking.BookingResponse, len(d.Bookings)),
	}

	for i, c := range d.Contacts {
		resp.Contacts[i] = contact.ToResponse(c)
	}
	for i, b := range d.Bookings {
		resp.Bookings[i] = booking.ToResponse(b)
	}

	// Raw store errors stay in the logs; the operator sees a generic message
	if d.ContactsErr != nil {
		resp.ContactsErr = &SectionError{Message: "Failed to load contact submissions"}
	}
	if d.BookingsErr != nil {
		resp.BookingsErr = &SectionError{Message: "Failed to load booking requests"}
	}

	return resp
}

// BookingListResponse for booking-only admin reads
type BookingListResponse struct {
	Bookings []*booking.BookingResponse `json:"bookings"`
}

// ToBookingListResponse converts booking entities to the admin list shape
func ToBookingListResponse(items []*booking.Request) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]*booking.BookingResponse, len(items)),
	}
	for i, b := range items {
		resp.Bookings[i] = booking.ToResponse(b)
	}
	return resp
}
