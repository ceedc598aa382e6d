package admin

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/domain/booking"
	"github.com/capturesangli/studio-api/internal/domain/contact"
)

// ContactStore is the slice of the contact service the dashboard needs.
type ContactStore interface {
	ListSubmissions(ctx context.Context) ([]*contact.Submission, error)
}

// BookingStore is the slice of the booking service the dashboard needs.
type BookingStore interface {
	ListBookings(ctx context.Context) ([]*booking.Request, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

// Service aggregates both submission tables for the operator view.
type Service struct {
	contacts ContactStore
	bookings BookingStore
}

// NewService creates admin service
func NewService(contacts ContactStore, bookings BookingStore) *Service {
	return &Service{
		contacts: contacts,
		bookings: bookings,
	}
}

// Dashboard holds both submission lists. A failed read leaves its section
// empty and sets the matching error flag; the other section still loads.
type Dashboard struct {
	Contacts    []*contact.Submission
	Bookings    []*booking.Request
	ContactsErr error
	BookingsErr error
}

// LoadAll fetches contacts and bookings concurrently, newest first each,
// and joins both reads before returning. Partial failure is tolerated.
func (s *Service) LoadAll(ctx context.Context) *Dashboard {
	dash := &Dashboard{}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		contacts, err := s.contacts.ListSubmissions(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load contact submissions")
			dash.ContactsErr = err
			return
		}
		dash.Contacts = contacts
	}()

	go func() {
		defer wg.Done()
		bookings, err := s.bookings.ListBookings(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load booking requests")
			dash.BookingsErr = err
			return
		}
		dash.Bookings = bookings
	}()

	wg.Wait()
	return dash
}

// SetBookingStatus transitions one booking, then re-fetches the bookings
// list so the caller sees the store's authoritative state rather than a
// local patch. On update failure nothing is re-fetched.
func (s *Service) SetBookingStatus(ctx context.Context, id uuid.UUID, status booking.Status) ([]*booking.Request, error) {
	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.bookings.ListBookings(ctx)
}
