package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/pkg/notify"
)

// Notifier posts submission payloads to the notification sink.
type Notifier interface {
	Send(ctx context.Context, typ notify.Type, data interface{}) error
}

// Service handles booking request business logic
type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

// NewService creates booking service. notifier may be nil (notifications disabled).
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// Submit validates and persists a new booking request. The booking date must
// be today or later in the studio's local day; a past date fails before any
// store call. New requests always start as pending.
func (s *Service) Submit(ctx context.Context, req *CreateBookingRequest) (*Request, error) {
	date, err := time.ParseInLocation(DateLayout, req.BookingDate, time.Local)
	if err != nil {
		return nil, ErrDateInPast
	}

	today := s.today()
	if date.Before(today) {
		return nil, ErrDateInPast
	}

	booking := &Request{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Service:     ServiceType(req.Service),
		BookingDate: date,
		TimeSlot:    req.TimeSlot,
		Status:      StatusPending,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyCreated(booking)

	return booking, nil
}

// ListBookings returns all booking requests, newest first
func (s *Service) ListBookings(ctx context.Context) ([]*Request, error) {
	return s.repo.List(ctx)
}

// UpdateStatus transitions a booking to the given status. Any status may
// move to any other; only the three named values are accepted.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

// today returns the current local day at midnight
func (s *Service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

func (s *Service) notifyCreated(booking *Request) {
	if s.notifier == nil {
		return
	}

	data := NotificationData{
		Name:        booking.Name,
		Email:       booking.Email,
		Phone:       booking.Phone,
		Service:     string(booking.Service),
		BookingDate: booking.BookingDate.Format(DateLayout),
		TimeSlot:    booking.TimeSlot,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := s.notifier.Send(ctx, notify.TypeBooking, data); err != nil {
			log.Error().Err(err).
				Str("booking_id", booking.ID.String()).
				Msg("Failed to send booking notification")
		}
	}()
}
