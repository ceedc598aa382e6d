package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines booking request data access
type Repository interface {
	Create(ctx context.Context, booking *Request) error
	GetByID(ctx context.Context, id uuid.UUID) (*Request, error)
	List(ctx context.Context) ([]*Request, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking request repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Request) error {
	query := `
		INSERT INTO booking_requests (id, name, email, phone, service, booking_date, time_slot, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.Name, booking.Email, booking.Phone,
		booking.Service, booking.BookingDate.Format(DateLayout), booking.TimeSlot,
		booking.Status, booking.CreatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Request, error) {
	query := `SELECT * FROM booking_requests WHERE id = $1`

	var booking Request
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) List(ctx context.Context) ([]*Request, error) {
	query := `SELECT * FROM booking_requests ORDER BY created_at DESC`

	var bookings []*Request
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE booking_requests SET status = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}
