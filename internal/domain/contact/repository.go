package contact

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository defines contact submission data access
type Repository interface {
	Create(ctx context.Context, submission *Submission) error
	List(ctx context.Context) ([]*Submission, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates contact submission repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, submission *Submission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		submission.ID, submission.Name, submission.Email, submission.Message, submission.CreatedAt,
	)
	return err
}

func (r *repository) List(ctx context.Context) ([]*Submission, error) {
	query := `SELECT * FROM contact_submissions ORDER BY created_at DESC`

	var submissions []*Submission
	if err := r.db.SelectContext(ctx, &submissions, query); err != nil {
		return nil, err
	}
	return submissions, nil
}
