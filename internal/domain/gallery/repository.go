package gallery

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines gallery image data access
type Repository interface {
	Create(ctx context.Context, image *Image) error
	GetByID(ctx context.Context, id uuid.UUID) (*Image, error)
	List(ctx context.Context, category *Category) ([]*Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates gallery repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, image *Image) error {
	query := `
		INSERT INTO gallery_images (id, title, category, url, thumb_url, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		image.ID, image.Title, image.Category, image.URL, image.ThumbURL,
		image.Position, image.CreatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Image, error) {
	query := `SELECT * FROM gallery_images WHERE id = $1`

	var image Image
	err := r.db.GetContext(ctx, &image, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *repository) List(ctx context.Context, category *Category) ([]*Image, error) {
	var images []*Image
	var err error

	if category != nil {
		query := `SELECT * FROM gallery_images WHERE category = $1 ORDER BY position, created_at DESC`
		err = r.db.SelectContext(ctx, &images, query, *category)
	} else {
		query := `SELECT * FROM gallery_images ORDER BY position, created_at DESC`
		err = r.db.SelectContext(ctx, &images, query)
	}

	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM gallery_images WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
