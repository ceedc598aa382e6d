package contact

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one contact form submission. Rows are append-only:
// created once, never updated or deleted by this system.
type Submission struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
