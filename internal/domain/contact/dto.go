package contact

import (
	"time"

	"github.com/google/uuid"
)

// CreateSubmissionRequest for the public contact form
type CreateSubmissionRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=2,max=5000"`
}

// SubmissionResponse for API responses
type SubmissionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(s *Submission) *SubmissionResponse {
	return &SubmissionResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Message:   s.Message,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

// NotificationData is the payload shape sent to the notification sink
type NotificationData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
