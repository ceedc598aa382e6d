package contact

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

// Service handles contact submission business logic
type Service struct {
	repo     Repository
	notifier Notifier
}

// NewService creates contact service. notifier may be nil (notifications disabled).
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

// Submit persists a new contact submission and fires a best-effort
// notification. The submission is committed regardless of whether the
// notification goes through.
func (s *Service) Submit(ctx context.Context, req *CreateSubmissionRequest) (*Submission, error) {
	submission := &Submission{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, err
	}

	s.notifyCreated(submission)

	return submission, nil
}

// ListSubmissions returns all contact submissions, newest first
func (s *Service) ListSubmissions(ctx context.Context) ([]*Submission, error) {
	return s.repo.List(ctx)
}

func (s *Service) notifyCreated(submission *Submission) {
	if s.notifier == nil {
		return
	}

	data := NotificationData{
		Name:    submission.Name,
		Email:   submission.Email,
		Message: submission.Message,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := s.notifier.Send(ctx, notify.TypeContact, data); err != nil {
			log.Error().Err(err).
				Str("submission_id", submission.ID.String()).
				Msg("Failed to send contact notification")
		}
	}()
}
