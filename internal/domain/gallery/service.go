package gallery

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/capturesangli/studio-api/internal/pkg/imaging"
	"github.com/capturesangli/studio-api/internal/pkg/storage"
)

// Service handles gallery business logic
type Service struct {
	repo      Repository
	store     storage.Storage
	processor *imaging.Processor
}

// NewService creates gallery service
func NewService(repo Repository, store storage.Storage, processor *imaging.Processor) *Service {
	return &Service{
		repo:      repo,
		store:     store,
		processor: processor,
	}
}

// ListImages returns gallery images, optionally filtered by category
func (s *Service) ListImages(ctx context.Context, category *Category) ([]*Image, error) {
	if category != nil && !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	return s.repo.List(ctx, category)
}

// Services returns the fixed service catalog
func (s *Service) Services() []ServiceInfo {
	return ServiceCatalog
}

// Upload processes an uploaded image, stores the web and thumbnail variants,
// and publishes the gallery row.
func (s *Service) Upload(ctx context.Context, title string, category Category, filename string, reader io.Reader, position int) (*Image, error) {
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if !imaging.ValidateType(filename) {
		return nil, ErrInvalidImage
	}

	processed, err := s.processor.Process(reader)
	if err != nil {
		return nil, ErrInvalidImage
	}

	id := uuid.New()
	webKey, thumbKey := imaging.GenerateKeys(id.String(), filename)

	if err := s.store.Put(ctx, webKey, bytes.NewReader(processed.Web), processed.ContentType); err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		// Best effort: the web variant is already up, remove it again
		if delErr := s.store.Delete(ctx, webKey); delErr != nil {
			log.Error().Err(delErr).Str("key", webKey).Msg("Failed to clean up orphaned gallery object")
		}
		return nil, err
	}

	image := &Image{
		ID:        id,
		Title:     title,
		Category:  category,
		URL:       s.store.GetURL(webKey),
		ThumbURL:  s.store.GetURL(thumbKey),
		Position:  position,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, image); err != nil {
		return nil, err
	}

	return image, nil
}

// Delete unpublishes a gallery image and removes its stored objects
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if image == nil {
		return ErrImageNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Stored objects are cleaned up best effort after the row is gone
	webKey, thumbKey := imaging.GenerateKeys(id.String(), image.URL)
	if err := s.store.Delete(ctx, webKey); err != nil {
		log.Error().Err(err).Str("key", webKey).Msg("Failed to delete gallery object")
	}
	if err := s.store.Delete(ctx, thumbKey); err != nil {
		log.Error().Err(err).Str("key", thumbKey).Msg("Failed to delete gallery thumbnail")
	}

	return nil
}
