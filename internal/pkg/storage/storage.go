package storage

import (
	"context"
	"io"
)

// Storage defines the minimal interface for gallery image storage backends.
type Storage interface {
	// Put stores an object at the given key.
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete removes an object by key. Returns nil if the object doesn't exist.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for an object key.
	GetURL(key string) string
}
