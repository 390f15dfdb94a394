package service

import (
	"context"
	"errors"
	"io"
)

// ErrPhotoNotFound is returned by PhotoStorage.Open when the key does not exist.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoStorage stores listing photos in an object bucket.
type PhotoStorage interface {
	// Upload writes r under key and returns the object's public URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Delete removes an object; a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// Open returns a reader over an object and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}
