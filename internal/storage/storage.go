package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the blob-store abstraction the media layer writes to.
type Storage interface {
	// Save stores a blob at the given key.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a blob by key.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a blob by key.
	Delete(ctx context.Context, path string) error

	// Exists checks whether a blob exists at the key.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a public URL for the blob.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local or s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3
	Region    string // for S3
	AccessKey string // for S3
	SecretKey string // for S3
	Endpoint  string // custom S3 endpoint
}

// NewStorage builds a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
