package uploader

import (
	"context"
	"io"
)

// Uploader stores published metadata files in remote storage
type Uploader interface {
	// Upload stores content under key with the given MIME type
	Upload(ctx context.Context, key string, content io.Reader, contentType string) error

	// Exists checks if an object exists at key
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL of key
	GetURL(key string) string

	// Delete removes the object at key
	Delete(ctx context.Context, key string) error
}

// PublishOptions controls PublishDir
type PublishOptions struct {
	// Prefix is prepended to every key (e.g., "training/")
	Prefix string

	// Force uploads even when the key already exists
	Force bool

	// DryRun reports what would be uploaded without uploading
	DryRun bool
}
