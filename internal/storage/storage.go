package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/obratrack/project-tracking-api/internal/config"
)

// Store is the object store the report workflow writes to. Uploaded objects
// are publicly readable through PublicURL; no signing or expiry is applied.
type Store interface {
	// Upload writes the object under key. With upsert set, an existing
	// object at the same key is overwritten.
	Upload(ctx context.Context, key string, r io.Reader, contentType string, upsert bool) error

	// PublicURL returns the public address of the object at key. It does
	// not check that the object exists.
	PublicURL(key string) string
}

// FromConfig builds the configured store implementation.
func FromConfig(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case "", "local":
		return NewLocalStore(cfg.StorageDir, cfg.StorageBaseURL)
	case "s3":
		return NewS3Store(ctx, cfg.S3Bucket, cfg.S3Region)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
