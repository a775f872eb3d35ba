package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps objects on disk under a base directory. The server mounts
// the directory as a public static route, so PublicURL joins the configured
// base URL with the key.
type LocalStore struct {
	baseDir string
	baseURL string
}

func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *LocalStore) Upload(ctx context.Context, key string, r io.Reader, contentType string, upsert bool) error {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))

	if !upsert {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("object already exists at %s", key)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create object file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}

	return nil
}

func (s *LocalStore) PublicURL(key string) string {
	return s.baseURL + "/" + key
}
