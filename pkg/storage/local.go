package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes uploaded files under a base directory on the local
// filesystem. Files are named with a random uuid so uploads never collide.
type LocalStore struct {
	baseDir string
}

// NewLocalStore ensures the base directory exists and returns a store rooted there.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Save persists data under prefix with a generated uuid filename and the
// provided extension, returning the path relative to the base directory.
func (s *LocalStore) Save(ctx context.Context, prefix, ext string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	rel := filepath.Join(prefix, uuid.NewString()+ext)
	full := filepath.Join(s.baseDir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Dir(rel), err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", rel, err)
	}
	return rel, nil
}

// Remove deletes a previously stored file; a missing file is not an error.
func (s *LocalStore) Remove(ctx context.Context, rel string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.baseDir, rel)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", rel, err)
	}
	return nil
}

// BaseDir returns the directory uploads are rooted at.
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}
