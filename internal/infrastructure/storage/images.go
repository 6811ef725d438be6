// Package storage keeps uploaded profile images on the local disk and hands
// back opaque file references for the user record.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type ImageStore struct {
	dir string
}

// NewImageStore ensures the upload directory exists and returns a store
// rooted at it.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save writes the content under a fresh uuid-based name, keeping the original
// extension, and returns the stored file name as the reference.
func (s *ImageStore) Save(_ context.Context, fileName string, content io.Reader) (string, error) {
	ref := uuid.NewString() + filepath.Ext(fileName)

	f, err := os.Create(filepath.Join(s.dir, ref))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}
	return ref, nil
}

// Remove deletes a stored image. Removing a reference that no longer exists
// is not an error.
func (s *ImageStore) Remove(_ context.Context, ref string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}
