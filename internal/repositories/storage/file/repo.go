package filerepo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"pdfstore/internal/models"
	"pdfstore/internal/repositories/storage"
)

const pkg = "fileRepo/"

type repository struct {
	root string
}

var _ storage.FileRepository = (*repository)(nil)

func NewRepository(root string) *repository {
	return &repository{root: root}
}

// SaveFile writes the content under the storage root and returns the stored
// path with forward slashes regardless of the host separator.
func (r *repository) SaveFile(name string, reader io.Reader) (string, error) {
	op := pkg + "SaveFile"

	if err := os.MkdirAll(r.root, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	path := filepath.Join(r.root, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return filepath.ToSlash(path), nil
}

func (r *repository) LoadFile(path string) (io.ReadCloser, error) {
	op := pkg + "LoadFile"

	f, err := os.Open(filepath.FromSlash(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrPdfNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func (r *repository) DeleteFile(path string) error {
	op := pkg + "DeleteFile"

	if err := os.Remove(filepath.FromSlash(path)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", op, models.ErrPdfNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
