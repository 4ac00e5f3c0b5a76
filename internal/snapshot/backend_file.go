package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-db-journal/internal/utils"
)

// FileBackend keeps snapshots on the local filesystem at {base}/{key}.
type FileBackend struct {
	base string
}

// NewFileBackend returns a backend rooted at base. The directory is created
// on first write.
func NewFileBackend(base string) *FileBackend {
	return &FileBackend{base: base}
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.base, filepath.FromSlash(key))
}

func (b *FileBackend) Identity(key string) string {
	return b.path(key)
}

func (b *FileBackend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return data, nil
}

// Put writes data through a temporary file in the target directory and
// renames it into place, so readers never observe a partial snapshot.
func (b *FileBackend) Put(ctx context.Context, key string, data []byte) (string, error) {
	target := b.path(key)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	tmp, err := os.CreateTemp(dir, ".sync_db-*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpPath, target)
	}
	if err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	return utils.ContentHash(data), nil
}

func (b *FileBackend) Delete(ctx context.Context, key string) error {
	err := os.Remove(b.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return nil
}

func (b *FileBackend) Head(ctx context.Context, key string) (string, error) {
	hash, err := utils.FileContentHash(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return hash, nil
}
