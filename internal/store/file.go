package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each collection as a JSON file in a local directory.
// It is the development and small-deployment backend.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrConnection, err)
	}
	return &FileStore{dir: dir}, nil
}

// Read returns the raw contents of the collection file, or ErrNotFound if
// the file does not exist.
func (f *FileStore) Read(_ context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(f.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read collection %q: %w", collection, err)
	}
	return data, nil
}

// Write replaces the collection file. The write goes to a temp file first
// and is renamed into place so a crash mid-write never leaves a truncated
// collection behind. This does not protect against two concurrent writers:
// the last rename wins.
func (f *FileStore) Write(_ context.Context, collection string, data []byte) error {
	path := f.path(collection)

	tmp, err := os.CreateTemp(f.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write collection %q: %w", collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write collection %q: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write collection %q: %w", collection, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write collection %q: %w", collection, err)
	}
	return nil
}

// Ping verifies the data directory is accessible.
func (f *FileStore) Ping(_ context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrConnection, f.dir)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *FileStore) Close() error {
	return nil
}

func (f *FileStore) path(collection string) string {
	return filepath.Join(f.dir, collection+".json")
}
