package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each slot as a JSON file under a state directory. It is
// the default backend and needs no running services.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) Load(_ context.Context, slot string) ([]byte, error) {
	data, err := os.ReadFile(f.path(slot))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", slot, err)
	}
	return data, nil
}

func (f *FileStore) Save(_ context.Context, slot string, data []byte) error {
	if err := os.WriteFile(f.path(slot), data, 0o644); err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	return nil
}

func (f *FileStore) path(slot string) string {
	return filepath.Join(f.dir, slot+".json")
}
