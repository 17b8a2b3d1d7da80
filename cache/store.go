package cache

import (
	"os"
	"path/filepath"
)

// Store persists the serialized cache as a single value. The cache is the
// sole reader and writer of that value.
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileStore keeps the cache in one JSON file. This is the default backend.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Read() ([]byte, error) {
	return os.ReadFile(s.Path)
}

func (s *FileStore) Write(data []byte) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, data, 0644)
}
