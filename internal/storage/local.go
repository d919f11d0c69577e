// Package storage holds the file storage collaborator the load image path
// uses: hand it a byte buffer and the declared filename, get back a stable
// location string.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type FileStore interface {
	Save(data []byte, filename string) (string, error)
}

// LocalStore writes files under a single directory on the local disk. The
// directory is served as statics by the router.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStore{Dir: dir}, nil
}

// Save persists the buffer under a uuid-prefixed name so repeated uploads of
// the same filename never collide, and returns the stored location.
func (s *LocalStore) Save(data []byte, filename string) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename))
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}
