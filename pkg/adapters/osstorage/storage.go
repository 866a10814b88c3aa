// Package osstorage provides host file access using the os package.
package osstorage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/fatsim/pkg/ports"
)

// Storage implements ports.Storage on the local disk.
type Storage struct{}

// New creates a new Storage.
func New() *Storage {
	return &Storage{}
}

// ReadFile reads the entire contents of a file.
func (s *Storage) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating parent directories.
func (s *Storage) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Exists checks if a file or directory exists.
func (s *Storage) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

var _ ports.Storage = (*Storage)(nil)
