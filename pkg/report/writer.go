package report

import (
	"fmt"

	"github.com/user/fatsim/pkg/fat"
	"github.com/user/fatsim/pkg/ports"
)

// Writer writes formatted snapshots to files.
type Writer struct {
	formatter Formatter
	storage   ports.Storage
}

// NewWriter creates a new Writer with the given Formatter and Storage.
func NewWriter(formatter Formatter, storage ports.Storage) *Writer {
	return &Writer{
		formatter: formatter,
		storage:   storage,
	}
}

// Write formats the snapshot and writes it to path.
func (w *Writer) Write(path string, snap fat.Snapshot, view View) error {
	content, err := w.formatter.Format(snap, view)
	if err != nil {
		return err
	}

	if err := w.storage.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
