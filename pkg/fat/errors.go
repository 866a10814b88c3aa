package fat

import (
	"errors"
	"fmt"
)

// Expected, recoverable failure kinds. Callers match them with errors.Is.
var (
	// ErrFileTooLarge means the file needs more clusters than the table holds.
	ErrFileTooLarge = errors.New("file too large")
	// ErrDirectoryFull means every directory slot is active.
	ErrDirectoryFull = errors.New("directory full")
	// ErrInsufficientSpace means there are not enough free clusters.
	ErrInsufficientSpace = errors.New("insufficient free clusters")
	// ErrNotFound means no active entry has the requested name.
	ErrNotFound = errors.New("file not found")
	// ErrInvalidSize means a negative size was requested.
	ErrInvalidSize = errors.New("invalid file size")
	// ErrInvalidGeometry means a geometry field is not positive.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrConsistencyFault signals a corrupted table: a chain that does not
	// terminate within the table capacity or links to a free or
	// out-of-range cluster. Unreachable through the public operations.
	ErrConsistencyFault = errors.New("consistency fault")
)

// OpError records the operation and file name an error belongs to.
type OpError struct {
	Op   string
	Name string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
