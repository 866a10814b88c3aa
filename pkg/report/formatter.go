// Package report renders filesystem snapshots as text tables or YAML.
package report

import (
	"fmt"

	"github.com/user/fatsim/pkg/fat"
)

// View selects which part of a snapshot is rendered.
type View int

const (
	ViewDirectory View = iota
	ViewTable
	ViewStats
	ViewAll
)

// String returns the string representation of the view.
func (v View) String() string {
	switch v {
	case ViewDirectory:
		return "directory"
	case ViewTable:
		return "table"
	case ViewStats:
		return "stats"
	case ViewAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseView parses a view name.
func ParseView(s string) (View, error) {
	switch s {
	case "directory", "dir":
		return ViewDirectory, nil
	case "table", "fat":
		return ViewTable, nil
	case "stats":
		return ViewStats, nil
	case "all", "":
		return ViewAll, nil
	default:
		return ViewAll, fmt.Errorf("unknown view %q", s)
	}
}

// Formatter defines the interface for formatting a snapshot.
type Formatter interface {
	// Format renders the selected view of the snapshot.
	Format(snap fat.Snapshot, view View) (string, error)
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(snap fat.Snapshot, view View) (string, error)

// Format implements the Formatter interface.
func (f FormatFunc) Format(snap fat.Snapshot, view View) (string, error) {
	return f(snap, view)
}

// ForName returns the formatter registered under name ("text" or "yaml").
func ForName(name string) (Formatter, error) {
	switch name {
	case "text", "":
		return NewTextFormatter(), nil
	case "yaml":
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}
