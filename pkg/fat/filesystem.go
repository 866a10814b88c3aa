// Package fat implements an in-memory FAT-style filesystem: a fixed table of
// clusters, a flat directory of files mapped to cluster chains, and the
// engine that keeps the two consistent.
package fat

import (
	"fmt"

	"github.com/user/fatsim/pkg/adapters/logger"
	"github.com/user/fatsim/pkg/ports"
)

// Stats summarises cluster usage.
type Stats struct {
	Total     int
	Free      int
	Used      int
	FreeBytes int
	UsedBytes int
}

// Snapshot is a detached copy of the whole filesystem state.
type Snapshot struct {
	Geometry Geometry
	Slots    []FileEntry // every directory slot, in slot order
	Table    []Cluster
	Stats    Stats
}

// Files returns the active entries of the snapshot in slot order.
func (s Snapshot) Files() []FileEntry {
	var out []FileEntry
	for _, e := range s.Slots {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// Option configures a FileSystem.
type Option func(*FileSystem)

// WithLogger sets the logger used for allocation traces.
func WithLogger(log ports.Logger) Option {
	return func(fs *FileSystem) {
		fs.log = log.WithComponent("fat")
	}
}

// FileSystem owns a ClusterTable and a Directory. It is not safe for
// concurrent use.
type FileSystem struct {
	geometry Geometry
	table    *ClusterTable
	dir      *Directory
	log      ports.Logger
}

// New creates an initialized FileSystem with the given geometry.
func New(geometry Geometry, opts ...Option) (*FileSystem, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}

	fs := &FileSystem{
		geometry: geometry,
		table:    NewClusterTable(geometry.NumClusters),
		dir:      NewDirectory(geometry.MaxFiles),
		log:      logger.NewNoop(),
	}
	for _, opt := range opts {
		opt(fs)
	}
	return fs, nil
}

// NewDefault creates a FileSystem with DefaultGeometry.
func NewDefault(opts ...Option) *FileSystem {
	fs, _ := New(DefaultGeometry(), opts...)
	return fs
}

// Geometry returns the configured geometry.
func (fs *FileSystem) Geometry() Geometry {
	return fs.geometry
}

// Initialize frees every cluster and deactivates every directory slot.
func (fs *FileSystem) Initialize() {
	fs.table.Reset()
	fs.dir.Reset()
	fs.log.Debug("Initialized %d clusters and %d directory slots", fs.table.Len(), fs.dir.Len())
}

// Allocate creates a directory entry for name and claims
// ceil(size/ClusterSize) clusters for it, lowest free index first.
// On failure neither table is modified. Duplicate names are not rejected.
func (fs *FileSystem) Allocate(name string, size int) error {
	if size < 0 {
		return &OpError{Op: "allocate", Name: name, Err: ErrInvalidSize}
	}

	needed := fs.geometry.ClustersFor(size)
	if needed > fs.table.Len() {
		return &OpError{Op: "allocate", Name: name, Err: ErrFileTooLarge}
	}

	slot, ok := fs.dir.FindFreeSlot()
	if !ok {
		return &OpError{Op: "allocate", Name: name, Err: ErrDirectoryFull}
	}

	if fs.table.CountFree() < needed {
		return &OpError{Op: "allocate", Name: name, Err: ErrInsufficientSpace}
	}

	start, err := fs.claimChain(needed)
	if err != nil {
		return &OpError{Op: "allocate", Name: name, Err: err}
	}

	fs.dir.Activate(slot, name, size, start)
	fs.log.Debug("Allocated %s: %d bytes, %d clusters from %d", name, size, needed, start)
	return nil
}

// claimChain builds a chain of n clusters and returns its head, or NoCluster
// for n == 0. Each claimed cluster is written as end-of-chain and its
// predecessor relinked, so a partial chain is always well formed and can be
// released if the table runs out.
func (fs *FileSystem) claimChain(n int) (int, error) {
	start, prev := NoCluster, NoCluster

	for k := 0; k < n; k++ {
		cur, ok := fs.table.FindFree()
		if !ok {
			if start != NoCluster {
				if err := fs.table.ReleaseChain(start); err != nil {
					return NoCluster, err
				}
			}
			return NoCluster, ErrInsufficientSpace
		}

		fs.table.Mark(cur, EndOfChain())
		if prev == NoCluster {
			start = cur
		} else {
			fs.table.Mark(prev, NextCluster(cur))
		}
		prev = cur
	}

	return start, nil
}

// Delete removes the lowest-slot entry named name and frees its chain.
// The chain is walked in full before anything is freed, so a corrupt chain
// fails with ErrConsistencyFault and leaves both tables unchanged.
func (fs *FileSystem) Delete(name string) error {
	slot, ok := fs.dir.FindByName(name)
	if !ok {
		return &OpError{Op: "delete", Name: name, Err: ErrNotFound}
	}

	entry := fs.dir.At(slot)
	if entry.HasChain() {
		if _, err := fs.table.Chain(entry.StartCluster); err != nil {
			return &OpError{Op: "delete", Name: name, Err: err}
		}
		if err := fs.table.ReleaseChain(entry.StartCluster); err != nil {
			return &OpError{Op: "delete", Name: name, Err: err}
		}
	}

	fs.dir.Deactivate(slot)
	fs.log.Debug("Deleted %s, released chain from %d", name, entry.StartCluster)
	return nil
}

// Lookup returns the lowest-slot active entry named name.
func (fs *FileSystem) Lookup(name string) (FileEntry, bool) {
	slot, ok := fs.dir.FindByName(name)
	if !ok {
		return FileEntry{}, false
	}
	return fs.dir.At(slot), true
}

// ChainOf returns the cluster indices owned by name, in link order.
func (fs *FileSystem) ChainOf(name string) ([]int, error) {
	entry, ok := fs.Lookup(name)
	if !ok {
		return nil, &OpError{Op: "chain", Name: name, Err: ErrNotFound}
	}
	if !entry.HasChain() {
		return nil, nil
	}
	return fs.table.Chain(entry.StartCluster)
}

// ListDirectory returns the active entries in slot order.
func (fs *FileSystem) ListDirectory() []FileEntry {
	return fs.dir.Entries()
}

// DumpTable returns every FAT entry in index order.
func (fs *FileSystem) DumpTable() []Cluster {
	return fs.table.Snapshot()
}

// Stats scans the table once.
func (fs *FileSystem) Stats() Stats {
	free := fs.table.CountFree()
	used := fs.table.Len() - free
	return Stats{
		Total:     fs.table.Len(),
		Free:      free,
		Used:      used,
		FreeBytes: free * fs.geometry.ClusterSize,
		UsedBytes: used * fs.geometry.ClusterSize,
	}
}

// Snapshot returns a detached copy of the whole state.
func (fs *FileSystem) Snapshot() Snapshot {
	return Snapshot{
		Geometry: fs.geometry,
		Slots:    fs.dir.Slots(),
		Table:    fs.table.Snapshot(),
		Stats:    fs.Stats(),
	}
}

// Owners maps each cluster index to the slot of the file whose chain holds
// it, or -1 for clusters no active file reaches.
func (s Snapshot) Owners() ([]int, error) {
	owners := make([]int, len(s.Table))
	for i := range owners {
		owners[i] = -1
	}

	for slot, e := range s.Slots {
		chain, err := s.ChainOf(e)
		if err != nil {
			return nil, err
		}
		for _, i := range chain {
			owners[i] = slot
		}
	}
	return owners, nil
}

// ChainOf returns the cluster indices of e's chain in link order, or nil
// for inactive and zero-byte entries.
func (s Snapshot) ChainOf(e FileEntry) ([]int, error) {
	if !e.HasChain() {
		return nil, nil
	}
	table := &ClusterTable{clusters: s.Table}
	chain, err := table.Chain(e.StartCluster)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", e.Name, err)
	}
	return chain, nil
}
