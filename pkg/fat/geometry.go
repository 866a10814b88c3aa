package fat

import "fmt"

// Default geometry of the simulated medium.
const (
	DefaultMaxFiles    = 12
	DefaultNumClusters = 12
	DefaultClusterSize = 1024
)

// Geometry limits, matching FAT16: at most 65536 clusters of up to 64 KiB
// and a 65536-entry root directory.
const (
	MaxDirectorySlots = 1 << 16
	MaxClusters       = 1 << 16
	MaxClusterSize    = 64 << 10
)

// Geometry fixes the size of the directory and the cluster table.
type Geometry struct {
	MaxFiles    int // Directory slots
	NumClusters int // FAT entries
	ClusterSize int // Bytes per cluster
}

// DefaultGeometry returns a 12-slot directory over 12 clusters of 1 KiB.
func DefaultGeometry() Geometry {
	return Geometry{
		MaxFiles:    DefaultMaxFiles,
		NumClusters: DefaultNumClusters,
		ClusterSize: DefaultClusterSize,
	}
}

// Validate checks that every field is positive and within its limit.
func (g Geometry) Validate() error {
	if g.MaxFiles <= 0 || g.MaxFiles > MaxDirectorySlots {
		return fmt.Errorf("max files %d not in 1..%d: %w", g.MaxFiles, MaxDirectorySlots, ErrInvalidGeometry)
	}
	if g.NumClusters <= 0 || g.NumClusters > MaxClusters {
		return fmt.Errorf("num clusters %d not in 1..%d: %w", g.NumClusters, MaxClusters, ErrInvalidGeometry)
	}
	if g.ClusterSize <= 0 || g.ClusterSize > MaxClusterSize {
		return fmt.Errorf("cluster size %d not in 1..%d: %w", g.ClusterSize, MaxClusterSize, ErrInvalidGeometry)
	}
	return nil
}

// ClustersFor returns ceil(size / ClusterSize) for size >= 0. Zero bytes
// need zero clusters. It does not overflow for any non-negative size.
func (g Geometry) ClustersFor(size int) int {
	n := size / g.ClusterSize
	if size%g.ClusterSize != 0 {
		n++
	}
	return n
}
