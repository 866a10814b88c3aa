package fat

import (
	"fmt"
	"strconv"
)

// NoCluster marks an unset start cluster (zero-byte files, empty slots).
const NoCluster = -1

// ClusterState is the kind of value held by a FAT entry.
type ClusterState uint8

const (
	// StateFree is an unallocated cluster.
	StateFree ClusterState = iota
	// StateEndOfChain is the last cluster of a file.
	StateEndOfChain
	// StateNext links to the following cluster of the same file.
	StateNext
)

// String returns the string representation of the state.
func (s ClusterState) String() string {
	switch s {
	case StateFree:
		return "free"
	case StateEndOfChain:
		return "eof"
	case StateNext:
		return "next"
	default:
		return "unknown"
	}
}

// Cluster is one FAT entry. Next is meaningful only for StateNext.
type Cluster struct {
	State ClusterState
	Next  int
}

// FreeCluster returns a free entry.
func FreeCluster() Cluster { return Cluster{State: StateFree, Next: NoCluster} }

// EndOfChain returns a terminal entry.
func EndOfChain() Cluster { return Cluster{State: StateEndOfChain, Next: NoCluster} }

// NextCluster returns an entry linking to j.
func NextCluster(j int) Cluster { return Cluster{State: StateNext, Next: j} }

// IsFree reports whether the cluster is unallocated.
func (c Cluster) IsFree() bool { return c.State == StateFree }

func (c Cluster) String() string {
	if c.State == StateNext {
		return "-> " + strconv.Itoa(c.Next)
	}
	return c.State.String()
}

// ClusterTable is the fixed-size file allocation table.
type ClusterTable struct {
	clusters []Cluster
}

// NewClusterTable creates a table of n free clusters.
func NewClusterTable(n int) *ClusterTable {
	t := &ClusterTable{clusters: make([]Cluster, n)}
	t.Reset()
	return t
}

// Reset marks every cluster free.
func (t *ClusterTable) Reset() {
	for i := range t.clusters {
		t.clusters[i] = FreeCluster()
	}
}

// Len returns the table capacity.
func (t *ClusterTable) Len() int {
	return len(t.clusters)
}

// At returns the entry at index i. The caller ensures i is in range.
func (t *ClusterTable) At(i int) Cluster {
	return t.clusters[i]
}

// InRange reports whether i is a valid cluster index.
func (t *ClusterTable) InRange(i int) bool {
	return i >= 0 && i < len(t.clusters)
}

// FindFree returns the lowest-indexed free cluster.
func (t *ClusterTable) FindFree() (int, bool) {
	for i, c := range t.clusters {
		if c.IsFree() {
			return i, true
		}
	}
	return NoCluster, false
}

// CountFree returns the number of free clusters.
func (t *ClusterTable) CountFree() int {
	n := 0
	for _, c := range t.clusters {
		if c.IsFree() {
			n++
		}
	}
	return n
}

// Mark sets the state of cluster i. The caller ensures i is in range.
func (t *ClusterTable) Mark(i int, c Cluster) {
	t.clusters[i] = c
}

// Chain returns the indices of the chain starting at start, in link order.
// A free or out-of-range start yields an empty chain.
func (t *ClusterTable) Chain(start int) ([]int, error) {
	var chain []int
	err := t.walk(start, func(i int) {
		chain = append(chain, i)
	})
	return chain, err
}

// ReleaseChain frees every cluster of the chain starting at start, up to
// and including its end-of-chain cluster. A free or out-of-range start is a
// no-op.
func (t *ClusterTable) ReleaseChain(start int) error {
	return t.walk(start, func(i int) {
		t.clusters[i] = FreeCluster()
	})
}

// walk visits each cluster of a chain. The successor is read before visit
// runs so that visit may overwrite the entry. At most Len() clusters are
// visited.
func (t *ClusterTable) walk(start int, visit func(int)) error {
	if !t.InRange(start) || t.clusters[start].IsFree() {
		return nil
	}

	cur := start
	for steps := 0; steps < len(t.clusters); steps++ {
		c := t.clusters[cur]
		visit(cur)

		switch c.State {
		case StateEndOfChain:
			return nil
		case StateNext:
			if !t.InRange(c.Next) {
				return fmt.Errorf("cluster %d links to %d: %w", cur, c.Next, ErrConsistencyFault)
			}
			if t.clusters[c.Next].IsFree() {
				return fmt.Errorf("cluster %d links to free cluster %d: %w", cur, c.Next, ErrConsistencyFault)
			}
			cur = c.Next
		default:
			return fmt.Errorf("cluster %d is free inside a chain: %w", cur, ErrConsistencyFault)
		}
	}

	return fmt.Errorf("chain from cluster %d exceeds %d clusters: %w", start, len(t.clusters), ErrConsistencyFault)
}

// Snapshot returns a copy of every entry in index order.
func (t *ClusterTable) Snapshot() []Cluster {
	out := make([]Cluster, len(t.clusters))
	copy(out, t.clusters)
	return out
}
