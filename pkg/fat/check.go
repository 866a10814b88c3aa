package fat

import (
	"errors"
	"fmt"
)

// Check verifies the directory and the table against each other: every
// entry is a valid state, active chains are well formed, disjoint and sized
// to their files, and every non-free cluster belongs to some file. All
// violations are returned joined; each wraps ErrConsistencyFault.
func (fs *FileSystem) Check() error {
	var errs []error
	fault := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format+": %w", append(args, ErrConsistencyFault)...))
	}

	for i, c := range fs.table.clusters {
		switch c.State {
		case StateFree, StateEndOfChain:
		case StateNext:
			if !fs.table.InRange(c.Next) {
				fault("cluster %d links out of range to %d", i, c.Next)
			}
		default:
			fault("cluster %d has unknown state %d", i, c.State)
		}
	}

	owner := make(map[int]string)
	owned := 0
	for _, e := range fs.dir.entries {
		if !e.Active {
			continue
		}

		want := fs.geometry.ClustersFor(e.Size)
		if !e.HasChain() {
			if want != 0 {
				fault("%q has no start cluster but needs %d clusters", e.Name, want)
			}
			continue
		}

		chain, err := fs.table.Chain(e.StartCluster)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", e.Name, err))
			continue
		}
		if len(chain) != want {
			fault("%q has %d clusters, want %d", e.Name, len(chain), want)
		}
		for _, i := range chain {
			if other, ok := owner[i]; ok {
				fault("cluster %d shared by %q and %q", i, other, e.Name)
				continue
			}
			owner[i] = e.Name
		}
		owned += len(chain)
	}

	if free := fs.table.CountFree(); free+owned != fs.table.Len() {
		fault("%d free + %d owned clusters != %d", free, owned, fs.table.Len())
	}

	return errors.Join(errs...)
}
