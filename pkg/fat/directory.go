package fat

// FileEntry is one directory slot. Fields other than Active are meaningful
// only while Active is true.
type FileEntry struct {
	Name         string
	Size         int
	StartCluster int
	Active       bool
}

// emptyEntry returns the reset state of a slot.
func emptyEntry() FileEntry {
	return FileEntry{StartCluster: NoCluster}
}

// HasChain reports whether the entry owns clusters. Zero-byte files do not.
func (e FileEntry) HasChain() bool {
	return e.Active && e.StartCluster != NoCluster
}

// Directory is the flat, fixed-capacity root directory.
type Directory struct {
	entries []FileEntry
}

// NewDirectory creates a directory with n inactive slots.
func NewDirectory(n int) *Directory {
	d := &Directory{entries: make([]FileEntry, n)}
	d.Reset()
	return d
}

// Reset deactivates every slot.
func (d *Directory) Reset() {
	for i := range d.entries {
		d.entries[i] = emptyEntry()
	}
}

// Len returns the slot capacity.
func (d *Directory) Len() int {
	return len(d.entries)
}

// At returns slot i. The caller ensures i is in range.
func (d *Directory) At(i int) FileEntry {
	return d.entries[i]
}

// FindByName returns the lowest active slot with the given name.
// Duplicate names are allowed, so later matches are shadowed.
func (d *Directory) FindByName(name string) (int, bool) {
	for i, e := range d.entries {
		if e.Active && e.Name == name {
			return i, true
		}
	}
	return -1, false
}

// FindFreeSlot returns the lowest inactive slot.
func (d *Directory) FindFreeSlot() (int, bool) {
	for i, e := range d.entries {
		if !e.Active {
			return i, true
		}
	}
	return -1, false
}

// Activate fills slot i.
func (d *Directory) Activate(i int, name string, size, start int) {
	d.entries[i] = FileEntry{
		Name:         name,
		Size:         size,
		StartCluster: start,
		Active:       true,
	}
}

// Deactivate resets slot i to its empty state.
func (d *Directory) Deactivate(i int) {
	d.entries[i] = emptyEntry()
}

// Entries returns copies of the active entries in slot order.
func (d *Directory) Entries() []FileEntry {
	out := make([]FileEntry, 0, len(d.entries))
	for _, e := range d.entries {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// Slots returns copies of every slot, active or not.
func (d *Directory) Slots() []FileEntry {
	out := make([]FileEntry, len(d.entries))
	copy(out, d.entries)
	return out
}
