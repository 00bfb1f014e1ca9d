package cubestate

// History is a linear stack of snapshots. The first entry is the floor
// and is never removed.
type History struct {
	snapshots []Snapshot
}

// NewHistory creates a history whose floor is the given snapshot.
func NewHistory(floor Snapshot) *History {
	return &History{snapshots: []Snapshot{floor}}
}

// Push appends a snapshot; it becomes the current entry.
func (h *History) Push(s Snapshot) {
	h.snapshots = append(h.snapshots, s)
}

// StepBack drops the current entry and returns the new current one.
// At the floor nothing is removed; the floor is returned with ok false.
func (h *History) StepBack() (Snapshot, bool) {
	if len(h.snapshots) <= 1 {
		return h.snapshots[0], false
	}
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return h.snapshots[len(h.snapshots)-1], true
}

// Current returns the newest entry.
func (h *History) Current() Snapshot {
	return h.snapshots[len(h.snapshots)-1]
}

// Floor returns the oldest entry.
func (h *History) Floor() Snapshot {
	return h.snapshots[0]
}

// Len returns the number of entries, floor included.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Snapshots returns the entries oldest first.
func (h *History) Snapshots() []Snapshot {
	return append([]Snapshot(nil), h.snapshots...)
}
