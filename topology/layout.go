// SPDX-License-Identifier: MIT

package topology

import "fmt"

// Layout describes the augmented index space of a network with the given
// node counts. Every physical node owns two consecutive indices: an entry
// index (arriving at the node) and an exit index = entry + 1 (ready to
// depart). Centers occupy [0, 2*Centers); stations occupy
// [2*Centers, 2*(Centers+Stations)).
//
// All methods are pure; they never touch a matrix.
type Layout struct {
	Centers  int
	Stations int
}

// Nodes returns the number of physical nodes.
func (l Layout) Nodes() int { return l.Centers + l.Stations }

// Size returns N, the order of the cost matrices (2 * physical nodes).
func (l Layout) Size() int { return 2 * (l.Centers + l.Stations) }

// Contains reports whether id is a valid node of this layout.
func (l Layout) Contains(id NodeID) bool {
	switch id.Kind {
	case KindCenter:
		return uint64(id.Ordinal) < uint64(l.Centers)
	case KindStation:
		return uint64(id.Ordinal) < uint64(l.Stations)
	default:
		return false
	}
}

// EntryIndex maps id to its entry index.
func (l Layout) EntryIndex(id NodeID) (int, error) {
	if !l.Contains(id) {
		return 0, fmt.Errorf("EntryIndex(%s): %w", id, ErrInvalidNodeReference)
	}
	if id.Kind == KindCenter {
		return 2 * int(id.Ordinal), nil
	}

	return 2*l.Centers + 2*int(id.Ordinal), nil
}

// ExitIndex maps id to its exit index (entry + 1).
func (l Layout) ExitIndex(id NodeID) (int, error) {
	entry, err := l.EntryIndex(id)
	if err != nil {
		return 0, fmt.Errorf("ExitIndex(%s): %w", id, ErrInvalidNodeReference)
	}

	return entry + 1, nil
}

// NodeAt maps an augmented index (entry or exit) back to its node id.
func (l Layout) NodeAt(index int) (NodeID, error) {
	if index < 0 || index >= l.Size() {
		return NodeID{}, fmt.Errorf("NodeAt(%d): size %d: %w", index, l.Size(), ErrInvalidNodeReference)
	}
	if index < 2*l.Centers {
		return Center(uint32(index / 2)), nil
	}

	return Station(uint32((index - 2*l.Centers) / 2)), nil
}

// IsEntry reports whether index is an entry index of this layout.
func (l Layout) IsEntry(index int) bool {
	return index >= 0 && index < l.Size() && index%2 == 0
}

// Position returns the ordinal of id in node order (centers first, then
// stations): the index into Topology.Nodes.
func (l Layout) Position(id NodeID) (int, error) {
	entry, err := l.EntryIndex(id)
	if err != nil {
		return 0, err
	}

	return entry / 2, nil
}

// NodeIDs lists every node of the layout, centers first then stations.
func (l Layout) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, l.Nodes())
	for i := 0; i < l.Centers; i++ {
		ids = append(ids, Center(uint32(i)))
	}
	for i := 0; i < l.Stations; i++ {
		ids = append(ids, Station(uint32(i)))
	}

	return ids
}
