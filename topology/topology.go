// SPDX-License-Identifier: MIT
// Package: topology
//
// topology.go — the built network and its read-only accessors.
//
// A Topology is immutable after Build/Assemble returns. Accessors that hand
// out slices or matrices return copies so callers cannot mutate the network
// another engine was constructed from.

package topology

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/sunshi1111/Application-de-livraison-express/matrix"
)

// Node is a physical node of the network.
type Node struct {
	ID         NodeID     `json:"id"`
	Position   Position   `json:"pos"`
	Properties Properties `json:"properties"`
}

// Topology is a built network: node catalog, bidirectional links, and the
// time and money cost matrices over the augmented index space.
type Topology struct {
	generation uuid.UUID
	layout     Layout
	nodes      []Node // centers first, then stations; index = Layout.Position
	links      []Link
	assignment []int // station ordinal → center ordinal
	time       *matrix.Dense
	money      *matrix.Dense
}

// Generation identifies this build. Equal seeds give equal generations;
// Assemble leaves it as uuid.Nil.
func (t *Topology) Generation() uuid.UUID { return t.generation }

// Layout returns the augmented index layout.
func (t *Topology) Layout() Layout { return t.layout }

// Node returns the node named by id.
func (t *Topology) Node(id NodeID) (Node, error) {
	i, err := t.layout.Position(id)
	if err != nil {
		return Node{}, fmt.Errorf("Node(%s): %w", id, err)
	}

	return t.nodes[i], nil
}

// Nodes returns every node, centers first then stations.
func (t *Topology) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Links returns every directed link in emission order.
func (t *Topology) Links() []Link {
	out := make([]Link, len(t.links))
	copy(out, t.links)

	return out
}

// LinksByClass returns the directed links of one class in emission order.
func (t *Topology) LinksByClass(class LinkClass) []Link {
	var out []Link
	for _, l := range t.links {
		if l.Class == class {
			out = append(out, l)
		}
	}

	return out
}

// Cluster returns the stations assigned to center, ordered by ordinal.
func (t *Topology) Cluster(center NodeID) ([]NodeID, error) {
	if !center.IsCenter() || !t.layout.Contains(center) {
		return nil, fmt.Errorf("Cluster(%s): %w", center, ErrInvalidNodeReference)
	}
	var out []NodeID
	for s, c := range t.assignment {
		if c == int(center.Ordinal) {
			out = append(out, Station(uint32(s)))
		}
	}

	return out, nil
}

// CenterOf returns the center a station is assigned to.
func (t *Topology) CenterOf(station NodeID) (NodeID, error) {
	if !station.IsStation() || !t.layout.Contains(station) {
		return NodeID{}, fmt.Errorf("CenterOf(%s): %w", station, ErrInvalidNodeReference)
	}

	return Center(uint32(t.assignment[station.Ordinal])), nil
}

// Bound returns the bounding box of every node position.
func (t *Topology) Bound() orb.Bound {
	mp := make(orb.MultiPoint, len(t.nodes))
	for i, n := range t.nodes {
		mp[i] = n.Position.Point()
	}

	return mp.Bound()
}

// TimeMatrix returns a copy of the time cost matrix.
func (t *Topology) TimeMatrix() *matrix.Dense { return t.time.Clone() }

// MoneyMatrix returns a copy of the money cost matrix.
func (t *Topology) MoneyMatrix() *matrix.Dense { return t.money.Clone() }

// topologyJSON is the wire form: the catalog, not the matrices.
type topologyJSON struct {
	Generation uuid.UUID `json:"generation"`
	Nodes      []Node    `json:"nodes"`
	Links      []Link    `json:"links"`
}

// MarshalJSON encodes the generation, node catalog and links.
func (t *Topology) MarshalJSON() ([]byte, error) {
	return json.Marshal(topologyJSON{
		Generation: t.generation,
		Nodes:      t.nodes,
		Links:      t.links,
	})
}
