// SPDX-License-Identifier: MIT
// Package: topology
//
// assemble.go — links and cost matrices from an explicit placement.
//
// Matrix encoding (N = Layout.Size()):
//   - every cell starts at +Inf ("no edge");
//   - processing edge entry(n)→exit(n): time = ProcessingTime,
//     money = HandlingCost of n;
//   - directed link u→v of class K and length d:
//     cell exit(u)→entry(v) gets d·K.Time / d·K.Money.
//
// Emission order: airline (i<j by center ordinal), highway (by station
// ordinal), road (i<j by station ordinal); each connection as u→v then v→u.

package topology

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/sunshi1111/Application-de-livraison-express/matrix"
)

// Site is a node position with its properties.
type Site struct {
	Position   Position   `json:"pos"`
	Properties Properties `json:"properties"`
}

// Placement fixes every node of a network. Assignment[s] is the center
// ordinal station s belongs to.
type Placement struct {
	Centers    []Site `json:"centers"`
	Stations   []Site `json:"stations"`
	Assignment []int  `json:"assignment"`
}

// Assemble generates links and matrices for p under cfg's link coefficients
// and road threshold. Other Config fields are ignored.
//
// Errors: ErrInvalidConfig for bad coefficients, properties or assignment;
// ErrDegenerateTopology when a center shares a position with a station or
// another center.
func Assemble(cfg Config, p Placement) (*Topology, error) {
	if err := cfg.validateLinkCosts(); err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}
	if err := validatePlacement(p); err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}

	layout := Layout{Centers: len(p.Centers), Stations: len(p.Stations)}
	t := &Topology{
		layout:     layout,
		nodes:      make([]Node, 0, layout.Nodes()),
		assignment: append([]int(nil), p.Assignment...),
	}
	for i, s := range p.Centers {
		t.nodes = append(t.nodes, Node{ID: Center(uint32(i)), Position: s.Position, Properties: s.Properties})
	}
	for i, s := range p.Stations {
		t.nodes = append(t.nodes, Node{ID: Station(uint32(i)), Position: s.Position, Properties: s.Properties})
	}

	t.links = generateLinks(cfg, p)

	var err error
	if t.time, t.money, err = assembleMatrices(layout, t.nodes, t.links); err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}

	return t, nil
}

func validatePlacement(p Placement) error {
	if len(p.Centers) < 1 || len(p.Stations) < 1 {
		return configErrorf("placement needs ≥ 1 center and ≥ 1 station, got %d/%d", len(p.Centers), len(p.Stations))
	}
	if len(p.Assignment) != len(p.Stations) {
		return configErrorf("assignment covers %d of %d stations", len(p.Assignment), len(p.Stations))
	}
	for s, c := range p.Assignment {
		if c < 0 || c >= len(p.Centers) {
			return configErrorf("station %d assigned to missing center %d", s, c)
		}
	}
	for i, s := range p.Centers {
		if err := validateProperties(s.Properties); err != nil {
			return fmt.Errorf("center %d: %w", i, err)
		}
	}
	for i, s := range p.Stations {
		if err := validateProperties(s.Properties); err != nil {
			return fmt.Errorf("station %d: %w", i, err)
		}
	}

	occupied := make(map[Position]NodeID, len(p.Stations)+len(p.Centers))
	for i, s := range p.Stations {
		occupied[s.Position] = Station(uint32(i))
	}
	for i, s := range p.Centers {
		if other, ok := occupied[s.Position]; ok {
			return fmt.Errorf("center %d shares position %v with %s: %w", i, s.Position, other, ErrDegenerateTopology)
		}
		occupied[s.Position] = Center(uint32(i))
	}

	return nil
}

// generateLinks emits every directed link in deterministic order.
func generateLinks(cfg Config, p Placement) []Link {
	var links []Link
	pair := func(from, to NodeID, a, b orb.Point, class LinkClass) {
		k, _ := cfg.Coefficients(class)
		d := planar.Distance(a, b)
		links = append(links,
			Link{From: from, To: to, Class: class, Distance: d, Time: d * k.Time, Money: d * k.Money},
			Link{From: to, To: from, Class: class, Distance: d, Time: d * k.Time, Money: d * k.Money},
		)
	}

	for i := range p.Centers {
		for j := i + 1; j < len(p.Centers); j++ {
			pair(Center(uint32(i)), Center(uint32(j)), p.Centers[i].Position.Point(), p.Centers[j].Position.Point(), Airline)
		}
	}

	for s, c := range p.Assignment {
		pair(Station(uint32(s)), Center(uint32(c)), p.Stations[s].Position.Point(), p.Centers[c].Position.Point(), Highway)
	}

	points := make([]orb.Point, len(p.Stations))
	for i, s := range p.Stations {
		points[i] = s.Position.Point()
	}
	idx := newStationIndex(points)
	for i := range points {
		for _, nb := range idx.within(i, cfg.RoadThreshold) {
			if nb.ordinal <= i {
				continue
			}
			pair(Station(uint32(i)), Station(uint32(nb.ordinal)), points[i], points[nb.ordinal], Road)
		}
	}

	return links
}

// assembleMatrices writes processing edges and link costs into fresh +Inf
// matrices.
func assembleMatrices(layout Layout, nodes []Node, links []Link) (*matrix.Dense, *matrix.Dense, error) {
	n := layout.Size()
	timeM, err := matrix.NewInfDense(n)
	if err != nil {
		return nil, nil, err
	}
	moneyM, err := matrix.NewInfDense(n)
	if err != nil {
		return nil, nil, err
	}

	for _, node := range nodes {
		entry, _ := layout.EntryIndex(node.ID)
		if err = timeM.Set(entry, entry+1, ProcessingTime); err != nil {
			return nil, nil, err
		}
		if err = moneyM.Set(entry, entry+1, node.Properties.HandlingCost); err != nil {
			return nil, nil, err
		}
	}

	for _, l := range links {
		exit, _ := layout.ExitIndex(l.From)
		entry, _ := layout.EntryIndex(l.To)
		if err = timeM.Set(exit, entry, l.Time); err != nil {
			return nil, nil, err
		}
		if err = moneyM.Set(exit, entry, l.Money); err != nil {
			return nil, nil, err
		}
	}

	return timeM, moneyM, nil
}
