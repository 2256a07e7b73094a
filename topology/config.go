// SPDX-License-Identifier: MIT
// Package: topology
//
// config.go — the explicit build configuration.
//
// Design:
//   • Config is a plain value passed into Build; there is no package-level
//     parameter state and no silent defaulting: Validate rejects what Build
//     cannot use.
//   • DefaultConfig returns the reference network parameters as an explicit
//     value callers may copy and tweak.

package topology

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ProcessingTime is the time cost of every node's entry→exit processing edge.
// Unlike the money cost of the same edge it does not depend on node
// properties.
const ProcessingTime = 0.01

// Position is an integer map coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Point converts p to an orb.Point for planar geometry.
func (p Position) Point() orb.Point { return orb.Point{float64(p.X), float64(p.Y)} }

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position { return Position{X: p.X + dx, Y: p.Y + dy} }

// Bounds is an inclusive integer rectangle [Min.X, Max.X] × [Min.Y, Max.Y].
type Bounds struct {
	Min Position `json:"min"`
	Max Position `json:"max"`
}

// Bound converts b to an orb.Bound.
func (b Bounds) Bound() orb.Bound {
	return orb.Bound{Min: b.Min.Point(), Max: b.Max.Point()}
}

// Properties are the per-node operating characteristics.
// HandlingCost is the money cost of passing through the node.
type Properties struct {
	Throughput   int     `json:"throughput"`
	Delay        int     `json:"delay"`
	HandlingCost float64 `json:"cost"`
}

// Coefficients scale Euclidean distance into time and money for one link class.
type Coefficients struct {
	Time  float64 `json:"time"`
	Money float64 `json:"money"`
}

// Config is everything Build needs; nothing is read from elsewhere.
type Config struct {
	Stations int    `json:"stations"`
	Centers  int    `json:"centers"`
	Bounds   Bounds `json:"bounds"`

	StationCandidates []Properties `json:"stationCandidates"`
	CenterCandidates  []Properties `json:"centerCandidates"`

	Airline Coefficients `json:"airline"`
	Highway Coefficients `json:"highway"`
	Road    Coefficients `json:"road"`

	// RoadThreshold is the strict upper bound on station-to-station
	// distance for a road link.
	RoadThreshold float64 `json:"roadThreshold"`

	// CollisionRetries bounds the (+1,+1) shifts applied to a center whose
	// centroid lands on an occupied position.
	CollisionRetries int `json:"collisionRetries"`
}

// DefaultConfig returns the reference network: 25 stations under 5 centers
// on a 100×100 map.
func DefaultConfig() Config {
	return Config{
		Stations: 25,
		Centers:  5,
		Bounds:   Bounds{Min: Position{0, 0}, Max: Position{100, 100}},
		StationCandidates: []Properties{
			{Throughput: 10, Delay: 2, HandlingCost: 0.5},
			{Throughput: 15, Delay: 2, HandlingCost: 0.6},
			{Throughput: 20, Delay: 1, HandlingCost: 0.8},
			{Throughput: 25, Delay: 1, HandlingCost: 0.9},
		},
		CenterCandidates: []Properties{
			{Throughput: 100, Delay: 2, HandlingCost: 0.5},
			{Throughput: 150, Delay: 2, HandlingCost: 0.5},
			{Throughput: 125, Delay: 1, HandlingCost: 0.5},
			{Throughput: 175, Delay: 1, HandlingCost: 0.5},
		},
		Airline:          Coefficients{Time: 0.25, Money: 0.2},
		Highway:          Coefficients{Time: 0.6, Money: 0.12},
		Road:             Coefficients{Time: 0.8, Money: 0.07},
		RoadThreshold:    30,
		CollisionRetries: 16,
	}
}

// Coefficients returns the coefficients of link class c.
func (c Config) Coefficients(class LinkClass) (Coefficients, error) {
	switch class {
	case Airline:
		return c.Airline, nil
	case Highway:
		return c.Highway, nil
	case Road:
		return c.Road, nil
	default:
		return Coefficients{}, fmt.Errorf("Coefficients(%d): unknown link class: %w", class, ErrInvalidConfig)
	}
}

// Validate checks every field Build depends on.
func (c Config) Validate() error {
	if c.Stations < 1 {
		return configErrorf("stations=%d < 1", c.Stations)
	}
	if c.Centers < 1 {
		return configErrorf("centers=%d < 1", c.Centers)
	}
	if c.Centers > c.Stations {
		return configErrorf("centers=%d > stations=%d", c.Centers, c.Stations)
	}
	if c.Bounds.Min.X > c.Bounds.Max.X || c.Bounds.Min.Y > c.Bounds.Max.Y {
		return configErrorf("bounds %v..%v are inverted", c.Bounds.Min, c.Bounds.Max)
	}
	if err := validateCandidates("station", c.StationCandidates); err != nil {
		return err
	}
	if err := validateCandidates("center", c.CenterCandidates); err != nil {
		return err
	}
	if c.CollisionRetries < 1 {
		return configErrorf("collision retries %d < 1", c.CollisionRetries)
	}

	return c.validateLinkCosts()
}

// validateLinkCosts covers the subset of Validate that Assemble needs.
func (c Config) validateLinkCosts() error {
	for _, class := range linkClasses {
		k, _ := c.Coefficients(class)
		if !positiveFinite(k.Time) || !positiveFinite(k.Money) {
			return configErrorf("%s coefficients (%g, %g) must be finite and > 0", class, k.Time, k.Money)
		}
	}
	if !positiveFinite(c.RoadThreshold) {
		return configErrorf("road threshold %g must be finite and > 0", c.RoadThreshold)
	}

	return nil
}

func validateCandidates(kind string, cands []Properties) error {
	if len(cands) == 0 {
		return configErrorf("no %s candidates", kind)
	}
	for i, p := range cands {
		if err := validateProperties(p); err != nil {
			return fmt.Errorf("%s candidate %d: %w", kind, i, err)
		}
	}

	return nil
}

// validateProperties rejects tuples that would break the processing-edge
// invariant (a zero handling cost reads as "no edge" during relaxation).
func validateProperties(p Properties) error {
	if p.Throughput <= 0 {
		return configErrorf("throughput %d <= 0", p.Throughput)
	}
	if p.Delay < 0 {
		return configErrorf("delay %d < 0", p.Delay)
	}
	if !positiveFinite(p.HandlingCost) {
		return configErrorf("handling cost %g must be finite and > 0", p.HandlingCost)
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func configErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}
