// SPDX-License-Identifier: MIT
// Package: topology
//
// errors.go — sentinel errors for the topology package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w; sentinels are never
//     formatted at definition site.
//   • Build/Assemble never panic; validation panics are confined to option
//     constructors (WithX...).

package topology

import "errors"

// ErrInvalidNodeReference indicates a malformed node id ("x3", "s-1", "c")
// or an id/index outside the layout of the current network.
var ErrInvalidNodeReference = errors.New("topology: invalid node reference")

// ErrInvalidConfig indicates that a Config field is outside its documented
// domain (counts, bounds, candidate tuples, coefficients, threshold).
var ErrInvalidConfig = errors.New("topology: invalid configuration")

// ErrNeedRandSource indicates that Build was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("topology: rng is required")

// ErrDegenerateTopology indicates that a center could not be given a
// position distinct from every station within the configured retry bound,
// or that an explicit placement puts a center on top of a station.
// The build attempt is lost; retry generation with different randomness.
var ErrDegenerateTopology = errors.New("topology: degenerate topology")
