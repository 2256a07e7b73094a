// SPDX-License-Identifier: MIT
// Package: routing
//
// errors.go — sentinel errors for the routing engine.
//
// Error policy:
//   • Sentinels only; callers branch with errors.Is.
//   • Context is attached with %w at the call site.
//   • An unreachable destination is a result (empty Path), never an error.

package routing

import (
	"errors"

	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

// ErrInvalidNodeReference indicates a node id outside the engine's layout
// or an augmented index outside [0, N). It is the topology sentinel, so
// either package's name matches.
var ErrInvalidNodeReference = topology.ErrInvalidNodeReference

// ErrInvalidMetric indicates a Metric or Category outside the defined set.
var ErrInvalidMetric = errors.New("routing: invalid metric")

// ErrLayoutMismatch indicates cost matrices whose order differs from the
// layout's augmented size.
var ErrLayoutMismatch = errors.New("routing: matrix order does not match layout")
