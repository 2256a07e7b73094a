// SPDX-License-Identifier: MIT
// Package: routing
//
// path.go — ShortestPath and AlternatePath.
//
// Both relax from entry(src) and read the index path back to entry(dst).
// On a node-split matrix that path alternates entry, exit, entry, …, so the
// node path is every other element of it.

package routing

import (
	"fmt"
	"math"
	"strings"

	"github.com/sunshi1111/Application-de-livraison-express/matrix"
	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

// Path is an ordered node sequence. An empty Path means "no route".
type Path []topology.NodeID

// Contains reports whether id appears in p.
func (p Path) Contains(id topology.NodeID) bool {
	for _, n := range p {
		if n == id {
			return true
		}
	}

	return false
}

// String renders p as "s0 → c0 → c1 → s1"; the empty path renders as "∅".
func (p Path) String() string {
	if len(p) == 0 {
		return "∅"
	}
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = id.String()
	}

	return strings.Join(parts, " → ")
}

// ShortestPath returns the least-cost node path from src to dst under m:
// [src] when src == dst, an empty Path when dst is unreachable.
//
// Errors: ErrInvalidNodeReference, ErrInvalidMetric.
func (e *Engine) ShortestPath(src, dst topology.NodeID, m Metric) (Path, error) {
	from, to, err := e.endpoints(src, dst)
	if err != nil {
		return nil, fmt.Errorf("ShortestPath: %w", err)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.shortestPathLocked(from, to, m)
}

func (e *Engine) shortestPathLocked(from, to int, m Metric) (Path, error) {
	costs, err := e.costs(m)
	if err != nil {
		return nil, fmt.Errorf("ShortestPath: %w", err)
	}
	rows, err := rowsOf(costs)
	if err != nil {
		return nil, fmt.Errorf("ShortestPath: %w", err)
	}

	return e.nodePath(relax(rows, from).trace(to))
}

// AlternatePath returns the least-cost path from src to dst under m that
// never touches avoid. It is empty when no such path exists, when
// src == dst, and when avoid is src or dst.
//
// Errors: ErrInvalidNodeReference, ErrInvalidMetric.
func (e *Engine) AlternatePath(src, dst, avoid topology.NodeID, m Metric) (Path, error) {
	from, to, err := e.endpoints(src, dst)
	if err != nil {
		return nil, fmt.Errorf("AlternatePath: %w", err)
	}
	blocked, err := e.layout.EntryIndex(avoid)
	if err != nil {
		return nil, fmt.Errorf("AlternatePath: avoid: %w", err)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.alternatePathLocked(from, to, blocked, m)
}

func (e *Engine) alternatePathLocked(from, to, blocked int, m Metric) (Path, error) {
	costs, err := e.costs(m)
	if err != nil {
		return nil, fmt.Errorf("AlternatePath: %w", err)
	}

	// transient copy with entry(avoid) and exit(avoid) cut off
	masked := costs.Clone()
	rows, err := rowsOf(masked)
	if err != nil {
		return nil, fmt.Errorf("AlternatePath: %w", err)
	}
	inf := math.Inf(1)
	for _, k := range [2]int{blocked, blocked + 1} {
		for j := range rows[k] {
			rows[k][j] = inf
		}
		for i := range rows {
			rows[i][k] = inf
		}
	}

	path, err := e.nodePath(relax(rows, from).trace(to))
	if err != nil {
		return nil, fmt.Errorf("AlternatePath: %w", err)
	}
	if len(path) < 2 {
		return Path{}, nil
	}

	return path, nil
}

// endpoints maps src and dst to their entry indices.
func (e *Engine) endpoints(src, dst topology.NodeID) (int, int, error) {
	from, err := e.layout.EntryIndex(src)
	if err != nil {
		return 0, 0, fmt.Errorf("src: %w", err)
	}
	to, err := e.layout.EntryIndex(dst)
	if err != nil {
		return 0, 0, fmt.Errorf("dst: %w", err)
	}

	return from, to, nil
}

// nodePath keeps every other index of trace (the entry indices) and maps
// them to node ids. A nil trace yields the empty Path.
func (e *Engine) nodePath(trace []int) (Path, error) {
	path := make(Path, 0, (len(trace)+1)/2)
	for i := 0; i < len(trace); i += 2 {
		id, err := e.layout.NodeAt(trace[i])
		if err != nil {
			return nil, err
		}
		path = append(path, id)
	}

	return path, nil
}

// rowsOf returns row views of m; they alias m's storage.
func rowsOf(m *matrix.Dense) ([][]float64, error) {
	rows := make([][]float64, m.Rows())
	var err error
	for i := range rows {
		if rows[i], err = m.RowView(i); err != nil {
			return nil, err
		}
	}

	return rows, nil
}
