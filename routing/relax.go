// SPDX-License-Identifier: MIT
// Package: routing
//
// relax.go — Bellman–Ford relaxation over a dense cost matrix.
//
// Semantics:
//   - dist[src] = 0, every other index +Inf.
//   - Up to N−1 rounds; each round scans every cell (i, j) in row-major
//     order and relaxes it when the cell is finite and nonzero and
//     dist[i] + w < dist[j] (strict).
//   - A round without any update ends the search; further rounds could not
//     change dist or prev.
//
// Complexity: O(N³) time worst case, O(N) extra space.

package routing

import "math"

// runner holds the state of one single-source relaxation.
type runner struct {
	rows [][]float64 // cost rows, read-only
	dist []float64   // best known cost from src
	prev []int       // predecessor on the best path; -1 for none
}

// relax runs Bellman–Ford from src over rows.
func relax(rows [][]float64, src int) *runner {
	n := len(rows)
	r := &runner{
		rows: rows,
		dist: make([]float64, n),
		prev: make([]int, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0

	for round := 1; round < n; round++ {
		if !r.round() {
			break
		}
	}

	return r
}

// round performs one relaxation pass; reports whether any distance improved.
func (r *runner) round() bool {
	var (
		i, j      int
		di, w, nd float64
		updated   bool
	)
	for i = range r.rows {
		di = r.dist[i]
		if math.IsInf(di, 1) {
			continue
		}
		for j, w = range r.rows[i] {
			if w == 0 || math.IsInf(w, 1) {
				continue // "no edge"
			}
			if nd = di + w; nd < r.dist[j] {
				r.dist[j] = nd
				r.prev[j] = i
				updated = true
			}
		}
	}

	return updated
}

// trace returns the index sequence src…dst, or nil when dst is unreachable.
func (r *runner) trace(dst int) []int {
	if math.IsInf(r.dist[dst], 1) {
		return nil
	}
	var rev []int
	for v := dst; v != -1; v = r.prev[v] {
		rev = append(rev, v)
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out
}
