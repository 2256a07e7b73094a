// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) implementation with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.
//   - PrepareDistances converts a cost matrix (+Inf or 0 meaning "no edge")
//     into that form.

package matrix

import (
	"fmt"
	"math"
)

const (
	opFloydWarshall    = "FloydWarshall"
	opPrepareDistances = "PrepareDistances"
)

// PrepareDistances converts a cost matrix into a distance matrix in-place:
//
//	diag = 0; off-diagonal 0 -> +Inf; everything else unchanged.
//
// A zero off-diagonal cell is treated as "no edge", matching the relaxation
// policy of the routing engine. The matrix must admit +Inf
// (WithAllowInfDistances). Requires a square matrix.
// Complexity: O(n^2).
func PrepareDistances(m *Dense) error {
	if m == nil {
		return matrixErrorf(opPrepareDistances, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opPrepareDistances, err)
	}

	n := m.r
	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				m.data[i*n+j] = 0
				continue
			}
			if m.data[i*n+j] == 0 {
				if err := m.Set(i, j, inf); err != nil {
					return fmt.Errorf("%s: %w", opPrepareDistances, err)
				}
			}
		}
	}

	return nil
}

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)

	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n

		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes "no edge" off-diagonal; the diagonal MUST be 0.
//
// Complexity: Time O(n^3), Extra space O(1) (fully in-place).
func FloydWarshall(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	floydWarshallInPlace(m)

	return nil
}
