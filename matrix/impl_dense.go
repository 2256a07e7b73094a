// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (NaN/Inf rejection, +Inf as "no edge",
//     non-negative costs) from a single source of truth (options.go).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewInfDense: O(n*n); At/Set: O(1); Clone: O(r*c); RowView: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRowView  = "RowView"
	ctxFill     = "Fill"
	ctxCopyFrom = "CopyFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts is the numeric policy applied by Set and Fill.
type Dense struct {
	r, c int
	data []float64
	opts Options
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions (rows<=0 or cols<=0).
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols),
		opts: gatherOptions(opts...),
	}, nil
}

// NewInfDense creates an n×n cost matrix with every cell set to +Inf
// ("no edge"). The policy admits +Inf and rejects negative entries; extra
// opts are applied on top.
//
// Complexity: Time O(n*n), Space O(n*n).
func NewInfDense(n int, opts ...Option) (*Dense, error) {
	policy := append([]Option{WithAllowInfDistances(), WithNonNegative()}, opts...)
	m, err := NewDense(n, n, policy...)
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	for k := range m.data {
		m.data[k] = inf
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// checkValue applies the numeric policy to v.
func (m *Dense) checkValue(v float64) error {
	if m.opts.validateNaNInf {
		if math.IsNaN(v) || math.IsInf(v, -1) {
			return ErrNaNInf
		}
		if math.IsInf(v, 1) && !m.opts.allowInfDistances {
			return ErrNaNInf
		}
	}
	if m.opts.nonNegative && v < 0 {
		return ErrNegativeEntry
	}

	return nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) after applying the numeric policy.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if err = m.checkValue(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// RowView returns row i as a slice aliasing the backing buffer (no copy).
// Mutations through the slice bypass the numeric policy; callers use it for
// read-only hot loops.
// Complexity: O(1).
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// Fill overwrites the whole matrix from a row-major buffer of length r*c.
// The buffer is validated entirely before any write.
// Complexity: O(r*c).
func (m *Dense) Fill(data []float64) error {
	if len(data) != len(m.data) {
		return matrixErrorf("Dense."+ctxFill, ErrDimensionMismatch)
	}
	for k, v := range data {
		if err := m.checkValue(v); err != nil {
			return denseErrorf(ctxFill, k/m.c, k%m.c, err)
		}
	}
	copy(m.data, data)

	return nil
}

// CopyFrom overwrites m with the contents of src (same shape required).
// The policy of m is kept; a nil m or src yields ErrNilMatrix.
// Complexity: O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if err := ValidateSameShape(m, src); err != nil {
		return matrixErrorf("Dense."+ctxCopyFrom, err)
	}
	copy(m.data, src.data)

	return nil
}

// Clone returns a deep copy of the Dense matrix, policy included.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf, opts: m.opts}
}

// Equal reports whether m and other have the same shape and bit-identical
// cells (+Inf equals +Inf).
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k, v := range m.data {
		if math.Float64bits(v) != math.Float64bits(other.data[k]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
