// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with %w and
// method context) and tests check them via errors.Is. No algorithm panics on
// user-triggered error conditions; panics are reserved for option
// constructors that receive nonsensical values.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/RowView) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// (Fill with a wrong-length buffer, CopyFrom between different shapes).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or Inf value was rejected by the numeric policy.
	// Under WithAllowInfDistances only +Inf is admitted; NaN and -Inf are still rejected.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeEntry signals a finite negative value written into a matrix
	// created WithNonNegative (cost matrices).
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf prefixes err with an operation tag, preserving the sentinel.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
