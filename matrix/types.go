// SPDX-License-Identifier: MIT

// Package matrix: the read/write surface shared by validators and algorithms.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Every method enforces bounds checking and returns errors on misuse.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, or a numeric policy error.
	Set(i, j int, v float64) error
}
