// SPDX-License-Identifier: MIT

// Package matrix: shape validators.
//
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Each validator describes what it validates and what it assumes.

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including typed nil pointers stored in the interface.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (or a typed nil pointer).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows()==Cols().
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareOf ensures m is square with exactly n rows.
// Returns ErrNonSquare for rectangular input and ErrDimensionMismatch for a
// square matrix of the wrong order.
// Complexity: O(1).
func ValidateSquareOf(m Matrix, n int) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.Rows() != n {
		return validatorErrorf("ValidateSquareOf",
			fmt.Errorf("order %d, want %d: %w", m.Rows(), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}
