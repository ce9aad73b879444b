// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape/nil guards used by consumers of Dense.
//   - Return sentinels wrapped with a validator tag so callers can errors.Is.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates a matrix whose shape differs from the one required.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and Rows == Cols.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if rows, cols := m.Shape(); rows != cols {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndexed checks that m is a square table addressable with
// 1-based indices 1..n, i.e. at least (n+1)×(n+1).
//
// Complexity: O(1).
func ValidateIndexed(m *Dense, n int) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if rows, cols := m.Shape(); rows < n+1 {
		return validatorErrorf(fmt.Sprintf("ValidateIndexed(%d): %dx%d", n, rows, cols), ErrDimensionMismatch)
	}

	return nil
}
