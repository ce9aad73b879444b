// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major int64 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row: O(c).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so callers can use errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - nonNegative enables rejection of negative values in Set.
type Dense struct {
	r, c        int     // row and column counts (> 0)
	data        []int64 // contiguous row-major storage (len == r*c)
	nonNegative bool    // numeric guard: reject v < 0 in Set when true
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows ≤ 0 or cols ≤ 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:           rows,
		c:           cols,
		data:        make([]int64, rows*cols), // make() zero-fills deterministically
		nonNegative: o.nonNegative,
	}, nil
}

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf maps (row, col) to the flat offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped as "Dense.At(i,j): ...") for invalid coordinates.
//   - ErrNilMatrix on a nil receiver.
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col).
//
// Errors:
//   - ErrOutOfRange for invalid coordinates.
//   - ErrNegative if v < 0 and the matrix was built WithNonNegative.
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.nonNegative && v < 0 {
		return denseErrorf(ctxSet, row, col, ErrNegative)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i. Mutating the result does not affect m.
//
// Complexity: O(c).
func (m *Dense) Row(i int) ([]int64, error) {
	off, err := m.indexOf(i, 0)
	if err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	out := make([]int64, m.c)
	copy(out, m.data[off:off+m.c])

	return out, nil
}
