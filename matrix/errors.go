// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All accessors return these sentinels (possibly wrapped with method context);
// callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegative signals a negative value written into a matrix whose
	// numeric policy requires non-negative entries.
	ErrNegative = errors.New("matrix: negative value not allowed")

	// ErrNilMatrix indicates that a nil *Dense receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
