// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer storage used for instance data
// such as the demand matrix of a multi-commodity flow instance.
//
// A Dense is a row-major buffer of int64 values with bounds-checked
// accessors. Public indexers never panic on user input: At and Set return
// ErrOutOfRange (wrapped with the method name and coordinates), and a Dense
// built WithNonNegative rejects negative values in Set with ErrNegative.
//
// Layout:
//
//	offset(i, j) = i*cols + j
//
// Instances in this module are 1-indexed, so a demand matrix for n nodes is
// allocated as (n+1)×(n+1) and row/column 0 stay zero.
//
// Errors:
//
//	ErrInvalidDimensions - rows or cols ≤ 0 at construction.
//	ErrOutOfRange        - At/Set/Row outside [0,rows)×[0,cols).
//	ErrNegative          - Set of a negative value under WithNonNegative.
//	ErrDimensionMismatch - ValidateSquare/ValidateIndexed on a wrongly shaped Dense.
//
// Complexity:
//
//	NewDense O(r*c); At/Set O(1); Row O(c).
package matrix
