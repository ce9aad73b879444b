// Package instance loads the instance side of a network-flow benchmark: the
// node count and the demand matrix.
//
// Demand files are pipe-delimited tables:
//
//	|   | 1, 2, 3, ...
//	|1  | 0, 24, 43, ...
//	|2  | 17, 0, 8, ...
//
// Each data line is |<row-label>|<comma separated non-negative integers>,
// with an optional trailing pipe and arbitrary whitespace. Lines whose label
// is not an integer in [1,n] are skipped, so header lines and rows beyond n
// are ignored; only the first n columns of each kept row are read. The file
// must provide exactly n distinct rows of at least n values each.
//
// The demand matrix is 1-indexed: Demand is (n+1)×(n+1) and demand[k][i] is
// the required net inflow of commodity k at node i.
//
// Errors:
//
//	ErrNodeCount - n outside the configured Bounds (a usage error).
//	ErrFormat    - matched by every *FormatError (row/column count, bad value).
//	ErrIO        - matched by every *IOError (missing or unreadable file).
package instance
