package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/netcheck/matrix"
)

const (
	cellSep = "|"
	valSep  = ","

	// maxLineBytes bounds a single demand line; benchmark files carry
	// matrices wider than any accepted n.
	maxLineBytes = 1 << 20
)

// ParseDemand reads a demand matrix for n nodes from r.
//
// Steps:
//  1. Scan lines; keep only |label|values lines with label in [1,n].
//  2. Take the first n comma-separated values of each kept line.
//  3. Require exactly n distinct rows, each with n integers in [0, MaxValue].
//
// The result is (n+1)×(n+1) with row/column 0 left at zero. No partial
// matrix is ever returned.
//
// Errors:
//   - *FormatError (errors.Is ErrFormat) for count mismatches, duplicate
//     rows, unparsable or negative values, and values above MaxValue.
//   - *IOError if r fails mid-read.
func ParseDemand(r io.Reader, n int, opts ...Option) (*matrix.Dense, error) {
	return parseDemand(r, n, gatherOptions(opts...))
}

func parseDemand(r io.Reader, n int, o options) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNodeCount, n)
	}
	demand, err := matrix.NewDense(n+1, n+1, matrix.WithNonNegative())
	if err != nil {
		return nil, err
	}

	seen := make([]bool, n+1)
	rows, skipped := 0, 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		row, fields, ok := splitDemandLine(sc.Text(), n)
		if !ok {
			skipped++
			continue
		}
		if seen[row] {
			return nil, &FormatError{Row: row, Reason: "row appears more than once"}
		}
		if err := fillDemandRow(demand, row, fields, n); err != nil {
			return nil, err
		}
		seen[row] = true
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, &IOError{Err: err}
	}

	if rows != n {
		return nil, &FormatError{
			Reason: fmt.Sprintf("demand file has %d rows (up to row %d), expected %d", rows, n, n),
		}
	}
	o.logger.Debug("demand matrix parsed", zap.Int("rows", rows), zap.Int("skipped_lines", skipped))

	return demand, nil
}

// splitDemandLine extracts the row label and raw value fields of a data
// line. ok is false for lines that are not |label|values shaped or whose
// label is not an integer in [1,n]; such lines are skipped silently.
func splitDemandLine(line string, n int) (row int, fields []string, ok bool) {
	trimmed := strings.TrimSpace(line)
	first := strings.Index(trimmed, cellSep)
	if first < 0 {
		return 0, nil, false
	}
	rest := trimmed[first+1:]
	second := strings.Index(rest, cellSep)
	if second < 0 {
		return 0, nil, false
	}

	row, err := strconv.Atoi(strings.TrimSpace(rest[:second]))
	if err != nil || row < 1 || row > n {
		return 0, nil, false
	}

	values := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(rest[second+1:]), cellSep))
	if values == "" {
		return row, nil, true
	}

	return row, strings.Split(values, valSep), true
}

// fillDemandRow parses the first n fields into demand[row][1..n].
func fillDemandRow(demand *matrix.Dense, row int, fields []string, n int) error {
	if len(fields) > n {
		fields = fields[:n]
	}
	if len(fields) != n {
		return &FormatError{
			Row:    row,
			Reason: fmt.Sprintf("has %d values (after taking first %d), expected %d", len(fields), n, n),
		}
	}

	for j, raw := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return &FormatError{Row: row, Reason: fmt.Sprintf("column %d: cannot parse %q", j+1, strings.TrimSpace(raw))}
		}
		if v > MaxValue {
			return &FormatError{Row: row, Reason: fmt.Sprintf("column %d: value %d exceeds %d", j+1, v, MaxValue)}
		}
		if err := demand.Set(row, j+1, v); err != nil {
			return &FormatError{Row: row, Reason: fmt.Sprintf("column %d: value %d must be non-negative", j+1, v)}
		}
	}

	return nil
}
