package instance

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeCount indicates a node count outside the accepted instance size range.
	ErrNodeCount = errors.New("instance: node count out of range")

	// ErrFormat is the sentinel behind every *FormatError.
	ErrFormat = errors.New("instance: malformed demand matrix")

	// ErrIO is the sentinel behind every *IOError.
	ErrIO = errors.New("instance: cannot read file")
)

// FormatError describes why a demand matrix could not be parsed.
// Row is 0 when the problem is not tied to a single row.
type FormatError struct {
	Row    int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("instance: demand row %d: %s", e.Row, e.Reason)
	}

	return "instance: " + e.Reason
}

// Is makes errors.Is(err, ErrFormat) true for any *FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// IOError wraps a failure to open or read an input file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot open file %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying os/io error.
func (e *IOError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrIO) true for any *IOError.
func (e *IOError) Is(target error) bool { return target == ErrIO }
