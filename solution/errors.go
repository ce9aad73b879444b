package solution

import (
	"errors"
	"fmt"
)

var (
	// ErrIndex is the sentinel behind every *IndexError.
	ErrIndex = errors.New("solution: variable index out of range")

	// ErrValue reports a directive whose value exceeds instance.MaxValue.
	ErrValue = errors.New("solution: value out of range")
)

// IndexError names a directive whose indices violate the instance bounds.
type IndexError struct {
	Var string // e.g. "x#0#3" or "f#2#4#4"
	N   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("solution: invalid %c variable indices: %s (n=%d)", e.Var[0], e.Var, e.N)
}

// Is makes errors.Is(err, ErrIndex) true for any *IndexError.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }
