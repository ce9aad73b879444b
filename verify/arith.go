package verify

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow reports a flow sum, scaled demand or arc total outside int64.
// Checks never compare wrapped values.
var ErrOverflow = errors.New("verify: arithmetic overflows int64")

func overflowf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrOverflow}, args...)...)
}

func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}

func subChecked(a, b int64) (int64, bool) {
	if b == math.MinInt64 {
		return 0, false
	}

	return addChecked(a, -b)
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}
