package verify

import (
	"errors"

	"github.com/katalvlaran/netcheck/core"
	"github.com/katalvlaran/netcheck/sparse"
)

// CheckCapacity verifies that no commodity uses an unselected arc: for every
// (i,j), i ≠ j, with x[(i,j)] == 0 (absent included), f[(k,i,j)] must be 0
// for every commodity k ≠ j. Flow of commodity j on an arc into j is not
// checked.
//
// Only written flow entries are visited. The reported violation is the
// first in (i, j, k) ascending order, or nil.
//
// Errors:
//   - any error from g other than core.ErrArcNotFound.
func CheckCapacity(g *core.Graph, n int, f *sparse.FlowMap) (Violation, error) {
	var (
		first CapacityViolation
		found bool
	)
	for _, key := range f.Keys() {
		k, i, j := key.Commodity, key.From, key.To
		if !inRange(k, n) || !inRange(i, n) || !inRange(j, n) || i == j || k == j {
			continue
		}
		flow := f.Get(k, i, j)
		if flow == 0 {
			continue
		}
		selected, err := g.Weight(i, j)
		if err != nil && !errors.Is(err, core.ErrArcNotFound) {
			return nil, err
		}
		if selected != 0 {
			continue
		}
		cand := CapacityViolation{Commodity: k, From: i, To: j, Flow: flow}
		if !found || capacityBefore(cand, first) {
			first, found = cand, true
		}
	}
	if !found {
		return nil, nil
	}

	return first, nil
}

// capacityBefore orders violations by arc, then commodity.
func capacityBefore(a, b CapacityViolation) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	if a.To != b.To {
		return a.To < b.To
	}

	return a.Commodity < b.Commodity
}

func inRange(v, n int) bool { return v >= 1 && v <= n }
