package verify

import (
	"fmt"

	"github.com/katalvlaran/netcheck/matrix"
	"github.com/katalvlaran/netcheck/sparse"
)

// CheckFlowConservation verifies, for every commodity k and node i ≠ k,
//
//	in(k,i)  = Σ_{j≠i} f[(k,j,i)]
//	out(k,i) = Σ_{j≠i, j≠k} f[(k,i,j)]
//	in − out == demand[k][i] · scale
//
// with exact integer equality. It returns the first violation in
// (k, i) ascending order, or nil.
//
// Errors:
//   - ErrShape (wrapped) if demand is smaller than (n+1)×(n+1).
//   - ErrOverflow (wrapped) if a sum, the net or the scaled demand leaves int64.
func CheckFlowConservation(n int, demand *matrix.Dense, f *sparse.FlowMap, scale int64) (Violation, error) {
	for k := 1; k <= n; k++ {
		row, err := demand.Row(k)
		if err != nil {
			return nil, fmt.Errorf("%w: demand row %d: %v", ErrShape, k, err)
		}
		if len(row) < n+1 {
			return nil, fmt.Errorf("%w: demand row %d has %d columns, need %d", ErrShape, k, len(row), n+1)
		}

		for i := 1; i <= n; i++ {
			if i == k {
				continue
			}
			in, out, err := nodeFlows(n, f, k, i)
			if err != nil {
				return nil, err
			}
			net, ok := subChecked(in, out)
			if !ok {
				return nil, overflowf("net flow of commodity %d at node %d", k, i)
			}
			expected, ok := mulChecked(row[i], scale)
			if !ok {
				return nil, overflowf("demand[%d][%d]=%d times scale %d", k, i, row[i], scale)
			}

			if net != expected {
				return ConservationViolation{
					Commodity: k,
					Node:      i,
					FlowIn:    in,
					FlowOut:   out,
					Net:       net,
					Expected:  expected,
				}, nil
			}
		}
	}

	return nil, nil
}

// nodeFlows sums the inflow and outflow of commodity k at node i.
func nodeFlows(n int, f *sparse.FlowMap, k, i int) (in, out int64, err error) {
	var ok bool
	for j := 1; j <= n; j++ {
		if j == i {
			continue
		}
		if in, ok = addChecked(in, f.Get(k, j, i)); !ok {
			return 0, 0, overflowf("inflow of commodity %d at node %d", k, i)
		}
		if j == k {
			continue
		}
		if out, ok = addChecked(out, f.Get(k, i, j)); !ok {
			return 0, 0, overflowf("outflow of commodity %d at node %d", k, i)
		}
	}

	return in, out, nil
}
