package verify

import "github.com/katalvlaran/netcheck/sparse"

// ReconcileObjective computes the implied objective, the largest total flow
// Σ_{k≠j} f[(k,i,j)] over all arcs (i,j), and pairs it with the claimed
// value. Ties keep the first arc in (i, j) ascending order.
//
// Errors:
//   - ErrOverflow (wrapped) if an arc total leaves int64.
func ReconcileObjective(n int, f *sparse.FlowMap, claimed int64) (Objective, error) {
	totals := sparse.NewArcMap()
	for _, key := range f.Keys() {
		k, i, j := key.Commodity, key.From, key.To
		if !inRange(k, n) || !inRange(i, n) || !inRange(j, n) || i == j || k == j {
			continue
		}
		sum, ok := addChecked(totals.Get(i, j), f.Get(k, i, j))
		if !ok {
			return Objective{}, overflowf("total flow on arc (%d, %d)", i, j)
		}
		totals.Set(i, j, sum)
	}

	obj := Objective{Claimed: claimed}
	for _, a := range totals.Keys() {
		if total := totals.Get(a.From, a.To); total > obj.Implied {
			obj.Implied, obj.From, obj.To = total, a.From, a.To
		}
	}

	return obj, nil
}
