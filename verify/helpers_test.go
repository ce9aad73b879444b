package verify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netcheck/instance"
	"github.com/katalvlaran/netcheck/matrix"
	"github.com/katalvlaran/netcheck/solution"
)

// zeroInstance returns an n-node instance whose demand matrix is all zeros.
func zeroInstance(t *testing.T, n int) *instance.Instance {
	t.Helper()
	m, err := matrix.NewDense(n+1, n+1, matrix.WithNonNegative())
	require.NoError(t, err)

	return &instance.Instance{N: n, Demand: m}
}

// setDemand writes demand[k][i] = v.
func setDemand(t *testing.T, in *instance.Instance, k, i int, v int64) {
	t.Helper()
	require.NoError(t, in.Demand.Set(k, i, v))
}

// circulant returns a solution with x[(i, i+d mod n)] = 1 for each offset d.
// Two distinct offsets in [1,n-1] give every node in- and out-degree 2.
func circulant(n int, offsets ...int) *solution.Solution {
	sol := solution.New(n)
	for i := 1; i <= n; i++ {
		for _, d := range offsets {
			j := (i-1+d)%n + 1
			sol.X.Set(i, j, 1)
		}
	}

	return sol
}
