package verify_test

import (
	"fmt"

	"github.com/katalvlaran/netcheck/instance"
	"github.com/katalvlaran/netcheck/matrix"
	"github.com/katalvlaran/netcheck/solution"
	"github.com/katalvlaran/netcheck/verify"
)

// ExampleRun verifies a 5-node solution where commodity 1 delivers three
// units to node 2 over the selected arc (1,2).
func ExampleRun() {
	demand, _ := matrix.NewDense(6, 6, matrix.WithNonNegative())
	_ = demand.Set(1, 2, 3)
	in := &instance.Instance{N: 5, Demand: demand}

	sol := solution.New(5)
	for i := 1; i <= 5; i++ {
		sol.X.Set(i, i%5+1, 1)
		sol.X.Set(i, (i+1)%5+1, 1)
	}
	sol.F.Set(1, 1, 2, 3000)
	sol.Z = 2000

	res := verify.Run(in, sol, verify.DefaultOptions())
	fmt.Println(res.Verdict)
	fmt.Println(res.Objective.Warning())
	// Output:
	// VALID
	// Computed objective (3000) doesn't match solution objective (2000)
}
