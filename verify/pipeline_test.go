package verify_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netcheck/instance"
	"github.com/katalvlaran/netcheck/matrix"
	"github.com/katalvlaran/netcheck/solution"
	"github.com/katalvlaran/netcheck/verify"
)

// TestScenarioValid: zero demand, 2-regular arc set, no flow, z=0.
func TestScenarioValid(t *testing.T) {
	for n := instance.DefaultMinNodes; n <= instance.DefaultMaxNodes; n++ {
		res := verify.Run(zeroInstance(t, n), circulant(n, 1, 2), verify.DefaultOptions())

		want := verify.Result{Verdict: verify.Valid, Objective: &verify.Objective{}}
		if diff := cmp.Diff(want, res); diff != "" {
			t.Fatalf("n=%d: unexpected result (-want +got):\n%s", n, diff)
		}
		require.False(t, res.Objective.Mismatch())
		require.Empty(t, res.Objective.Warning())
	}
}

// TestScenarioDegreeViolation: node 3 loses one outgoing arc.
func TestScenarioDegreeViolation(t *testing.T) {
	sol := circulant(6, 1, 2)
	sol.X.Set(3, 4, 0)

	res := verify.Run(zeroInstance(t, 6), sol, verify.DefaultOptions())
	require.Equal(t, verify.Invalid, res.Verdict)
	require.Nil(t, res.Objective)
	require.Equal(t, verify.DegreeViolation{Node: 3, Direction: verify.Out, Observed: 1, Expected: 2}, res.Violation)
	require.Equal(t, "Node 3 has out-degree 1 (expected 2)", res.Violation.String())
}

// TestScenarioCapacityViolation: x[(1,2)] absent, f[(1,1,2)] = 500, flows
// otherwise balanced so the capacity check is the first to fire.
func TestScenarioCapacityViolation(t *testing.T) {
	in := zeroInstance(t, 5)
	setDemand(t, in, 1, 2, 1)

	sol := circulant(5, 2, 3) // (1,2) is offset 1: unselected
	sol.F.Set(1, 1, 2, 500)
	sol.F.Set(1, 1, 3, 500)
	sol.F.Set(1, 3, 2, 500)

	res := verify.Run(in, sol, verify.DefaultOptions())
	require.Equal(t, verify.Invalid, res.Verdict)
	require.Equal(t, verify.CapacityViolation{Commodity: 1, From: 1, To: 2, Flow: 500}, res.Violation)
	require.Equal(t, verify.KindCapacity, res.Violation.Kind())
	require.Equal(t, "Flow 500 on non-existent edge (1, 2)", res.Violation.String())
	require.Equal(t, []string{"Commodity: 1"}, res.Violation.Details())
}

// TestScenarioObjectiveWarning: all checks pass, implied 3000, claimed 2000.
func TestScenarioObjectiveWarning(t *testing.T) {
	in := zeroInstance(t, 5)
	setDemand(t, in, 1, 2, 3)

	sol := circulant(5, 1, 2)
	sol.F.Set(1, 1, 2, 3000)
	sol.Z = 2000

	res := verify.Run(in, sol, verify.DefaultOptions())
	require.Equal(t, verify.Valid, res.Verdict)
	require.Nil(t, res.Violation)
	require.Equal(t, &verify.Objective{Implied: 3000, Claimed: 2000, From: 1, To: 2}, res.Objective)
	require.True(t, res.Objective.Mismatch())
	require.Equal(t, "Computed objective (3000) doesn't match solution objective (2000)", res.Objective.Warning())
}

// TestPipelineOrder: a solution violating every check reports out-degree first,
// then in-degree once out-degree is repaired, and so on.
func TestPipelineOrder(t *testing.T) {
	in := zeroInstance(t, 5)

	sol := circulant(5, 2, 3)
	sol.F.Set(2, 1, 2, 10) // capacity: (1,2) unselected, commodity 2 = head → ignored
	sol.F.Set(3, 1, 2, 10) // capacity and conservation violation
	sol.X.Set(5, 2, 0)     // move 5→2 to 5→1: out-degree of 5 stays 2,
	sol.X.Set(5, 1, 1)     // in-degree of 1 rises to 3

	res := verify.Run(in, sol, verify.DefaultOptions())
	require.Equal(t, verify.DegreeViolation{Node: 1, Direction: verify.In, Observed: 3, Expected: 2}, res.Violation)

	sol.X.Set(5, 2, 1)
	sol.X.Set(5, 1, 0)
	res = verify.Run(in, sol, verify.DefaultOptions())
	require.Equal(t, verify.KindConservation, res.Violation.Kind())

	sol.F.Set(3, 1, 2, 0)
	res = verify.Run(in, sol, verify.DefaultOptions())
	require.Equal(t, verify.Valid, res.Verdict, "flow of the head commodity is not a capacity violation")
}

// TestRunIdempotent: identical input, identical result.
func TestRunIdempotent(t *testing.T) {
	in := zeroInstance(t, 7)
	setDemand(t, in, 4, 6, 2)
	sol := circulant(7, 1, 3)
	sol.F.Set(4, 4, 5, 2000)
	sol.F.Set(4, 5, 6, 1999)

	first := verify.Run(in, sol, verify.DefaultOptions())
	for i := 0; i < 5; i++ {
		require.Empty(t, cmp.Diff(first, verify.Run(in, sol, verify.DefaultOptions())))
	}
	require.Equal(t, verify.Invalid, first.Verdict)
}

func TestRunShapeErrors(t *testing.T) {
	opts := verify.DefaultOptions()

	res := verify.Run(nil, solution.New(5), opts)
	require.Equal(t, verify.Error, res.Verdict)
	require.ErrorIs(t, res.Err, verify.ErrShape)

	res = verify.Run(zeroInstance(t, 5), solution.New(6), opts)
	require.Equal(t, verify.Error, res.Verdict)
	require.ErrorIs(t, res.Err, verify.ErrShape)

	small, err := matrix.NewDense(5, 5)
	require.NoError(t, err)
	res = verify.Run(&instance.Instance{N: 5, Demand: small}, solution.New(5), opts)
	require.ErrorIs(t, res.Err, verify.ErrShape)
	require.ErrorIs(t, res.Err, matrix.ErrDimensionMismatch)

	// An arc out of range can only come from hand-built solutions.
	sol := circulant(5, 1, 2)
	sol.X.Set(1, 9, 1)
	res = verify.Run(zeroInstance(t, 5), sol, opts)
	require.Equal(t, verify.Error, res.Verdict)
	require.True(t, errors.Is(res.Err, verify.ErrShape))
}

// TestRunOverflowIsError: a scaled demand that wraps int64 to zero must not
// be satisfied by zero flow.
func TestRunOverflowIsError(t *testing.T) {
	in := zeroInstance(t, 5)
	setDemand(t, in, 1, 2, 1<<61)

	res := verify.Run(in, circulant(5, 1, 2), verify.DefaultOptions())
	require.Equal(t, verify.Error, res.Verdict)
	require.ErrorIs(t, res.Err, verify.ErrOverflow)
	require.Nil(t, res.Objective)
}

// TestRunZeroOptions: a zero Options value behaves like DefaultOptions.
func TestRunZeroOptions(t *testing.T) {
	in := zeroInstance(t, 5)
	setDemand(t, in, 1, 2, 3)
	sol := circulant(5, 1, 2)
	sol.F.Set(1, 1, 2, 3000)
	sol.Z = 3000

	res := verify.Run(in, sol, verify.Options{})
	require.Equal(t, verify.Valid, res.Verdict)
	require.False(t, res.Objective.Mismatch())
}

func TestVerdictString(t *testing.T) {
	require.Equal(t, "VALID", verify.Valid.String())
	require.Equal(t, "INVALID", verify.Invalid.String())
	require.Equal(t, "ERROR", verify.Error.String())
	require.Equal(t, "Verdict(9)", verify.Verdict(9).String())
}
