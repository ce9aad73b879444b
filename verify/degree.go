package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netcheck/core"
	"github.com/katalvlaran/netcheck/sparse"
)

// BuildArcGraph turns the arc selection x into a directed graph over
// vertices 1..n whose arc weights are the x values. Every node is present
// even if it has no arc, so degree queries never miss a vertex.
//
// Errors:
//   - ErrShape (wrapped) if x holds an arc outside [1,n] or a self-loop.
func BuildArcGraph(n int, x *sparse.ArcMap) (*core.Graph, error) {
	g := core.NewGraph()
	for v := 1; v <= n; v++ {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrShape, v, err)
		}
	}
	for _, a := range x.Keys() {
		if a.From < 1 || a.From > n || a.To < 1 || a.To > n {
			return nil, fmt.Errorf("%w: arc (%d, %d) outside [1,%d]", ErrShape, a.From, a.To, n)
		}
		if err := g.AddArc(a.From, a.To, x.Get(a.From, a.To)); err != nil {
			return nil, fmt.Errorf("%w: arc (%d, %d): %v", ErrShape, a.From, a.To, err)
		}
	}

	return g, nil
}

// CheckOutDegree returns the first node (ascending) whose weighted
// out-degree differs from want, or nil if every node matches. g must hold
// exactly the n nodes built by BuildArcGraph.
//
// Errors:
//   - ErrShape (wrapped) if g does not hold n nodes.
//   - ErrOverflow (wrapped) if a weighted degree leaves int64.
func CheckOutDegree(g *core.Graph, n int, want int64) (Violation, error) {
	return checkDegree(g, n, want, Out)
}

// CheckInDegree returns the first node (ascending) whose weighted
// in-degree differs from want, or nil if every node matches.
func CheckInDegree(g *core.Graph, n int, want int64) (Violation, error) {
	return checkDegree(g, n, want, In)
}

func checkDegree(g *core.Graph, n int, want int64, dir Direction) (Violation, error) {
	vertices := g.Vertices()
	if len(vertices) != n {
		return nil, fmt.Errorf("%w: arc graph has %d nodes, want %d", ErrShape, len(vertices), n)
	}
	for _, v := range vertices {
		in, out, err := g.Degree(v)
		if errors.Is(err, core.ErrWeightOverflow) {
			return nil, overflowf("%s-degree of node %d: %v", dir, v, err)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrShape, v, err)
		}
		observed := out
		if dir == In {
			observed = in
		}
		if observed != want {
			return DegreeViolation{Node: v, Direction: dir, Observed: observed, Expected: want}, nil
		}
	}

	return nil, nil
}
