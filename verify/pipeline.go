package verify

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/netcheck/core"
	"github.com/katalvlaran/netcheck/instance"
	"github.com/katalvlaran/netcheck/matrix"
	"github.com/katalvlaran/netcheck/solution"
)

// outcome tags the result of one pipeline step.
type outcome int

const (
	proceed outcome = iota // check passed, continue with the next one
	fail                   // constraint violated, stop with Invalid
	abort                  // input unusable, stop with Error
)

// step is the tagged result of one check.
type step struct {
	outcome   outcome
	violation Violation
	err       error
}

// stepOf converts a validator's (Violation, error) pair into a step.
func stepOf(v Violation, err error) step {
	switch {
	case err != nil:
		return step{outcome: abort, err: err}
	case v != nil:
		return step{outcome: fail, violation: v}
	default:
		return step{outcome: proceed}
	}
}

// check is a named pipeline stage.
type check struct {
	name string
	run  func() step
}

// runner holds the state of one verification run.
type runner struct {
	in    *instance.Instance
	sol   *solution.Solution
	opts  Options
	graph *core.Graph // built on first use from sol.X
}

func (r *runner) arcGraph() (*core.Graph, error) {
	if r.graph != nil {
		return r.graph, nil
	}
	g, err := BuildArcGraph(r.in.N, r.sol.X)
	if err != nil {
		return nil, err
	}
	r.graph = g
	r.opts.Logger.Debug("arc graph built",
		zap.Int("vertices", g.VertexCount()),
		zap.Int("arcs", g.ArcCount()),
	)

	return g, nil
}

// checks lists the fail-fast stages in their fixed order.
func (r *runner) checks() []check {
	n := r.in.N
	return []check{
		{name: "out-degree", run: func() step {
			g, err := r.arcGraph()
			if err != nil {
				return stepOf(nil, err)
			}
			return stepOf(CheckOutDegree(g, n, r.opts.Degree))
		}},
		{name: "in-degree", run: func() step {
			g, err := r.arcGraph()
			if err != nil {
				return stepOf(nil, err)
			}
			return stepOf(CheckInDegree(g, n, r.opts.Degree))
		}},
		{name: "flow-conservation", run: func() step {
			return stepOf(CheckFlowConservation(n, r.in.Demand, r.sol.F, r.opts.Scale))
		}},
		{name: "capacity", run: func() step {
			g, err := r.arcGraph()
			if err != nil {
				return stepOf(nil, err)
			}
			return stepOf(CheckCapacity(g, n, r.sol.F))
		}},
	}
}

// Run verifies sol against in. The structural and flow checks stop at the
// first violation (Invalid). When all pass, the objective is reconciled
// and the verdict is Valid regardless of a mismatch.
func Run(in *instance.Instance, sol *solution.Solution, opts Options) Result {
	opts.normalize()
	if err := validatePair(in, sol); err != nil {
		return Failed(err)
	}

	r := &runner{in: in, sol: sol, opts: opts}
	for _, c := range r.checks() {
		s := c.run()
		switch s.outcome {
		case fail:
			opts.Logger.Debug("check failed", zap.String("check", c.name), zap.Stringer("violation", s.violation))
			return Result{Verdict: Invalid, Violation: s.violation}
		case abort:
			opts.Logger.Debug("check aborted", zap.String("check", c.name), zap.Error(s.err))
			return Failed(s.err)
		}
		opts.Logger.Debug("check passed", zap.String("check", c.name))
	}

	obj, err := ReconcileObjective(in.N, sol.F, sol.Z)
	if err != nil {
		opts.Logger.Debug("objective aborted", zap.Error(err))
		return Failed(err)
	}
	opts.Logger.Debug("objective reconciled",
		zap.Int64("implied", obj.Implied),
		zap.Int64("claimed", obj.Claimed),
		zap.Bool("mismatch", obj.Mismatch()),
	)

	return Result{Verdict: Valid, Objective: &obj}
}

// Check validates n against opts.Bounds before reading anything, loads both
// files and runs the pipeline. Usage, IO, format and index errors all map
// to an Error verdict.
func Check(n int, demandPath, solutionPath string, opts Options) Result {
	opts.normalize()
	if err := instance.ValidateNodeCount(n, opts.Bounds); err != nil {
		return Failed(err)
	}

	in, err := instance.Load(n, demandPath, instance.WithBounds(opts.Bounds), instance.WithLogger(opts.Logger))
	if err != nil {
		return Failed(err)
	}
	sol, err := solution.Load(solutionPath, n, solution.WithLogger(opts.Logger))
	if err != nil {
		return Failed(err)
	}

	return Run(in, sol, opts)
}

func validatePair(in *instance.Instance, sol *solution.Solution) error {
	switch {
	case in == nil || in.Demand == nil:
		return fmt.Errorf("%w: missing instance", ErrShape)
	case sol == nil || sol.X == nil || sol.F == nil:
		return fmt.Errorf("%w: missing solution", ErrShape)
	case in.N != sol.N:
		return fmt.Errorf("%w: instance has %d nodes, solution was parsed for %d", ErrShape, in.N, sol.N)
	}
	if err := matrix.ValidateIndexed(in.Demand, in.N); err != nil {
		return fmt.Errorf("%w: demand: %w", ErrShape, err)
	}

	return nil
}
