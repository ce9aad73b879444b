package solution

import (
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/netcheck/instance"
	"github.com/katalvlaran/netcheck/sparse"
)

// Solution holds the parsed variables of one candidate solution.
type Solution struct {
	N int
	X *sparse.ArcMap  // arc selection x[(i,j)]
	F *sparse.FlowMap // scaled commodity flow f[(k,i,j)]
	Z int64           // claimed objective, 0 if never declared
}

// New returns an empty solution for n nodes.
func New(n int) *Solution {
	return &Solution{N: n, X: sparse.NewArcMap(), F: sparse.NewFlowMap()}
}

// Option configures parsing.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes debug diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Load opens path and parses it for an instance of n nodes. Open and read
// failures are reported as *instance.IOError.
func Load(path string, n int, opts ...Option) (*Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &instance.IOError{Path: path, Err: err}
	}
	defer f.Close()

	sol, err := Parse(f, n, opts...)
	if err != nil {
		var ioErr *instance.IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		return nil, err
	}

	return sol, nil
}
