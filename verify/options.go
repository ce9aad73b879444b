package verify

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/netcheck/instance"
)

// Defaults of the benchmark family.
const (
	// DefaultScale is the integer factor applied to demands and flows.
	DefaultScale int64 = 1000

	// DefaultDegree is the required in- and out-degree of every node.
	DefaultDegree int64 = 2
)

// Options configures a verification run.
//   - Scale:  demand multiplier in the flow-conservation comparison.
//   - Degree: required weighted in/out degree per node.
//   - Bounds: accepted node counts (used by Check before reading files).
//   - Logger: debug diagnostics; nil means zap.NewNop().
type Options struct {
	Scale  int64
	Degree int64
	Bounds instance.Bounds
	Logger *zap.Logger
}

// DefaultOptions returns production defaults: Scale 1000, Degree 2,
// Bounds [5,24], no logging.
func DefaultOptions() Options {
	return Options{
		Scale:  DefaultScale,
		Degree: DefaultDegree,
		Bounds: instance.DefaultBounds(),
		Logger: zap.NewNop(),
	}
}

// normalize fills zero values with defaults.
func (o *Options) normalize() {
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Degree == 0 {
		o.Degree = DefaultDegree
	}
	if o.Bounds == (instance.Bounds{}) {
		o.Bounds = instance.DefaultBounds()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}
