package instance

import (
	"errors"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/netcheck/matrix"
)

// Instance size limits of the benchmark family.
const (
	DefaultMinNodes = 5
	DefaultMaxNodes = 24
)

// MaxValue bounds every demand, arc and flow value read from a file. Sums of
// n such values, and a demand times any scale up to MaxValue, stay within int64.
const MaxValue int64 = math.MaxInt32

// Bounds is the inclusive range of accepted node counts.
type Bounds struct {
	Min, Max int
}

// DefaultBounds returns [DefaultMinNodes, DefaultMaxNodes].
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinNodes, Max: DefaultMaxNodes}
}

// Contains reports whether n lies in [b.Min, b.Max].
func (b Bounds) Contains(n int) bool { return n >= b.Min && n <= b.Max }

// ValidateNodeCount returns an error wrapping ErrNodeCount when n is outside b.
func ValidateNodeCount(n int, b Bounds) error {
	if !b.Contains(n) {
		return fmt.Errorf("%w: instance_size must be between %d and %d, got %d", ErrNodeCount, b.Min, b.Max, n)
	}

	return nil
}

// Instance is an immutable node count plus its demand matrix.
type Instance struct {
	N      int
	Demand *matrix.Dense // (N+1)×(N+1), row/col 0 unused
}

// Option configures parsing and loading.
type Option func(*options)

type options struct {
	logger *zap.Logger
	bounds Bounds
}

// WithLogger routes debug diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBounds overrides the accepted node-count range used by Load.
func WithBounds(b Bounds) Option {
	return func(o *options) { o.bounds = b }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: zap.NewNop(), bounds: DefaultBounds()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Load validates n against the configured bounds before touching the
// filesystem, then reads and parses the demand file at path.
func Load(n int, path string, opts ...Option) (*Instance, error) {
	o := gatherOptions(opts...)
	if err := ValidateNodeCount(n, o.bounds); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	demand, err := parseDemand(f, n, o)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		return nil, err
	}
	o.logger.Debug("demand matrix loaded", zap.String("path", path), zap.Int("n", n))

	return &Instance{N: n, Demand: demand}, nil
}
