// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// Options are applied left-to-right.

package matrix

// DefaultNonNegative is the numeric policy of a Dense built without options.
const DefaultNonNegative = false

// Option configures a Dense at construction time.
type Option func(*Options)

// Options holds the resolved construction policy. Fields are unexported;
// use the WithX constructors.
type Options struct {
	nonNegative bool
}

// WithNonNegative makes Set reject negative values with ErrNegative.
func WithNonNegative() Option {
	return func(o *Options) { o.nonNegative = true }
}

// gatherOptions resolves opts on top of the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{nonNegative: DefaultNonNegative}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
