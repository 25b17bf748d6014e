// SPDX-License-Identifier: MIT

// Package pfs: functional options for New.
//
// Design goals (same as the rest of the module):
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical parameters
//     (programmer error); data errors are returned from New.
package pfs

import "math"

// Numeric policy defaults.
const (
	// DefaultEpsilon is the rounding tolerance applied to the ξ+ζ+η ≤ 1 bound
	// and to negative hesitancy.
	DefaultEpsilon = 1e-3

	// DefaultLabelPrefix is prepended to the 1-based index when labels are
	// synthesized: x1, x2, ...
	DefaultLabelPrefix = "x"
)

const panicEpsilonInvalid = "pfs: WithEpsilon: eps must be finite, non-negative"

// Option configures New.
type Option func(*Options)

// Options holds the effective configuration of one New call.
// Fields are unexported; use the WithX constructors.
type Options struct {
	eps    float64  // ≥ 0; DefaultEpsilon
	labels []string // nil ⇒ synthesized x1..xn
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions applies opts on top of the defaults in order.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithElements names the elements of the set. The number of labels must match
// the number of values passed to New, otherwise New returns ErrShapeMismatch.
// The slice is copied.
func WithElements(labels ...string) Option {
	cp := append([]string(nil), labels...)

	return func(o *Options) { o.labels = cp }
}

// WithEpsilon replaces the rounding tolerance ε.
//
// Panics when eps is NaN, ±Inf or negative. eps = 0 makes the sum bound and
// the hesitancy check exact.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}
