// SPDX-License-Identifier: MIT

package numeric

import "math"

// Numeric policy defaults (single source of truth).
const (
	// DefaultTolerance is the absolute tolerance used across the module
	// to treat coefficients and discriminants as zero.
	DefaultTolerance = 1e-6

	// DefaultRelativeTolerance is 0: comparisons are purely absolute
	// unless a caller opts in with WithRelativeTolerance.
	DefaultRelativeTolerance = 0.0
)

const (
	panicToleranceInvalid    = "numeric: WithTolerance: tol must be finite, non-negative"
	panicRelToleranceInvalid = "numeric: WithRelativeTolerance: rtol must be finite, non-negative"
)

// Option mutates a Comparator under construction.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Comparator)

// WithTolerance sets the absolute tolerance.
//
// Panics when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if !validTolerance(tol) {
		panic(panicToleranceInvalid)
	}

	return func(c *Comparator) { c.tol = tol }
}

// WithRelativeTolerance sets the relative tolerance used by Comparator.Equal.
//
// Panics when rtol is NaN, ±Inf or negative.
func WithRelativeTolerance(rtol float64) Option {
	if !validTolerance(rtol) {
		panic(panicRelToleranceInvalid)
	}

	return func(c *Comparator) { c.rtol = rtol }
}

// ValidTolerance reports whether t is usable as a tolerance
// (finite and non-negative). Flag parsers use it to reject input
// before it reaches a panicking option constructor.
func ValidTolerance(t float64) bool { return validTolerance(t) }

func validTolerance(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0) && t >= 0
}
