// SPDX-License-Identifier: MIT

package quadratic

import "github.com/katalvlaran/quadeq/numeric"

// Option configures a Solver. Safe to apply repeatedly; last writer wins.
type Option func(*Solver)

// WithTolerance sets the absolute tolerance below which coefficients and
// the discriminant are treated as zero.
//
// Panics when tol is NaN, ±Inf or negative (delegates to numeric.WithTolerance).
func WithTolerance(tol float64) Option {
	set := numeric.WithTolerance(tol)

	return func(s *Solver) { set(&s.cmp) }
}

// WithComparator replaces the whole comparison policy.
// Only the comparator's absolute tolerance affects classification.
func WithComparator(cmp numeric.Comparator) Option {
	return func(s *Solver) { s.cmp = cmp }
}
