// SPDX-License-Identifier: MIT

package quadratic

import (
	"math"

	"github.com/katalvlaran/quadeq/numeric"
)

// Solver classifies and solves equations under one tolerance policy.
// It is an immutable value and safe for concurrent use.
type Solver struct {
	cmp numeric.Comparator
}

// NewSolver returns a Solver using numeric.DefaultTolerance unless
// overridden by opts.
func NewSolver(opts ...Option) Solver {
	s := Solver{cmp: numeric.NewComparator()}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Tolerance returns the absolute tolerance used for zero checks.
func (s Solver) Tolerance() float64 { return s.cmp.Tolerance() }

// Solve solves a·x² + b·x + c = 0 with the default tolerance.
func Solve(a, b, c float64) Solution {
	return NewSolver().Solve(a, b, c)
}

// SolveCoefficients is Solve for a Coefficients triple.
func SolveCoefficients(c Coefficients) Solution {
	return NewSolver().Solve(c.A, c.B, c.C)
}

// Discriminant returns b² − 4ac. It may be ±Inf for extreme inputs.
func Discriminant(a, b, c float64) float64 {
	return b*b - 4*a*c
}

// Solve classifies a·x² + b·x + c = 0 and returns its roots.
//
// Implementation:
//   - Stage 1: discriminant, computed before any branch.
//   - Stage 2: degenerate cases on a≈0, in priority order
//     (identity, contradiction, linear).
//   - Stage 3: quadratic case on the discriminant.
//
// The branch order is load-bearing: each condition assumes the previous
// ones were false (e.g. the linear branch divides by b only because the
// b≈0 branches ran first).
//
// Complexity: O(1), no allocations.
func (s Solver) Solve(a, b, c float64) Solution {
	// Discriminant first; it may overflow to ±Inf or, when b² and 4ac
	// both overflow, to NaN.
	d := Discriminant(a, b, c)

	// Degenerate cases, strictly in this order
	aZero, bZero := s.cmp.Zero(a), s.cmp.Zero(b)
	switch {
	case aZero && bZero && s.cmp.Zero(c):
		// 0 = 0
		return Infinite()
	case aZero && bZero:
		// c = 0 with c≉0
		return None()
	case aZero:
		return One(-c / b)
	}

	// Genuine quadratic
	return s.quadratic(a, b, c, d)
}

// SolveCoefficients is Solve for a Coefficients triple.
func (s Solver) SolveCoefficients(c Coefficients) Solution {
	return s.Solve(c.A, c.B, c.C)
}

// quadratic handles a≉0. Negating all three coefficients leaves the roots
// and d = b² − 4ac unchanged, and with a > 0 the "−√d" root is the
// smaller one. Roots are divided by a, then by 2, so 2a never overflows.
func (s Solver) quadratic(a, b, c, d float64) Solution {
	// Normalize the sign of a for root ordering
	if a < 0 {
		a, b, c = -a, -b, -c
	}

	// Inf − Inf: the sign of d is lost, recover it on scaled inputs
	if math.IsNaN(d) && finite(a, b, c) {
		return scaledQuadratic(a, b, c)
	}

	// Classify on d; a +Inf discriminant takes the two-root branch
	// and yields infinite roots (see Solution.Overflow)
	switch {
	case s.cmp.Zero(d):
		return One(-b / a / 2)
	case d < 0:
		return None()
	}

	sq := math.Sqrt(d)

	return Two((-b-sq)/a/2, (-b+sq)/a/2)
}

// scaledQuadratic solves with a, b and c divided by the power of two just
// above max(|a|, |b|, |c|). The division is exact, the scaled products no
// longer overflow, and the roots are unchanged. a must be positive.
//
// A scaled discriminant of exactly 0 is the only one within tolerance of
// zero: unscaled, any other value is at least of order 2^-1074·s².
func scaledQuadratic(a, b, c float64) Solution {
	// Scale into (-1, 1) by 2^-exp
	_, exp := math.Frexp(math.Max(a, math.Max(math.Abs(b), math.Abs(c))))
	a, b, c = math.Ldexp(a, -exp), math.Ldexp(b, -exp), math.Ldexp(c, -exp)

	// Same classification as quadratic, on the scaled discriminant
	d := b*b - 4*a*c
	switch {
	case d == 0:
		return One(-b / a / 2)
	case d < 0:
		return None()
	}

	sq := math.Sqrt(d)

	return Two((-b-sq)/a/2, (-b+sq)/a/2)
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
