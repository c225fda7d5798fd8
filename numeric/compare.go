// SPDX-License-Identifier: MIT

package numeric

import "math"

// IsEqual reports whether |x − y| ≤ tolerance.
//
// NaN in either argument yields false. Two infinities of the same sign also
// yield false, because Inf − Inf is NaN.
//
// Complexity: O(1), no allocations.
func IsEqual(x, y, tolerance float64) bool {
	return math.Abs(x-y) <= tolerance
}

// IsZero reports whether x lies within tolerance of zero.
func IsZero(x, tolerance float64) bool {
	return IsEqual(x, 0, tolerance)
}

// IsClose reports whether |x − y| ≤ atol + rtol·max(|x|, |y|).
//
// Implementation:
//   - Stage 1: absolute difference (NaN propagates and fails the check).
//   - Stage 2: bound = atol + rtol·max(|x|,|y|); max keeps the relation symmetric.
//
// With rtol = 0 it is exactly IsEqual(x, y, atol).
func IsClose(x, y, atol, rtol float64) bool {
	diff := math.Abs(x - y)
	if rtol == 0 {
		return diff <= atol
	}
	scale := math.Max(math.Abs(x), math.Abs(y))

	return diff <= atol+rtol*scale
}

// Comparator bundles an absolute and a relative tolerance.
// The zero value compares exactly (both tolerances 0); use NewComparator
// for the documented defaults.
type Comparator struct {
	tol  float64
	rtol float64
}

// NewComparator returns a Comparator with DefaultTolerance and
// DefaultRelativeTolerance, overridden by opts in order.
func NewComparator(opts ...Option) Comparator {
	c := Comparator{
		tol:  DefaultTolerance,
		rtol: DefaultRelativeTolerance,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Tolerance returns the absolute tolerance.
func (c Comparator) Tolerance() float64 { return c.tol }

// RelativeTolerance returns the relative tolerance.
func (c Comparator) RelativeTolerance() float64 { return c.rtol }

// Equal compares x and y with both tolerances (see IsClose).
func (c Comparator) Equal(x, y float64) bool {
	return IsClose(x, y, c.tol, c.rtol)
}

// Zero reports whether x is within the absolute tolerance of zero.
// The relative tolerance plays no part here: scaled by |x| it would
// let any large value pass as zero.
func (c Comparator) Zero(x float64) bool {
	return IsZero(x, c.tol)
}
