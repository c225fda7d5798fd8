// SPDX-License-Identifier: MIT

package quadratic

import (
	"math"
	"strconv"
	"strings"
)

// RootCount classifies the real solution set of an equation.
//
// The zero value is Invalid: it marks a Solution that has not been produced
// by a solver. Solve never returns it.
type RootCount int

const (
	// Invalid marks an uninitialized Solution.
	Invalid RootCount = iota
	// NoRoots: no real x satisfies the equation.
	NoRoots
	// OneRoot: exactly one real root (linear case or zero discriminant).
	OneRoot
	// TwoRoots: two distinct real roots.
	TwoRoots
	// InfiniteRoots: every x satisfies the equation (0 = 0).
	InfiniteRoots
)

// Codes used by the whitespace regression table format: the number of
// roots, with -1 for "infinitely many" and -2 for "invalid".
const (
	codeInvalid  = -2
	codeInfinite = -1
)

var rootCountNames = [...]string{
	Invalid:       "invalid",
	NoRoots:       "no roots",
	OneRoot:       "one root",
	TwoRoots:      "two roots",
	InfiniteRoots: "infinite roots",
}

// String returns a human-readable name ("no roots", "one root", ...).
func (rc RootCount) String() string {
	if rc < Invalid || rc > InfiniteRoots {
		return "RootCount(" + strconv.Itoa(int(rc)) + ")"
	}

	return rootCountNames[rc]
}

// Code returns the numeric code of rc: 0, 1 or 2 for finite counts,
// -1 for InfiniteRoots and -2 for Invalid (or any out-of-range value).
func (rc RootCount) Code() int {
	switch rc {
	case NoRoots:
		return 0
	case OneRoot:
		return 1
	case TwoRoots:
		return 2
	case InfiniteRoots:
		return codeInfinite
	default:
		return codeInvalid
	}
}

// RootCountFromCode is the inverse of Code for the four solver results.
// The Invalid code is rejected: a regression case cannot expect it.
func RootCountFromCode(code int) (RootCount, error) {
	switch code {
	case 0:
		return NoRoots, nil
	case 1:
		return OneRoot, nil
	case 2:
		return TwoRoots, nil
	case codeInfinite:
		return InfiniteRoots, nil
	}

	return Invalid, quadraticErrorf("RootCountFromCode", "code %d: %w", code, ErrUnknownRootCount)
}

// ParseRootCount accepts the String form and short aliases
// ("none", "one", "two", "infinite", "inf") case-insensitively.
// "invalid" is rejected for the same reason as in RootCountFromCode.
func ParseRootCount(s string) (RootCount, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no roots", "none", "no", "zero":
		return NoRoots, nil
	case "one root", "one", "single":
		return OneRoot, nil
	case "two roots", "two":
		return TwoRoots, nil
	case "infinite roots", "infinite", "inf", "infinity":
		return InfiniteRoots, nil
	}

	return Invalid, quadraticErrorf("ParseRootCount", "%q: %w", s, ErrUnknownRootCount)
}

// Root is one slot of a Solution: either a real value or unset.
// The zero value is unset.
type Root struct {
	value float64
	set   bool
}

// Value returns the root and whether the slot holds one.
func (r Root) Value() (float64, bool) { return r.value, r.set }

// IsSet reports whether the slot holds a root.
func (r Root) IsSet() bool { return r.set }

// Float returns the root, or the neutral 0 when the slot is unset.
func (r Root) Float() float64 {
	if !r.set {
		return 0
	}

	return r.value
}

// String formats the root with the shortest exact representation,
// or "-" when unset.
func (r Root) String() string {
	if !r.set {
		return "-"
	}

	return strconv.FormatFloat(r.value, 'g', -1, 64)
}

func someRoot(x float64) Root {
	return Root{value: canonical(x), set: true}
}

// canonical folds -0 into +0 so that results print and compare
// deterministically.
func canonical(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x
}

// Solution is the result of solving one equation.
// It is a plain value; copies are independent.
type Solution struct {
	// Count classifies the solution set.
	Count RootCount

	root1, root2 Root
}

// None returns a NoRoots solution.
func None() Solution { return Solution{Count: NoRoots} }

// Infinite returns an InfiniteRoots solution.
func Infinite() Solution { return Solution{Count: InfiniteRoots} }

// One returns a OneRoot solution holding x.
func One(x float64) Solution {
	return Solution{Count: OneRoot, root1: someRoot(x)}
}

// Two returns a TwoRoots solution with root1 ≤ root2, whatever the
// argument order.
func Two(x1, x2 float64) Solution {
	if x2 < x1 {
		x1, x2 = x2, x1
	}

	return Solution{Count: TwoRoots, root1: someRoot(x1), root2: someRoot(x2)}
}

// Root1 returns the first (smaller) root slot.
func (s Solution) Root1() Root { return s.root1 }

// Root2 returns the second (larger) root slot; set only for TwoRoots.
func (s Solution) Root2() Root { return s.root2 }

// Roots returns the set roots in ascending order (length 0, 1 or 2).
func (s Solution) Roots() []float64 {
	out := make([]float64, 0, 2)
	if v, ok := s.root1.Value(); ok {
		out = append(out, v)
	}
	if v, ok := s.root2.Value(); ok {
		out = append(out, v)
	}

	return out
}

// Overflow reports whether any set root is not a finite number: ±Inf when
// it is too large to represent, NaN when a coefficient was not finite.
func (s Solution) Overflow() bool {
	for _, r := range [2]Root{s.root1, s.root2} {
		if v, ok := r.Value(); ok && (math.IsInf(v, 0) || math.IsNaN(v)) {
			return true
		}
	}

	return false
}

// String renders e.g. "no roots", "one root: -1", "two roots: 1, 2".
func (s Solution) String() string {
	switch s.Count {
	case OneRoot:
		return s.Count.String() + ": " + s.root1.String()
	case TwoRoots:
		return s.Count.String() + ": " + s.root1.String() + ", " + s.root2.String()
	default:
		return s.Count.String()
	}
}

// Coefficients is the ordered triple (a, b, c) of a·x² + b·x + c = 0.
type Coefficients struct {
	A float64 // leading coefficient
	B float64 // coefficient at x
	C float64 // free coefficient
}

// Validate returns a wrapped ErrInvalidInput naming the first coefficient
// that is NaN or ±Inf, or nil when all three are finite.
func (c Coefficients) Validate() error {
	for _, f := range [...]struct {
		name string
		v    float64
	}{{"a", c.A}, {"b", c.B}, {"c", c.C}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return quadraticErrorf("Validate", "%s = %v: %w", f.name, f.v, ErrInvalidInput)
		}
	}

	return nil
}

// Eval returns a·x² + b·x + c (Horner form). For a root the result is the
// residual and should be close to zero.
func (c Coefficients) Eval(x float64) float64 {
	return (c.A*x+c.B)*x + c.C
}

// String formats the triple as "a=1 b=-3 c=2".
func (c Coefficients) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	return "a=" + f(c.A) + " b=" + f(c.B) + " c=" + f(c.C)
}
