// SPDX-License-Identifier: MIT

// Package numeric decides when two float64 values are "the same number".
//
// Floating-point arithmetic rounds. A discriminant that is mathematically
// zero may come out as 4.4e-16, and a coefficient typed as 0.0000001 is,
// for the purposes of classifying an equation, zero. numeric centralizes
// that decision so every caller uses one policy.
//
// ✨ Key features:
//   - IsEqual:  absolute comparison |x − y| ≤ tol
//   - IsZero:   IsEqual against 0
//   - IsClose:  absolute + relative comparison for large magnitudes
//   - Comparator: a value type carrying the tolerances, built with options
//
// NaN policy:
//
//	|NaN − y| is NaN and every ordered comparison with NaN is false, so
//	NaN never compares equal to anything, NaN included. Callers rely on this
//	to keep "not yet computed" NaN sentinels distinct from a real zero.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/quadeq/numeric"
//
//	numeric.IsEqual(0.1+0.2, 0.3, numeric.DefaultTolerance) // true
//
//	cmp := numeric.NewComparator(numeric.WithTolerance(1e-9))
//	cmp.Zero(1e-10) // true
//
// All functions are pure and allocation-free; a Comparator may be shared
// across goroutines.
package numeric
