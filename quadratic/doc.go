// SPDX-License-Identifier: MIT

// Package quadratic solves a·x² + b·x + c = 0 over float64 and classifies
// the solution set.
//
// 🚀 What does it return?
//
//	A Solution: a RootCount (NoRoots, OneRoot, TwoRoots, InfiniteRoots) and
//	up to two tagged Root slots. Slots without a meaningful value are unset,
//	never filled with a placeholder that could be mistaken for a real root.
//
// Classification (evaluated strictly in this order, each step assumes the
// previous ones failed; "≈0" means within the solver's tolerance):
//
//  1. d = b² − 4ac is computed unconditionally.
//  2. a≈0, b≈0, c≈0 → InfiniteRoots (the identity 0 = 0).
//  3. a≈0, b≈0      → NoRoots (the false statement c = 0).
//  4. a≈0           → OneRoot, x = −c/b (linear case).
//  5. d≈0           → OneRoot, x = −b/(2a).
//     d<0           → NoRoots.
//     otherwise     → TwoRoots (−b ∓ √d)/(2a), root1 ≤ root2.
//
// In step 5 the sign of a is normalized first, so the ordering holds for
// a < 0 as well.
//
// Overflow:
//
//	Extreme coefficients may overflow b² or 4ac to ±Inf. That is not an
//	error: the discriminant becomes infinite, the two-root branch runs and a
//	root may be ±Inf. Solution.Overflow reports it so callers can flag the
//	result as too large to represent.
//
//	When b² and 4ac both overflow, b² − 4ac is Inf − Inf = NaN. For finite
//	coefficients the solver then rescales a, b and c by a power of two and
//	classifies again, so (1e300, 1e300, 1e300) is NoRoots and
//	(1e300, −3e300, 2e300) has the roots 1 and 2. Roots are computed as
//	(−b ∓ √d)/a/2, so 2a never overflows. For finite coefficients a root is
//	never NaN.
//
// Input policy:
//
//	Solve is total over float64 and never fails. Non-finite coefficients are
//	an input error that callers detect first with Coefficients.Validate
//	(ErrInvalidInput).
//
// ⚙️ Usage:
//
//	sol := quadratic.Solve(1, -3, 2)
//	fmt.Println(sol) // two roots: 1, 2
//
//	strict := quadratic.NewSolver(quadratic.WithTolerance(1e-12))
//	sol = strict.Solve(1e-9, 1, 1)
//
// Complexity: O(1) time, no heap allocations.
package quadratic
