// Package quadeq solves quadratic equations a·x² + b·x + c = 0 over float64,
// classifies the solution set, and verifies the solver against a
// versioned regression table.
//
// 🚀 What is quadeq?
//
//	A small, dependency-light toolkit built from focused packages:
//		• numeric   — tolerance-based float comparison (absolute and relative)
//		• quadratic — the solver: RootCount, tagged Root slots, Solution
//		• verify    — regression tables (built-in, text, YAML, JSON) and a
//		              concurrent Verifier producing a Report
//		• input     — parsing "a b c" lines with per-coefficient diagnostics
//		• render    — colored terminal output for solutions and reports
//
// ✨ Guarantees:
//
//   - Solve is total: every float64 triple gets a classification, never a panic
//   - Degenerate cases are decided in a fixed order (identity, contradiction,
//     linear) before the discriminant is consulted
//   - Roots are ordered root1 ≤ root2; unused slots are unset, not zero
//   - Mismatches in verification are results, not errors
//
// The quadeq command (cmd/quadeq) runs the regression table and then solves
// one equation read from stdin:
//
//	go run ./cmd/quadeq --tests verify/testdata/cases.yaml
//
//	go get github.com/katalvlaran/quadeq
package quadeq
