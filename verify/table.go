// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"

	"github.com/blang/semver/v4"

	"github.com/katalvlaran/quadeq/numeric"
	"github.com/katalvlaran/quadeq/quadratic"
)

const (
	// CurrentVersion is the version written by DefaultTable and assumed
	// for files that do not declare one.
	CurrentVersion = "1.0.0"

	// SupportedVersions is the semver range of table versions this
	// package can read.
	SupportedVersions = ">=1.0.0 <2.0.0"
)

const panicCaseToleranceInvalid = "verify: TestCase.WithTolerance: tol must be finite, non-negative"

// TestCase is one regression record: an input triple and the expected
// solution. It is a value; WithTolerance returns a modified copy.
type TestCase struct {
	// Name is a short label used in reports. May be empty.
	Name string
	// Coefficients are the inputs.
	Coefficients quadratic.Coefficients
	// Expected is the solution the solver must produce.
	Expected quadratic.Solution

	tol    float64
	hasTol bool
}

// WithTolerance returns a copy of tc that is solved and compared with the
// absolute tolerance tol instead of the verifier's.
// Panics when tol is NaN, ±Inf or negative.
func (tc TestCase) WithTolerance(tol float64) TestCase {
	if !numeric.ValidTolerance(tol) {
		panic(panicCaseToleranceInvalid)
	}
	tc.tol, tc.hasTol = tol, true

	return tc
}

// Tolerance returns the per-case tolerance override, if any.
func (tc TestCase) Tolerance() (float64, bool) { return tc.tol, tc.hasTol }

// String formats the case as "<name> (a=.. b=.. c=..) → <expected>".
func (tc TestCase) String() string {
	return fmt.Sprintf("%s (%v) → %v", tc.Name, tc.Coefficients, tc.Expected)
}

// Table is an ordered, versioned sequence of test cases.
// Its contents cannot be changed after construction: accessors return copies.
type Table struct {
	version semver.Version
	cases   []TestCase
}

// NewTable builds a Table from a copy of cases.
// Returns ErrUnsupportedVersion when version is outside SupportedVersions.
func NewTable(version semver.Version, cases ...TestCase) (Table, error) {
	if !semver.MustParseRange(SupportedVersions)(version) {
		return Table{}, fmt.Errorf("NewTable: %s not in %q: %w", version, SupportedVersions, ErrUnsupportedVersion)
	}

	return newTable(version, cases), nil
}

func newTable(version semver.Version, cases []TestCase) Table {
	owned := make([]TestCase, len(cases))
	copy(owned, cases)

	return Table{version: version, cases: owned}
}

// Version returns the table version.
func (t Table) Version() semver.Version { return t.version }

// Len returns the number of cases.
func (t Table) Len() int { return len(t.cases) }

// Case returns the i-th case (0-based) and whether i is in range.
func (t Table) Case(i int) (TestCase, bool) {
	if i < 0 || i >= len(t.cases) {
		return TestCase{}, false
	}

	return t.cases[i], true
}

// Cases returns a copy of all cases in order.
func (t Table) Cases() []TestCase {
	out := make([]TestCase, len(t.cases))
	copy(out, t.cases)

	return out
}

// DefaultTable returns the built-in regression table.
//
// Rows 1–9 are the reference scenarios. Row 9 exercises extreme-magnitude
// division; with the default tolerance b=1e-40 would count as zero, so the
// row is pinned to an exact comparison. Row 14 repeats the same input
// under the default tolerance to lock in the contradiction branch. Row 15
// overflows both b² and 4ac.
func DefaultTable() Table {
	co := func(a, b, c float64) quadratic.Coefficients {
		return quadratic.Coefficients{A: a, B: b, C: c}
	}

	return newTable(semver.MustParse(CurrentVersion), []TestCase{
		{Name: "identity", Coefficients: co(0, 0, 0), Expected: quadratic.Infinite()},
		{Name: "perfect square", Coefficients: co(1, 2, 1), Expected: quadratic.One(-1)},
		{Name: "scaled perfect square", Coefficients: co(2, 4, 2), Expected: quadratic.One(-1)},
		{Name: "contradiction", Coefficients: co(0, 0, 1), Expected: quadratic.None()},
		{Name: "pure square", Coefficients: co(1, 0, 0), Expected: quadratic.One(0)},
		{Name: "linear through origin", Coefficients: co(0, 1, 0), Expected: quadratic.One(0)},
		{Name: "linear", Coefficients: co(0, 1, 1), Expected: quadratic.One(-1)},
		{Name: "huge leading coefficient", Coefficients: co(1e100, 1, 1), Expected: quadratic.None()},
		TestCase{Name: "extreme linear division", Coefficients: co(0, 1e-40, 1e40), Expected: quadratic.One(-1e80)}.WithTolerance(0),
		{Name: "two roots", Coefficients: co(1, -3, 2), Expected: quadratic.Two(1, 2)},
		{Name: "negative leading coefficient", Coefficients: co(-1, 3, -2), Expected: quadratic.Two(1, 2)},
		{Name: "near-zero discriminant", Coefficients: co(1, 2, 1+1e-7), Expected: quadratic.One(-1)},
		{Name: "near-zero leading coefficient", Coefficients: co(1e-7, 2, 4), Expected: quadratic.One(-2)},
		{Name: "near-zero linear coefficient", Coefficients: co(0, 1e-40, 1e40), Expected: quadratic.None()},
		{Name: "overflowing discriminant terms", Coefficients: co(1e300, 1e300, 1e300), Expected: quadratic.None()},
	})
}
