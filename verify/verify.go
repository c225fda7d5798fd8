// SPDX-License-Identifier: MIT

package verify

import (
	"context"
	"fmt"
	"sync"

	"github.com/blang/semver/v4"
	"go.uber.org/zap"

	"github.com/katalvlaran/quadeq/numeric"
	"github.com/katalvlaran/quadeq/quadratic"
)

// Result is the outcome of one case.
type Result struct {
	// Index is the 0-based position of the case in its table.
	Index int
	// Case is the checked record.
	Case TestCase
	// Actual is what the solver returned.
	Actual quadratic.Solution
	// Passed is true when Actual matches Case.Expected.
	Passed bool
}

// Number returns the 1-based case number used in reports.
func (r Result) Number() int { return r.Index + 1 }

// String renders a one-line verdict including inputs, actual and expected.
func (r Result) String() string {
	if r.Passed {
		return fmt.Sprintf("test %d (%s) passed", r.Number(), r.Case.Name)
	}

	return fmt.Sprintf("test %d (%s) failed: %v: got %v, want %v",
		r.Number(), r.Case.Name, r.Case.Coefficients, r.Actual, r.Case.Expected)
}

// Report collects the results of a table run, in table order.
type Report struct {
	Version semver.Version
	Results []Result
}

// Total returns the number of checked cases.
func (r Report) Total() int { return len(r.Results) }

// Passed returns how many cases passed.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}

	return n
}

// Failed returns the failing results in table order.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}

	return out
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Passed() == r.Total() }

// Verifier re-solves table cases and compares them with expectations.
// It holds no per-run state and is safe for concurrent use.
type Verifier struct {
	cmp     numeric.Comparator
	logger  *zap.Logger
	workers int
}

// NewVerifier returns a Verifier with numeric.DefaultTolerance,
// DefaultRelativeTolerance, DefaultWorkers and a no-op logger,
// overridden by opts in order.
func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{
		cmp: numeric.NewComparator(
			numeric.WithTolerance(numeric.DefaultTolerance),
			numeric.WithRelativeTolerance(DefaultRelativeTolerance),
		),
		logger:  zap.NewNop(),
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Comparator returns the comparison policy in use.
func (v *Verifier) Comparator() numeric.Comparator { return v.cmp }

// Check solves a single case. index is recorded in the Result as-is.
//
// Implementation:
//   - Stage 1: resolve the comparator (per-case tolerance wins).
//   - Stage 2: solve with a solver sharing that comparator.
//   - Stage 3: Match against the expectation.
func (v *Verifier) Check(index int, tc TestCase) Result {
	// Resolve the comparator
	cmp := v.cmp
	if tol, ok := tc.Tolerance(); ok {
		cmp = numeric.NewComparator(
			numeric.WithTolerance(tol),
			numeric.WithRelativeTolerance(v.cmp.RelativeTolerance()),
		)
	}
	// Solve and compare under the same policy
	actual := quadratic.NewSolver(quadratic.WithComparator(cmp)).SolveCoefficients(tc.Coefficients)

	return Result{
		Index:  index,
		Case:   tc,
		Actual: actual,
		Passed: Match(cmp, tc.Expected, actual),
	}
}

// Run checks every case of t and returns the report in table order.
// Mismatches never stop the run; only ctx cancellation does, in which case
// the error wraps ctx.Err() and the report is empty.
func (v *Verifier) Run(ctx context.Context, t Table) (Report, error) {
	cases := t.Cases()
	results := make([]Result, len(cases))

	// Dispatch: a single case or worker needs no pool
	var err error
	if v.workers <= 1 || len(cases) <= 1 {
		err = v.runSequential(ctx, cases, results)
	} else {
		err = v.runParallel(ctx, cases, results)
	}
	if err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}

	// Summarize
	report := Report{Version: t.Version(), Results: results}
	v.logger.Info("verification finished",
		zap.Stringer("version", report.Version),
		zap.Int("total", report.Total()),
		zap.Int("passed", report.Passed()),
		zap.Int("failed", report.Total()-report.Passed()),
	)

	return report, nil
}

func (v *Verifier) runSequential(ctx context.Context, cases []TestCase, results []Result) error {
	for i, tc := range cases {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[i] = v.Check(i, tc)
		v.logResult(results[i])
	}

	return nil
}

// runParallel fans indices out to a fixed pool. Each worker writes only
// results[i] for the indices it receives, so the slice needs no lock.
func (v *Verifier) runParallel(ctx context.Context, cases []TestCase, results []Result) error {
	// Never start more workers than cases
	workers := v.workers
	if workers > len(cases) {
		workers = len(cases)
	}

	// Start the pool; workers drain jobs until it is closed
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = v.Check(i, cases[i])
				v.logResult(results[i])
			}
		}()
	}

	// Feed indices in table order until done or cancelled
	var err error
feed:
	for i := range cases {
		// select picks randomly among ready cases; check first so a
		// cancelled context never lets another job through.
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	// Let in-flight cases finish before returning
	close(jobs)
	wg.Wait()

	return err
}

func (v *Verifier) logResult(r Result) {
	if r.Passed {
		v.logger.Debug("test case passed", zap.Int("case", r.Number()), zap.String("name", r.Case.Name))
		return
	}
	v.logger.Warn("test case mismatch",
		zap.Int("case", r.Number()),
		zap.String("name", r.Case.Name),
		zap.Float64("a", r.Case.Coefficients.A),
		zap.Float64("b", r.Case.Coefficients.B),
		zap.Float64("c", r.Case.Coefficients.C),
		zap.Stringer("expected", r.Case.Expected),
		zap.Stringer("actual", r.Actual),
	)
}

// Match reports whether got agrees with want: same RootCount and every
// root slot set in the same places and equal under cmp. Identical values
// (including matching infinities) always match; NaN never does.
func Match(cmp numeric.Comparator, want, got quadratic.Solution) bool {
	if want.Count != got.Count {
		return false
	}

	return matchRoot(cmp, want.Root1(), got.Root1()) && matchRoot(cmp, want.Root2(), got.Root2())
}

func matchRoot(cmp numeric.Comparator, want, got quadratic.Root) bool {
	w, wok := want.Value()
	g, gok := got.Value()
	if wok != gok {
		return false
	}
	if !wok {
		return true
	}

	return w == g || cmp.Equal(w, g)
}
