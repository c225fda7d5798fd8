// SPDX-License-Identifier: MIT

package verify

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/quadeq/numeric"
)

// Defaults (single source of truth).
const (
	// DefaultWorkers runs cases sequentially.
	DefaultWorkers = 1

	// DefaultRelativeTolerance lets root comparison absorb rounding at large
	// magnitudes, where the absolute tolerance is smaller than one ulp.
	DefaultRelativeTolerance = 1e-9
)

const panicWorkersInvalid = "verify: WithWorkers: n must be >= 1"

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger for mismatch and summary records.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(v *Verifier) {
		if l == nil {
			l = zap.NewNop()
		}
		v.logger = l
	}
}

// WithWorkers sets how many cases are solved concurrently.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(v *Verifier) { v.workers = n }
}

// WithComparator replaces the comparison policy. Its absolute tolerance
// also drives the solver's zero checks.
func WithComparator(c numeric.Comparator) Option {
	return func(v *Verifier) { v.cmp = c }
}

// WithTolerance sets the absolute tolerance, keeping the relative one.
// Panics when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	setTol := numeric.WithTolerance(tol)

	return func(v *Verifier) {
		c := numeric.NewComparator(numeric.WithRelativeTolerance(v.cmp.RelativeTolerance()))
		setTol(&c)
		v.cmp = c
	}
}

// WithRelativeTolerance sets the relative tolerance used for roots,
// keeping the absolute one.
// Panics when rtol is NaN, ±Inf or negative.
func WithRelativeTolerance(rtol float64) Option {
	setRtol := numeric.WithRelativeTolerance(rtol)

	return func(v *Verifier) {
		c := numeric.NewComparator(numeric.WithTolerance(v.cmp.Tolerance()))
		setRtol(&c)
		v.cmp = c
	}
}
