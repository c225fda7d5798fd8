// SPDX-License-Identifier: MIT

package input

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/katalvlaran/quadeq/quadratic"
)

// Parse reads "a b c" from line. Fields are separated by any whitespace;
// leading and trailing space is ignored.
//
// Every coefficient is checked, so one call reports all of a line's
// problems; the returned error combines them (see multierr.Errors).
// An empty line yields a single ErrMissingCoefficient.
func Parse(line string) (quadratic.Coefficients, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return quadratic.Coefficients{}, errors.Wrap(ErrMissingCoefficient, "empty line")
	}

	var (
		vals [3]float64
		err  error
	)
	for i := range vals {
		if i >= len(fields) {
			err = multierr.Append(err, &CoefficientError{Index: i, Err: ErrMissingCoefficient})
			continue
		}
		v, perr := parseFloat(fields[i])
		if perr != nil {
			err = multierr.Append(err, &CoefficientError{Index: i, Text: fields[i], Err: perr})
			continue
		}
		vals[i] = v
	}
	if len(fields) > len(vals) {
		err = multierr.Append(err, errors.Wrapf(ErrTooManyCoefficients, "got %d, want 3", len(fields)))
	}
	if err != nil {
		return quadratic.Coefficients{}, err
	}

	return quadratic.Coefficients{A: vals[0], B: vals[1], C: vals[2]}, nil
}

// parseFloat accepts finite float64 values. Underflow to zero or a
// subnormal is accepted; overflow, NaN and ±Inf are invalid input.
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return 0, ErrNotNumeric
		}
		if math.IsInf(v, 0) {
			return 0, errors.Wrap(quadratic.ErrInvalidInput, "out of range")
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrap(quadratic.ErrInvalidInput, "not finite")
	}

	return v, nil
}
