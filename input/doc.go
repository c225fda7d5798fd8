// SPDX-License-Identifier: MIT

// Package input turns lines of text into quadratic.Coefficients.
//
// A valid line holds exactly three whitespace-separated decimal numbers,
// "a b c". Parse reports every problem of a line at once, one error per
// coefficient, combined with go.uber.org/multierr:
//
//	ErrNotNumeric           "1 x 3"      the second coefficient is not a number
//	ErrMissingCoefficient   "1 2"        the third coefficient is missing
//	ErrTooManyCoefficients  "1 2 3 4"
//	quadratic.ErrInvalidInput  "1e999 0 1"  out of float64 range, NaN or ±Inf
//
// Per-coefficient problems are *CoefficientError values; use errors.As to
// get the position and multierr.Errors to list them.
//
// Reader reads bounded lines (DefaultMaxLineLength bytes) and Prompt keeps
// asking until a line parses, the input ends or the context is cancelled.
package input
