// SPDX-License-Identifier: MIT

package input

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrNotNumeric: a field does not parse as a decimal number.
	ErrNotNumeric = errors.New("input: coefficient is not numeric")

	// ErrMissingCoefficient: the line has fewer than three fields.
	ErrMissingCoefficient = errors.New("input: missing coefficient")

	// ErrTooManyCoefficients: the line has more than three fields.
	ErrTooManyCoefficients = errors.New("input: too many coefficients")

	// ErrLineTooLong: the line exceeds the reader's limit.
	ErrLineTooLong = errors.New("input: line too long")
)

var ordinals = [...]string{"first", "second", "third"}

// CoefficientError locates a problem at one coefficient position.
type CoefficientError struct {
	// Index is 0 for a, 1 for b, 2 for c.
	Index int
	// Text is the offending field, empty when missing.
	Text string
	// Err is the cause: ErrNotNumeric, ErrMissingCoefficient or a
	// wrapped quadratic.ErrInvalidInput.
	Err error
}

// Ordinal returns "first", "second" or "third".
func (e *CoefficientError) Ordinal() string {
	if e.Index < 0 || e.Index >= len(ordinals) {
		return fmt.Sprintf("#%d", e.Index+1)
	}

	return ordinals[e.Index]
}

func (e *CoefficientError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s coefficient: %v", e.Ordinal(), e.Err)
	}

	return fmt.Sprintf("%s coefficient %q: %v", e.Ordinal(), e.Text, e.Err)
}

func (e *CoefficientError) Unwrap() error { return e.Err }
