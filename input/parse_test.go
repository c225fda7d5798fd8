// SPDX-License-Identifier: MIT

package input_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/quadeq/input"
	"github.com/katalvlaran/quadeq/quadratic"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		line string
		want quadratic.Coefficients
	}{
		{"1 2 3", quadratic.Coefficients{A: 1, B: 2, C: 3}},
		{"  -1.5\t0   2e3  ", quadratic.Coefficients{A: -1.5, B: 0, C: 2000}},
		{"0 1e-40 1e40", quadratic.Coefficients{A: 0, B: 1e-40, C: 1e40}},
		{"1e-400 0 1", quadratic.Coefficients{A: 0, B: 0, C: 1}},
		{"0x1p-2 +3 .5", quadratic.Coefficients{A: 0.25, B: 3, C: 0.5}},
	}
	for _, tt := range tests {
		got, err := input.Parse(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestParse_PerCoefficientErrors(t *testing.T) {
	_, err := input.Parse("x 2 y")
	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrNotNumeric)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	var first, third *input.CoefficientError
	require.True(t, errors.As(errs[0], &first))
	require.True(t, errors.As(errs[1], &third))
	assert.Equal(t, "first", first.Ordinal())
	assert.Equal(t, "x", first.Text)
	assert.Equal(t, "third", third.Ordinal())
	assert.Equal(t, `third coefficient "y": input: coefficient is not numeric`, third.Error())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
		n    int
	}{
		{"", input.ErrMissingCoefficient, 1},
		{"   ", input.ErrMissingCoefficient, 1},
		{"1 2", input.ErrMissingCoefficient, 1},
		{"1", input.ErrMissingCoefficient, 2},
		{"1 2 3 4", input.ErrTooManyCoefficients, 1},
		{"1 a 3 4", input.ErrTooManyCoefficients, 2},
		{"1e999 0 1", quadratic.ErrInvalidInput, 1},
		{"NaN 0 1", quadratic.ErrInvalidInput, 1},
		{"1 -inf 1", quadratic.ErrInvalidInput, 1},
		{"1,2,3", input.ErrNotNumeric, 3},
	}
	for _, tt := range tests {
		_, err := input.Parse(tt.line)
		assert.ErrorIs(t, err, tt.want, "%q", tt.line)
		assert.Len(t, multierr.Errors(err), tt.n, "%q", tt.line)
	}
}

func TestParse_MissingHasNoText(t *testing.T) {
	_, err := input.Parse("1 2")
	var ce *input.CoefficientError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 2, ce.Index)
	assert.Empty(t, ce.Text)
	assert.Equal(t, "third coefficient: input: missing coefficient", ce.Error())
}

func TestCoefficientError_OrdinalOutOfRange(t *testing.T) {
	ce := &input.CoefficientError{Index: 5, Err: input.ErrNotNumeric}
	assert.Equal(t, "#6", ce.Ordinal())
}
