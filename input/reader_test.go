// SPDX-License-Identifier: MIT

package input_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadeq/input"
	"github.com/katalvlaran/quadeq/quadratic"
)

func TestReader_ReadLine(t *testing.T) {
	r := input.NewReader(strings.NewReader("1 2 3\r\nlast"))
	assert.Equal(t, input.DefaultMaxLineLength, r.MaxLineLength())

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "1 2 3", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line, "final line without terminator")

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_LineTooLong(t *testing.T) {
	long := strings.Repeat("1", input.DefaultMaxLineLength+1)
	exact := strings.Repeat("2", input.DefaultMaxLineLength)
	huge := strings.Repeat("3", 5*input.DefaultMaxLineLength)
	r := input.NewReader(strings.NewReader(long + "\n" + exact + "\n" + huge + "\n1 2 3\n"))

	_, err := r.ReadLine()
	assert.ErrorIs(t, err, input.ErrLineTooLong)

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Len(t, line, input.DefaultMaxLineLength)

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, input.ErrLineTooLong)
	assert.Contains(t, err.Error(), "5000 bytes")

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "1 2 3", line, "reading resumes after an over-long line")
}

func TestReader_SmallLimit(t *testing.T) {
	r := input.NewReader(strings.NewReader("1 2 3\n1 2\n"), input.WithMaxLineLength(3))
	_, err := r.ReadLine()
	assert.ErrorIs(t, err, input.ErrLineTooLong)
	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "1 2", line)

	assert.Panics(t, func() { input.WithMaxLineLength(0) })
}

func TestReader_Prompt(t *testing.T) {
	r := input.NewReader(strings.NewReader("abc\n1 2\n1 2 3 4\n\n1 -3 2\n0 0 0\n"))

	var rejected []error
	c, err := r.Prompt(context.Background(), func(err error) { rejected = append(rejected, err) })
	require.NoError(t, err)
	assert.Equal(t, quadratic.Coefficients{A: 1, B: -3, C: 2}, c)
	require.Len(t, rejected, 4)
	assert.ErrorIs(t, rejected[0], input.ErrNotNumeric)
	assert.ErrorIs(t, rejected[1], input.ErrMissingCoefficient)
	assert.ErrorIs(t, rejected[2], input.ErrTooManyCoefficients)
	assert.ErrorIs(t, rejected[3], input.ErrMissingCoefficient)

	c, err = r.Prompt(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, quadratic.Coefficients{}, c)
}

func TestReader_PromptEOF(t *testing.T) {
	r := input.NewReader(strings.NewReader("oops\n"))
	_, err := r.Prompt(context.Background(), nil)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "after 1 attempt(s)")
}

func TestReader_PromptCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := input.NewReader(strings.NewReader("1 2 3\n"))
	_, err := r.Prompt(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
