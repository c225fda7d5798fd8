// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadeq/input"
	"github.com/katalvlaran/quadeq/quadratic"
	"github.com/katalvlaran/quadeq/render"
	"github.com/katalvlaran/quadeq/verify"
)

func plain(opts ...render.Option) (*render.Printer, *bytes.Buffer) {
	var buf bytes.Buffer

	return render.NewPrinter(&buf, append([]render.Option{render.WithColor(false)}, opts...)...), &buf
}

func TestPrinter_Solution(t *testing.T) {
	tests := []struct {
		sol  quadratic.Solution
		want string
	}{
		{quadratic.None(), "Thanks, there is your solution: no roots.\n"},
		{quadratic.Infinite(), "Thanks, there is your solution: infinity of roots.\n"},
		{quadratic.One(-1), "Thanks, there is your solution: 1 root: -1.\n"},
		{quadratic.Two(2, 1), "Thanks, there is your solution: 2 roots: 1 and 2.\n"},
		{quadratic.One(-1e80), "Thanks, there is your solution: 1 root: -1e+80.\n"},
		{quadratic.Solution{}, "Unexpected solution: invalid.\n"},
	}
	for _, tt := range tests {
		p, buf := plain()
		p.Solution(tt.sol)
		assert.Equal(t, tt.want, buf.String())
	}
}

func TestPrinter_SolutionOverflow(t *testing.T) {
	p, buf := plain()
	p.Solution(quadratic.Two(math.Inf(-1), 0))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Thanks, there is your solution: 2 roots: -Inf and 0.", lines[0])
	assert.Contains(t, lines[1], "overflowed to infinity")
}

func TestPrinter_Precision(t *testing.T) {
	p, buf := plain(render.WithPrecision(3))
	p.Solution(quadratic.Two(-math.Sqrt2, math.Sqrt2))
	assert.Equal(t, "Thanks, there is your solution: 2 roots: -1.41 and 1.41.\n", buf.String())

	assert.Panics(t, func() { render.WithPrecision(-2) })
}

func TestPrinter_Report(t *testing.T) {
	tbl, err := verify.NewTable(semver.MustParse("1.0.0"),
		verify.TestCase{Name: "ok", Coefficients: quadratic.Coefficients{B: 1, C: 1}, Expected: quadratic.One(-1)},
		verify.TestCase{Name: "bad", Coefficients: quadratic.Coefficients{A: 1, C: -4}, Expected: quadratic.Two(-2, 3)},
	)
	require.NoError(t, err)
	v := verify.NewVerifier()
	rep := verify.Report{Version: tbl.Version()}
	for i, tc := range tbl.Cases() {
		rep.Results = append(rep.Results, v.Check(i, tc))
	}

	p, buf := plain()
	p.Report(rep)
	assert.Equal(t,
		"Test 1 is True.\n"+
			"Error Test 2 (bad); a = 1, b = 0, c = -4: root1 = -2, root2 = 2, count = two roots\n"+
			"Expected root1 = -2, root2 = 3, count = two roots.\n"+
			"Passed 1 of 2 tests (table 1.0.0).\n",
		buf.String())
}

func TestPrinter_ResultUnsetRoots(t *testing.T) {
	p, buf := plain()
	p.Result(verify.Result{
		Index:  4,
		Case:   verify.TestCase{Coefficients: quadratic.Coefficients{A: 1, C: 1}, Expected: quadratic.One(0)},
		Actual: quadratic.None(),
	})
	assert.Equal(t,
		"Error Test 5; a = 1, b = 0, c = 1: root1 = -, root2 = -, count = no roots\n"+
			"Expected root1 = 0, root2 = -, count = one root.\n",
		buf.String())
}

func TestPrinter_Color(t *testing.T) {
	var buf bytes.Buffer
	p := render.NewPrinter(&buf, render.WithColor(true))
	p.Result(verify.Result{Passed: true})
	assert.Equal(t, "\x1b[32mTest 1 is True.\x1b[0m\n", buf.String())

	buf.Reset()
	p.Error(errors.New("boom"))
	assert.Equal(t, "\x1b[31mError: boom\x1b[0m\n", buf.String())

	buf.Reset()
	p.Greeting()
	assert.NotContains(t, buf.String(), "\x1b[", "greeting is uncolored")
}

func TestPrinter_InputError(t *testing.T) {
	_, err := input.Parse("x 1e999 2 4")
	require.Error(t, err)

	p, buf := plain()
	p.InputError(err)
	assert.Equal(t,
		"The first coefficient is not numerical.\n"+
			"The second coefficient is too big. Enter other coefficients.\n"+
			"You entered too many coefficients. Enter only three.\n",
		buf.String())
}

func TestInputMessage(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"", "Enter three coefficients."},
		{"1 2", "The third coefficient is missing."},
		{"1 2 nan", "The third coefficient is too big. Enter other coefficients."},
	}
	for _, tt := range tests {
		_, err := input.Parse(tt.line)
		assert.Equal(t, tt.want, render.InputMessage(err), "%q", tt.line)
	}

	_, err := input.NewReader(strings.NewReader("12345\n"), input.WithMaxLineLength(2)).ReadLine()
	assert.Equal(t, "The line is too long. Enter a shorter one.", render.InputMessage(err))
	assert.Equal(t, "other", render.InputMessage(errors.New("other")))
}
