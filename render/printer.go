// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"go.uber.org/multierr"

	"github.com/katalvlaran/quadeq/input"
	"github.com/katalvlaran/quadeq/quadratic"
	"github.com/katalvlaran/quadeq/verify"
)

// Printer writes human-readable lines to one writer. It is not safe for
// concurrent use.
type Printer struct {
	out       io.Writer
	color     bool
	precision int

	ok, bad, warn *color.Color
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer, opts ...Option) *Printer {
	p := &Printer{out: out, color: DefaultColor, precision: DefaultPrecision}
	for _, opt := range opts {
		opt(p)
	}

	p.ok = p.paint(color.FgGreen)
	p.bad = p.paint(color.FgRed)
	p.warn = p.paint(color.FgYellow)

	return p
}

func (p *Printer) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

// Greeting asks for the coefficients.
func (p *Printer) Greeting() {
	fmt.Fprintln(p.out, "Hello! Enter your coefficients for quadratic equation.")
}

// Solution prints the final answer, followed by a warning when a root
// overflowed to ±Inf.
func (p *Printer) Solution(sol quadratic.Solution) {
	const lead = "Thanks, there is your solution: "

	switch sol.Count {
	case quadratic.NoRoots:
		fmt.Fprintln(p.out, lead+"no roots.")
	case quadratic.InfiniteRoots:
		fmt.Fprintln(p.out, lead+"infinity of roots.")
	case quadratic.OneRoot:
		fmt.Fprintf(p.out, "%s1 root: %s.\n", lead, p.root(sol.Root1()))
	case quadratic.TwoRoots:
		fmt.Fprintf(p.out, "%s2 roots: %s and %s.\n", lead, p.root(sol.Root1()), p.root(sol.Root2()))
	default:
		p.line(p.bad, "Unexpected solution: %v.", sol.Count)
		return
	}

	if sol.Overflow() {
		p.line(p.warn, "Warning: the coefficients are too large, a root overflowed to infinity.")
	}
}

// Result prints one verification line: green when passed, red with inputs,
// actual and expected otherwise.
func (p *Printer) Result(r verify.Result) {
	if r.Passed {
		p.line(p.ok, "Test %d is True.", r.Number())
		return
	}

	c := r.Case.Coefficients
	p.line(p.bad, "Error Test %d%s; a = %s, b = %s, c = %s: root1 = %s, root2 = %s, count = %v\n"+
		"Expected root1 = %s, root2 = %s, count = %v.",
		r.Number(), p.label(r.Case.Name), p.num(c.A), p.num(c.B), p.num(c.C),
		p.root(r.Actual.Root1()), p.root(r.Actual.Root2()), r.Actual.Count,
		p.root(r.Case.Expected.Root1()), p.root(r.Case.Expected.Root2()), r.Case.Expected.Count,
	)
}

// Report prints every result in table order and a summary line.
func (p *Printer) Report(rep verify.Report) {
	for _, r := range rep.Results {
		p.Result(r)
	}

	summary := p.ok
	if !rep.OK() {
		summary = p.bad
	}
	p.line(summary, "Passed %d of %d tests (table %s).", rep.Passed(), rep.Total(), rep.Version)
}

// InputError prints one red line per problem in err, worded for someone
// typing coefficients.
func (p *Printer) InputError(err error) {
	for _, e := range multierr.Errors(err) {
		p.line(p.bad, "%s", InputMessage(e))
	}
}

// Error prints err in red.
func (p *Printer) Error(err error) {
	p.line(p.bad, "Error: %v", err)
}

// InputMessage words a single input problem for the user.
func InputMessage(err error) string {
	var ce *input.CoefficientError
	if errors.As(err, &ce) {
		switch {
		case errors.Is(ce, input.ErrNotNumeric):
			return fmt.Sprintf("The %s coefficient is not numerical.", ce.Ordinal())
		case errors.Is(ce, input.ErrMissingCoefficient):
			return fmt.Sprintf("The %s coefficient is missing.", ce.Ordinal())
		case errors.Is(ce, quadratic.ErrInvalidInput):
			return fmt.Sprintf("The %s coefficient is too big. Enter other coefficients.", ce.Ordinal())
		}
	}

	switch {
	case errors.Is(err, input.ErrMissingCoefficient):
		return "Enter three coefficients."
	case errors.Is(err, input.ErrTooManyCoefficients):
		return "You entered too many coefficients. Enter only three."
	case errors.Is(err, input.ErrLineTooLong):
		return "The line is too long. Enter a shorter one."
	}

	return err.Error()
}

// line writes one colored line; the terminator stays outside the color.
func (p *Printer) line(c *color.Color, format string, args ...interface{}) {
	fmt.Fprintln(p.out, c.Sprintf(format, args...))
}

func (p *Printer) num(x float64) string {
	return strconv.FormatFloat(x, 'g', p.precision, 64)
}

func (p *Printer) root(r quadratic.Root) string {
	x, ok := r.Value()
	if !ok {
		return "-"
	}

	return p.num(x)
}

func (p *Printer) label(name string) string {
	if name == "" {
		return ""
	}

	return " (" + name + ")"
}
