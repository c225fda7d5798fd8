// SPDX-License-Identifier: MIT

package render

// Defaults (single source of truth).
const (
	// DefaultColor enables ANSI colors.
	DefaultColor = true

	// DefaultPrecision prints the shortest representation that reads back
	// to the same float64.
	DefaultPrecision = -1
)

const panicPrecisionInvalid = "render: WithPrecision: digits must be >= -1"

// Option configures a Printer.
type Option func(*Printer)

// WithColor turns ANSI colors on or off, regardless of whether the
// output is a terminal.
func WithColor(on bool) Option {
	return func(p *Printer) { p.color = on }
}

// WithPrecision sets the number of significant digits for roots and
// coefficients; -1 means shortest round-trip form.
// Panics when digits < -1.
func WithPrecision(digits int) Option {
	if digits < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(p *Printer) { p.precision = digits }
}
