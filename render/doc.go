// SPDX-License-Identifier: MIT

// Package render prints solutions, verification reports and input errors
// for a terminal, in color via github.com/fatih/color.
//
// Rendering is kept apart from solving: quadratic and verify return
// values, and only a Printer turns them into text.
//
//	p := render.NewPrinter(os.Stdout, render.WithColor(false))
//	p.Solution(quadratic.Solve(1, -3, 2))
//	// Thanks, there is your solution: 2 roots: 1 and 2.
package render
