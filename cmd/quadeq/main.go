// SPDX-License-Identifier: MIT

// Command quadeq checks the solver against a regression table and then
// solves one equation read from stdin.
//
//	quadeq                       built-in table, then prompt
//	quadeq cases.txt             table from file
//	quadeq --verify-only -w 4    table only, four workers
//	echo "1 -3 2" | quadeq --skip-tests --no-color
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
