// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/quadeq/input"
	"github.com/katalvlaran/quadeq/quadratic"
	"github.com/katalvlaran/quadeq/render"
	"github.com/katalvlaran/quadeq/verify"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // failing test case, interrupted run, or no valid coefficients before EOF
	exitUsage   = 2 // bad flags or unreadable table
)

// run is main without the process globals.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}

	colorOn := !color.NoColor
	if err == nil {
		colorOn = colorOn && !cfg.noColor
	}
	errOut := render.NewPrinter(stderr, render.WithColor(colorOn))
	if err != nil {
		errOut.Error(err)
		return exitUsage
	}

	logger, err := newLogger(cfg.logLevel, stderr)
	if err != nil {
		errOut.Error(err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("configuration",
		zap.String("tests", cfg.tablePath),
		zap.Float64("tolerance", cfg.tolerance),
		zap.Float64("rtol", cfg.rtol),
		zap.Int("workers", cfg.workers),
	)

	out := render.NewPrinter(stdout, render.WithColor(colorOn), render.WithPrecision(cfg.precision))
	code := exitOK

	if !cfg.skipTests {
		report, err := verifyTable(ctx, cfg, logger)
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			errOut.Error(err)
			return exitFailure
		case err != nil:
			errOut.Error(err)
			return exitUsage
		}
		out.Report(report)
		if !report.OK() {
			code = exitFailure
		}
	}
	if cfg.verifyOnly {
		return code
	}

	out.Greeting()
	coeffs, err := input.NewReader(stdin).Prompt(ctx, out.InputError)
	if err != nil {
		errOut.Error(err)
		return exitFailure
	}

	sol := quadratic.NewSolver(quadratic.WithTolerance(cfg.tolerance)).SolveCoefficients(coeffs)
	logger.Debug("solved", zap.Stringer("coefficients", coeffs), zap.Stringer("solution", sol))
	out.Solution(sol)

	return code
}

func verifyTable(ctx context.Context, cfg config, logger *zap.Logger) (verify.Report, error) {
	table := verify.DefaultTable()
	if cfg.tablePath != "" {
		var err error
		if table, err = verify.LoadFile(cfg.tablePath); err != nil {
			return verify.Report{}, err
		}
		logger.Info("loaded test table",
			zap.String("path", cfg.tablePath),
			zap.Stringer("version", table.Version()),
			zap.Int("cases", table.Len()),
		)
	}

	v := verify.NewVerifier(
		verify.WithLogger(logger),
		verify.WithWorkers(cfg.workers),
		verify.WithTolerance(cfg.tolerance),
		verify.WithRelativeTolerance(cfg.rtol),
	)

	return v.Run(ctx, table)
}
