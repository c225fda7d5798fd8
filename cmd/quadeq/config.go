// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/quadeq/numeric"
	"github.com/katalvlaran/quadeq/render"
	"github.com/katalvlaran/quadeq/verify"
)

// config is the parsed command line.
type config struct {
	tablePath  string
	tolerance  float64
	rtol       float64
	workers    int
	noColor    bool
	precision  int
	logLevel   string
	skipTests  bool
	verifyOnly bool
}

// parseFlags reads args (without the program name). pflag.ErrHelp is
// returned as-is after usage has been written to out.
func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config

	fs := pflag.NewFlagSet("quadeq", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		io.WriteString(out, "Usage: quadeq [flags] [TABLE]\n\n"+
			"Verifies the solver against a regression table, then solves\n"+
			"a·x² + b·x + c = 0 for coefficients read from stdin.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.StringVarP(&cfg.tablePath, "tests", "t", "", "regression table file (.txt, .yaml, .json); built-in table if empty")
	fs.Float64Var(&cfg.tolerance, "tolerance", numeric.DefaultTolerance, "absolute tolerance for zero checks and root comparison")
	fs.Float64Var(&cfg.rtol, "rtol", verify.DefaultRelativeTolerance, "relative tolerance for root comparison in verification")
	fs.IntVarP(&cfg.workers, "workers", "w", verify.DefaultWorkers, "test cases solved concurrently")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored output")
	fs.IntVar(&cfg.precision, "precision", render.DefaultPrecision, "significant digits for printed numbers, -1 for shortest")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.skipTests, "skip-tests", false, "do not run the regression table")
	fs.BoolVar(&cfg.verifyOnly, "verify-only", false, "run the regression table and exit without reading coefficients")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		if cfg.tablePath != "" && cfg.tablePath != fs.Arg(0) {
			return config{}, errors.Errorf("table given twice: --tests=%s and %s", cfg.tablePath, fs.Arg(0))
		}
		cfg.tablePath = fs.Arg(0)
	default:
		return config{}, errors.Errorf("expected at most one table file, got %d arguments", fs.NArg())
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch {
	case !numeric.ValidTolerance(c.tolerance):
		return errors.Errorf("--tolerance %v must be finite, non-negative", c.tolerance)
	case !numeric.ValidTolerance(c.rtol):
		return errors.Errorf("--rtol %v must be finite, non-negative", c.rtol)
	case c.workers < 1:
		return errors.Errorf("--workers %d must be >= 1", c.workers)
	case c.precision < -1:
		return errors.Errorf("--precision %d must be >= -1", c.precision)
	case c.skipTests && c.verifyOnly:
		return errors.New("--skip-tests and --verify-only leave nothing to do")
	}
	if _, err := parseLevel(c.logLevel); err != nil {
		return err
	}

	return nil
}
