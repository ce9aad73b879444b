// Command check_network verifies a solution of the degree-constrained
// multi-commodity network-flow benchmark.
//
//	check_network <instance_size> <demand_file> <solution_file>
//
// Exit status: 0 valid, 1 invalid, 2 usage or input error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/netcheck/config"
	"github.com/katalvlaran/netcheck/instance"
	"github.com/katalvlaran/netcheck/logging"
	"github.com/katalvlaran/netcheck/report"
	"github.com/katalvlaran/netcheck/verify"
)

// Process exit codes.
const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

// usageError marks failures that should print the usage text.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// app carries flag values and per-run state between cobra hooks.
type app struct {
	configPath string
	format     string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
	code   int
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check_network <instance_size> <demand_file> <solution_file>",
		Short: "Verify a network-flow benchmark solution",
		Long: `Checks a candidate solution against a network-flow instance:

  instance_size: number of nodes (5-24)
  demand_file:   path to demand matrix file
  solution_file: path to solver solution file

Every node must have exactly 2 selected outgoing and 2 selected incoming
arcs, every commodity must satisfy flow conservation against the scaled
demand, and no commodity may use an unselected arc. The claimed objective
is compared with the largest total flow on any arc; a mismatch is only a
warning.

Exit status: 0 valid, 1 invalid, 2 usage or input error.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(3)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = a.format
			}
			a.cfg = cfg

			a.logger, err = logging.New(cfg.Log, a.verbose)
			if err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.run,
	}

	cmd.Flags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&a.format, "format", "f", "text", "report format: text or yaml")
	cmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	return cmd
}

// run validates the instance size before any file is read, then verifies
// and reports. Usage problems are returned as errors; everything after that
// is expressed through a.code.
func (a *app) run(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(a.cfg.Format)
	if err != nil {
		return usageError{err}
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return usageError{fmt.Errorf("%w: instance_size must be an integer, got %q", instance.ErrNodeCount, args[0])}
	}
	if err := instance.ValidateNodeCount(n, a.cfg.Bounds()); err != nil {
		return usageError{err}
	}

	opts := a.cfg.VerifyOptions()
	opts.Logger = a.logger
	res := verify.Check(n, args[1], args[2], opts)
	a.logger.Info("verification finished",
		zap.Int("n", n),
		zap.Stringer("verdict", res.Verdict),
		zap.String("demand_file", args[1]),
		zap.String("solution_file", args[2]),
	)

	out := cmd.OutOrStdout()
	if res.Verdict == verify.Error && format == report.FormatText {
		out = cmd.ErrOrStderr()
	}
	if err := report.Write(out, res, format); err != nil {
		return err
	}

	switch res.Verdict {
	case verify.Valid:
		a.code = exitValid
	case verify.Invalid:
		a.code = exitInvalid
	default:
		a.code = exitError
	}

	return nil
}

// execute runs the command with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return exitError
	}

	return a.code
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
