// SPDX-License-Identifier: MIT

// Command ssmethod trains and evaluates subspace-method classifiers on CSV data.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ssmethod/subspace"
)

const version = "v0.1.0"

// app carries state shared by every subcommand.
type app struct {
	logLevel string
	metrics  bool
	workers  int

	log      zerolog.Logger
	registry *prometheus.Registry
	m        *subspace.Metrics
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:     "ssmethod",
		Short:   "Subspace-method classifier tools",
		Version: version,
		Long: `ssmethod learns one linear subspace per class and classifies samples by
the subspace that captures the most of them.

Examples:
  ssmethod bench --data digits.csv --components 10,20,40
  ssmethod evaluate --config ssm.yaml --data digits.csv --metrics`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.dumpMetrics(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "info", "Log level (trace|debug|info|warn|error|disabled)")
	pf.BoolVar(&a.metrics, "metrics", false, "Print Prometheus metrics in text exposition format after the run")
	pf.IntVar(&a.workers, "workers", 0, "Parallelism for fit and predict (0 = GOMAXPROCS)")

	root.AddCommand(newBenchCmd(a), newEvaluateCmd(a))

	return root
}

// setup builds the console logger and, when requested, the metrics registry.
func (a *app) setup(cmd *cobra.Command) error {
	lvl, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()

	if !a.metrics {
		return nil
	}
	a.registry = prometheus.NewRegistry()
	if a.m, err = subspace.NewMetrics(a.registry); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}

// dumpMetrics writes every gathered family to stdout.
func (a *app) dumpMetrics(cmd *cobra.Command) error {
	if a.registry == nil {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(cmd.OutOrStdout(), expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}

// options returns the classifier options wired to the app's logger and metrics.
func (a *app) options() []subspace.Option {
	return []subspace.Option{subspace.WithLogger(a.log), subspace.WithMetrics(a.m)}
}
