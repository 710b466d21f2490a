// Command vecctl runs scripted vector scenarios and reports their results.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/scenario"
	"github.com/pavanmanishd/vector/promvector"
)

const metricsNamespace = "vecctl"

type options struct {
	logLevel string
	metrics  bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "vecctl",
		Short:         "run dynamic array scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log.level", "info", "log level: debug, info, warn, error")

	runCmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "run scenarios and print the resulting vectors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, opts, args)
		},
	}
	runCmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print vector metrics in Prometheus text format")

	compareCmd := &cobra.Command{
		Use:   "compare A B",
		Short: "run two scenarios and compare the resulting vectors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compareScenarios(cmd, opts, args[0], args[1])
		},
	}

	rootCmd.AddCommand(runCmd, compareCmd)
	return rootCmd
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, errors.Errorf("unknown log level %q", lvl)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller), nil
}

func runScenarios(cmd *cobra.Command, opts *options, files []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
	if err != nil {
		return err
	}

	collector := promvector.NewCollector(metricsNamespace)
	for _, file := range files {
		res, err := runFile(logger, file)
		if err != nil {
			level.Error(logger).Log("msg", "scenario failed", "file", file, "err", err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		if err := collector.Register(res.Name, res.Vector); err != nil {
			return errors.Wrapf(err, "register metrics for %s", file)
		}
	}

	if !opts.metrics {
		return nil
	}
	return writeMetrics(cmd.OutOrStdout(), collector)
}

func compareScenarios(cmd *cobra.Command, opts *options, a, b string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
	if err != nil {
		return err
	}

	left, err := runFile(logger, a)
	if err != nil {
		return err
	}
	right, err := runFile(logger, b)
	if err != nil {
		return err
	}

	op := "=="
	switch {
	case vector.Less(left.Vector, right.Vector):
		op = "<"
	case vector.Greater(left.Vector, right.Vector):
		op = ">"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %v %s %s %v\n", left.Name, left.Vector, op, right.Name, right.Vector)
	return nil
}

func runFile(logger log.Logger, file string) (*scenario.Result, error) {
	s, err := scenario.Load(file)
	if err != nil {
		return nil, err
	}
	return s.Run(logger)
}

func writeMetrics(w io.Writer, c prometheus.Collector) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return errors.Wrap(err, "register collector")
	}
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrap(err, "encode metrics")
		}
	}
	return nil
}
