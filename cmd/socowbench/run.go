// run.go implements the 'socowbench run' command.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/kolkov/socow/internal/bench"
	"github.com/kolkov/socow/metrics"
	"github.com/kolkov/socow/vec"
)

type runOptions struct {
	workload string
	parallel int
	logLevel string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a workload and report vector statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runBench(ctx, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&opts.workload, "workload", "w", "", "workload YAML file (default: built-in workload)")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", 1, "scenarios to run concurrently")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	return cmd
}

// runBench loads the workload, runs it and writes the report to out.
// Logs go to errOut.
func runBench(ctx context.Context, opts *runOptions, out, errOut io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", opts.logLevel, err)
	}
	if opts.parallel < 1 {
		return fmt.Errorf("invalid --parallel %d: must be at least 1", opts.parallel)
	}
	log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	w := bench.Default()
	if opts.workload != "" {
		var err error
		if w, err = bench.Load(opts.workload); err != nil {
			return err
		}
	}
	log.Info("workload loaded",
		"source", workloadSource(opts.workload),
		"scenarios", len(w.Scenarios),
		"version", vec.Version)

	reg := prometheus.NewRegistry()
	if err := reg.Register(metrics.NewCollector("socow")); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	before, err := gatherValues(reg)
	if err != nil {
		return err
	}

	r := &bench.Runner{Parallel: opts.parallel, Logger: log}
	results, err := r.Run(ctx, w)
	if err != nil {
		return err
	}

	after, err := gatherValues(reg)
	if err != nil {
		return err
	}
	return writeReport(out, results, before, after)
}

func workloadSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// gatherValues reads every single-sample metric in reg by name.
func gatherValues(reg *prometheus.Registry) (map[string]float64, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	values := make(map[string]float64, len(families))
	for _, f := range families {
		for _, m := range f.GetMetric() {
			switch f.GetType() {
			case dto.MetricType_COUNTER:
				values[f.GetName()] = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				values[f.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	return values, nil
}

// writeReport prints the scenario table followed by the metric deltas.
// Gauges are reported as their final value.
func writeReport(out io.Writer, results []bench.Result, before, after map[string]float64) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tINLINE\tOPS\tELAPSED\tCHECKSUM")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%d\n", r.Scenario, r.Inline, r.Ops, r.Elapsed, r.Checksum)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	for _, name := range slices.Sorted(maps.Keys(after)) {
		v := after[name]
		if strings.HasSuffix(name, "_total") {
			v -= before[name]
		}
		fmt.Fprintf(tw, "%s\t%.0f\n", name, v)
	}
	return tw.Flush()
}
