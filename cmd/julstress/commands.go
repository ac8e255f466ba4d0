package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/justeige/JUL/control"
	"github.com/justeige/JUL/internal/stress"
)

// options holds flag values shared by the subcommands.
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	jsonOutput bool

	workers    int
	iterations int
	rounds     int
	capacity   int
	producers  int
	seed       uint64
	pin        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "julstress",
		Short:         "Stress the JUL spin lock and ring buffer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "text or json")

	root.AddCommand(newRunCmd(opts), newProbesCmd(opts))
	return root
}

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the lock and ring workloads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runStress(ctx, cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.BoolVar(&opts.jsonOutput, "json", false, "print the report as JSON")
	f.IntVar(&opts.workers, "workers", 0, "lock workers (overrides config)")
	f.IntVar(&opts.iterations, "iterations", 0, "increments per worker per round (overrides config)")
	f.IntVar(&opts.rounds, "rounds", 0, "rounds per workload (overrides config)")
	f.IntVar(&opts.capacity, "capacity", 0, "ring capacity (overrides config)")
	f.IntVar(&opts.producers, "producers", 0, "ring producers (overrides config)")
	f.Uint64Var(&opts.seed, "seed", 0, "launch order seed (overrides config)")
	f.BoolVar(&opts.pin, "pin", false, "pin each worker to its own CPU (Linux only)")
	return cmd
}

func newProbesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "probes",
		Short: "Print platform and CPU feature probes as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dp := control.NewDebugProbes()
			control.RegisterPlatformProbes(dp)
			return writeJSON(cmd.OutOrStdout(), dp.DumpState())
		},
	}
}

func runStress(ctx context.Context, cmd *cobra.Command, opts *options) error {
	logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
	if err != nil {
		return err
	}

	store := control.NewConfigStore(control.DefaultConfig())
	if opts.configPath != "" {
		if err := store.ReloadFromFile(opts.configPath); err != nil {
			return err
		}
	}
	cfg := applyOverrides(cmd, store.Get(), opts)
	if err := store.SetSync(cfg); err != nil {
		return err
	}

	metrics, err := control.NewMetricsRegistry(cfg.MetricsNamespace)
	if err != nil {
		return err
	}
	runner := stress.NewRunner(cfg, metrics, logger)
	report, runErr := runner.Run(ctx, runner.Workloads()...)
	if report != nil {
		if err := printReport(cmd.OutOrStdout(), report, opts.jsonOutput); err != nil {
			return err
		}
	}
	return runErr
}

// applyOverrides copies only flags the user set explicitly.
func applyOverrides(cmd *cobra.Command, cfg control.Config, opts *options) control.Config {
	f := cmd.Flags()
	if f.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if f.Changed("iterations") {
		cfg.Iterations = opts.iterations
	}
	if f.Changed("rounds") {
		cfg.Rounds = opts.rounds
	}
	if f.Changed("capacity") {
		cfg.RingCapacity = opts.capacity
	}
	if f.Changed("producers") {
		cfg.Producers = opts.producers
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("pin") {
		cfg.Pin = opts.pin
	}
	return cfg
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", format)
	}
}

func printReport(w io.Writer, report *stress.Report, asJSON bool) error {
	if asJSON {
		return writeJSON(w, report)
	}
	fmt.Fprintf(w, "run %s\n", report.RunID)
	for _, r := range report.Results {
		fmt.Fprintf(w, "  %-5s round %d: acquisitions=%d max_streak=%d", r.Workload, r.Round, r.Acquisitions, r.MaxStreak)
		if r.Pushes > 0 {
			fmt.Fprintf(w, " pushes=%d wraps=%d", r.Pushes, r.Wraps)
		}
		fmt.Fprintf(w, " took=%s\n", r.Duration)
	}
	keys := make([]string, 0, len(report.Metrics))
	for k := range report.Metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s %g\n", k, report.Metrics[k])
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
