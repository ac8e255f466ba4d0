package stress

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/justeige/JUL/control"
	"github.com/justeige/JUL/random"
	"github.com/justeige/JUL/scope"
)

// Report collects every verified round of one run.
type Report struct {
	RunID   string             `json:"run_id"`
	Results []Result           `json:"results"`
	Metrics map[string]float64 `json:"metrics"`
}

// Runner executes workloads concurrently, each for cfg.Rounds rounds.
type Runner struct {
	cfg     control.Config
	metrics *control.MetricsRegistry
	logger  *slog.Logger

	rounds atomic.Int64
}

// NewRunner creates a runner. A nil logger uses slog.Default().
func NewRunner(cfg control.Config, metrics *control.MetricsRegistry, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, metrics: metrics, logger: logger}
}

// Workloads builds the lock and ring workloads from the runner config.
func (r *Runner) Workloads() []Workload {
	seed := r.cfg.Seed
	if seed == 0 {
		seed = uint64(random.Int(1, 1<<30))
	}
	return []Workload{
		LockWorkload{
			Workers:    r.cfg.Workers,
			Iterations: r.cfg.Iterations,
			Seed:       seed,
			Pin:        r.cfg.Pin,
		},
		RingWorkload{
			Capacity:          r.cfg.RingCapacity,
			Producers:         r.cfg.Producers,
			PushesPerProducer: r.cfg.PushesPerProducer,
			Seed:              seed,
			Pin:               r.cfg.Pin,
		},
	}
}

// RegisterProbes exposes runner progress on dp.
func (r *Runner) RegisterProbes(dp *control.DebugProbes) {
	dp.RegisterProbe("stress.rounds_completed", func() any {
		return r.rounds.Load()
	})
}

// Run executes workloads until every round passes, one fails, or ctx ends.
func (r *Runner) Run(ctx context.Context, workloads ...Workload) (*Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	report := &Report{RunID: uuid.NewString()}
	logger := r.logger.With("run_id", report.RunID)
	logger.Info("stress run starting", "workloads", len(workloads), "rounds", r.cfg.Rounds)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, w := range workloads {
		g.Go(func() error {
			results, err := r.runWorkload(gctx, logger.With("workload", w.Name()), w)
			mu.Lock()
			report.Results = append(report.Results, results...)
			mu.Unlock()
			return err
		})
	}
	runErr := g.Wait()

	sort.Slice(report.Results, func(i, j int) bool {
		a, b := report.Results[i], report.Results[j]
		if a.Workload != b.Workload {
			return a.Workload < b.Workload
		}
		return a.Round < b.Round
	})
	snap, err := r.metrics.Snapshot()
	if err != nil {
		return report, err
	}
	report.Metrics = snap

	if runErr != nil {
		logger.Error("stress run failed", "error", runErr)
		return report, fmt.Errorf("run %s: %w", report.RunID, runErr)
	}
	logger.Info("stress run passed", "rounds", len(report.Results))
	return report, nil
}

func (r *Runner) runWorkload(ctx context.Context, logger *slog.Logger, w Workload) (results []Result, err error) {
	defer scope.OnFailure(&err, func() {
		logger.Warn("workload aborted", "completed_rounds", len(results), "error", err)
	}).Run()

	for round := 0; round < r.cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		stop := scope.MeasureTime(logger, w.Name())
		res, roundErr := w.Round(ctx, round)
		elapsed := stop()

		r.metrics.RecordRound(w.Name(), elapsed, roundErr)
		if roundErr != nil {
			return results, roundErr
		}
		res.Duration = elapsed
		r.metrics.RecordLock(w.Name(), res.Acquisitions)
		r.metrics.SetMaxStreak(w.Name(), res.MaxStreak)
		if res.Pushes > 0 {
			r.metrics.RecordRing(res.Pushes, res.Wraps)
		}
		r.rounds.Add(1)
		results = append(results, res)

		logger.Debug("round verified",
			"round", round,
			"acquisitions", res.Acquisitions,
			"max_streak", res.MaxStreak,
			"wraps", res.Wraps)
	}
	return results, nil
}
