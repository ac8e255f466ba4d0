package stress

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/justeige/JUL/random"
	"github.com/justeige/JUL/spinlock"
)

// LockWorkload has Workers goroutines each increment a shared counter
// Iterations times inside Lock/Unlock.
type LockWorkload struct {
	Workers    int
	Iterations int
	Seed       uint64
	Pin        bool
}

// Name implements Workload.
func (w LockWorkload) Name() string { return "lock" }

// Round implements Workload.
func (w LockWorkload) Round(ctx context.Context, round int) (Result, error) {
	var (
		lock    spinlock.SpinLock
		counter int
		acq     = newAcquisitionLog()
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range launchOrder(w.Workers, w.Seed+uint64(round)) {
		g.Go(func() error {
			unpin, err := pinWorker(w.Pin, id)
			if err != nil {
				return err
			}
			defer unpin()
			for i := 0; i < w.Iterations; i++ {
				if i%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				lock.Lock()
				counter++
				acq.record(id)
				lock.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("lock round %d: %w", round, err)
	}

	want := w.Workers * w.Iterations
	if counter != want || acq.len() != want {
		return Result{}, fmt.Errorf("lock round %d: counter %d, log %d, want %d: %w",
			round, counter, acq.len(), want, ErrLostUpdate)
	}
	return Result{
		Workload:     w.Name(),
		Round:        round,
		Acquisitions: want,
		MaxStreak:    acq.drainMaxStreak(),
	}, nil
}

// launchOrder returns worker ids 0..n-1 shuffled by seed.
func launchOrder(n int, seed uint64) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return random.Shuffled(ids, seed)
}
