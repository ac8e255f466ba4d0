package stress

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/justeige/JUL/ring"
	"github.com/justeige/JUL/spinlock"
)

// RingWorkload has Producers goroutines push into one ring guarded by a
// spin lock. Values are unique and positive so slots can be validated.
type RingWorkload struct {
	Capacity          int
	Producers         int
	PushesPerProducer int
	Seed              uint64
	Pin               bool
}

// Name implements Workload.
func (w RingWorkload) Name() string { return "ring" }

// Round implements Workload.
func (w RingWorkload) Round(ctx context.Context, round int) (Result, error) {
	r, err := ring.New[int](w.Capacity)
	if err != nil {
		return Result{}, fmt.Errorf("ring round %d: %w", round, err)
	}
	var (
		lock  spinlock.SpinLock
		wraps int
		acq   = newAcquisitionLog()
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range launchOrder(w.Producers, w.Seed+uint64(round)) {
		g.Go(func() error {
			unpin, err := pinWorker(w.Pin, id)
			if err != nil {
				return err
			}
			defer unpin()
			base := id * w.PushesPerProducer
			for i := 0; i < w.PushesPerProducer; i++ {
				if i%ctxCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				lock.Lock()
				if r.Push(base + i + 1) {
					wraps++
				}
				acq.record(id)
				lock.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("ring round %d: %w", round, err)
	}

	total := w.Producers * w.PushesPerProducer
	if err := w.verify(r, total, wraps); err != nil {
		return Result{}, fmt.Errorf("ring round %d: %w", round, err)
	}
	return Result{
		Workload:     w.Name(),
		Round:        round,
		Acquisitions: acq.len(),
		MaxStreak:    acq.drainMaxStreak(),
		Pushes:       total,
		Wraps:        wraps,
	}, nil
}

func (w RingWorkload) verify(r *ring.Ring[int], total, wraps int) error {
	n := r.Cap()
	if wraps != total/n {
		return fmt.Errorf("wraps %d, want %d: %w", wraps, total/n, ErrRingInvariant)
	}
	if r.Index() != total%n {
		return fmt.Errorf("index %d, want %d: %w", r.Index(), total%n, ErrRingInvariant)
	}
	written := n
	if total < n {
		written = total
	}
	for i, v := range r.All() {
		if i < written && (v < 1 || v > total) {
			return fmt.Errorf("slot %d holds %d outside [1, %d]: %w", i, v, total, ErrRingInvariant)
		}
		if i >= written && v != 0 {
			return fmt.Errorf("unwritten slot %d holds %d: %w", i, v, ErrRingInvariant)
		}
	}
	if latest, ok := r.Latest(); ok && !ring.Contains(r, latest) {
		return fmt.Errorf("latest value %d missing: %w", latest, ErrRingInvariant)
	}
	return nil
}
