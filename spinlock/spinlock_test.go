package spinlock

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlockSingleGoroutine(t *testing.T) {
	var l SpinLock
	done := make(chan struct{})
	go func() {
		l.Lock()
		l.Unlock()
		l.Lock()
		l.Unlock()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("uncontended Lock/Unlock blocked")
	}
	assert.False(t, l.Locked())
}

func TestTryLock(t *testing.T) {
	var l SpinLock
	require.True(t, l.TryLock())
	assert.True(t, l.Locked())
	assert.False(t, l.TryLock(), "second TryLock must fail while held")
	l.Unlock()
	assert.True(t, l.TryLock())
	l.Unlock()
}

// TestCounterNoLostUpdates is the stress property: two goroutines each add
// 100000 under the lock, repeated several rounds, and no increment is lost.
func TestCounterNoLostUpdates(t *testing.T) {
	const (
		workers = 2
		perWork = 100_000
		rounds  = 10
	)
	for round := 0; round < rounds; round++ {
		var (
			l       SpinLock
			counter int
			wg      sync.WaitGroup
		)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWork; i++ {
					l.Lock()
					counter++
					l.Unlock()
				}
			}()
		}

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(30 * time.Second):
			t.Fatalf("round %d: timeout, possible deadlock", round)
		}
		require.Equal(t, workers*perWork, counter, "round %d", round)
	}
}

// TestLockBlocksUntilUnlock checks that B cannot enter while A holds the
// lock, and that B observes A's writes once it does.
func TestLockBlocksUntilUnlock(t *testing.T) {
	var (
		l        SpinLock
		released atomic.Bool
		payload  int
	)

	l.Lock()
	payload = 1

	entered := make(chan bool, 1)
	go func() {
		l.Lock()
		entered <- released.Load() && payload == 2
		l.Unlock()
	}()

	select {
	case <-entered:
		t.Fatal("second Lock returned while the lock was held")
	case <-time.After(50 * time.Millisecond):
	}

	payload = 2
	released.Store(true)
	l.Unlock()

	select {
	case ok := <-entered:
		assert.True(t, ok, "waiter must see writes made before Unlock")
	case <-time.After(5 * time.Second):
		t.Fatal("waiter never acquired the lock")
	}
}

// TestMutualExclusion tracks how many goroutines are inside the critical
// section at once; the count must never exceed one.
func TestMutualExclusion(t *testing.T) {
	var (
		l      SpinLock
		inside atomic.Int32
		bad    atomic.Bool
		wg     sync.WaitGroup
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				l.Lock()
				if inside.Add(1) != 1 {
					bad.Store(true)
				}
				inside.Add(-1)
				l.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.False(t, bad.Load())
}
