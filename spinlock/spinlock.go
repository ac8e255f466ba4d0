// File: spinlock/spinlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package spinlock

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/justeige/JUL/api"
)

var (
	_ sync.Locker = (*SpinLock)(nil)
	_ api.Locker  = (*SpinLock)(nil)
)

const (
	unlocked uint32 = 0
	locked   uint32 = 1
)

// noCopy makes go vet's copylocks check reject copies of a SpinLock.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// SpinLock is a test-and-set spin lock. The zero value is unlocked.
// A SpinLock must not be copied after first use.
type SpinLock struct {
	_    noCopy
	_    cpu.CacheLinePad
	flag atomic.Uint32
	_    cpu.CacheLinePad
}

// Lock acquires the lock, spinning until it is free.
// Go atomics are sequentially consistent, so a successful CAS here observes
// every write the previous holder made before its Unlock.
func (l *SpinLock) Lock() {
	for !l.flag.CompareAndSwap(unlocked, locked) {
	}
}

// TryLock makes a single acquire attempt.
func (l *SpinLock) TryLock() bool {
	return l.flag.CompareAndSwap(unlocked, locked)
}

// Unlock releases the lock. It must only follow a successful Lock or TryLock.
func (l *SpinLock) Unlock() {
	l.flag.Store(unlocked)
}

// Locked reports whether the flag is currently held. The answer may be stale
// by the time the caller acts on it; use it for diagnostics only.
func (l *SpinLock) Locked() bool {
	return l.flag.Load() == locked
}
