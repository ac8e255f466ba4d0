// File: internal/affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pins stress workers to CPUs so spin-lock contention happens between
// physically parallel threads rather than goroutines sharing one core.

package affinity

import (
	"errors"
	"runtime"
)

// ErrNotSupported is returned where thread affinity cannot be set.
var ErrNotSupported = errors.New("CPU affinity not supported")

// Pin locks the calling goroutine to its OS thread and binds that thread to
// the slot-th CPU of the process's allowed set (wrapping around). The
// returned function restores the previous mask and unlocks the thread; it
// must be called from the same goroutine.
func Pin(slot int) (unpin func(), err error) {
	cpus, err := AllowedCPUs()
	if err != nil {
		return func() {}, err
	}
	if slot < 0 {
		slot = -slot
	}
	runtime.LockOSThread()
	restore, err := platformPin(cpus[slot%len(cpus)])
	if err != nil {
		runtime.UnlockOSThread()
		return func() {}, err
	}
	return func() {
		restore()
		runtime.UnlockOSThread()
	}, nil
}
