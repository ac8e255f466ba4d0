// Package spinlock
// Author: momentics <momentics@gmail.com>
//
// Busy-wait mutual exclusion for short critical sections.
//
// Lock spins on an atomic compare-and-swap with no backoff and no yielding;
// the waiting goroutine burns CPU until it wins the flag. There is no
// timeout, no cancellation, and no fairness between waiters: whichever
// goroutine wins the next CAS race acquires the lock, which can starve others
// under contention. Callers that need bounded waits build them on TryLock.
//
// The lock is not reentrant and does not track its holder. Locking twice from
// the same goroutine deadlocks; Unlock without a matching Lock is undefined.
// Neither misuse is detected.
package spinlock
