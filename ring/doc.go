// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffer that overwrites its oldest slot once full.
//
// A Ring tracks a single write cursor over a slice allocated once at
// construction. Push is O(1); indexed access addresses physical slots in
// [0, Cap()), which are independent of insertion age. Iteration visits
// physical slot order and reads live storage.
//
// A Ring is not safe for concurrent use. Guard it with a lock (for example
// spinlock.SpinLock) when several goroutines push or read.
package ring
