// Package api
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity ring contract shared by the ring package and its callers.

package api

// Ring is an overwrite-on-wrap circular buffer contract.
// Indexes are physical slot positions in [0, Cap()), not ages.
type Ring[T any] interface {
	// Push stores item at the write index; returns true when the index wrapped to 0.
	Push(item T) bool
	// At returns the slot at a physical index.
	At(index int) (T, error)
	// Current returns the slot the next Push will overwrite.
	Current() T
	// Index returns the current write index.
	Index() int
	// Cap returns the fixed capacity.
	Cap() int
}
