// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"github.com/justeige/JUL/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a circular buffer of fixed capacity.
type Ring[T any] struct {
	buf    []T
	index  int
	pushed bool
}

// New allocates a ring whose slots hold the zero value of T.
func New[T any](capacity int) (*Ring[T], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	return &Ring[T]{buf: make([]T, capacity)}, nil
}

// NewFilled allocates a ring with every slot set to fill.
func NewFilled[T any](capacity int, fill T) (*Ring[T], error) {
	r, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	for i := range r.buf {
		r.buf[i] = fill
	}
	return r, nil
}

// Of builds a ring sized to values, with values copied into slots in order.
func Of[T any](values ...T) (*Ring[T], error) {
	r, err := New[T](len(values))
	if err != nil {
		return nil, err
	}
	copy(r.buf, values)
	return r, nil
}

// MustNew is New that panics on an invalid capacity.
func MustNew[T any](capacity int) *Ring[T] {
	r, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return r
}

func checkCapacity(capacity int) error {
	if capacity <= 0 {
		return api.NewError(api.ErrCodeInvalidCapacity, "ring: capacity must be positive").
			WithContext("capacity", capacity)
	}
	return nil
}

// Push writes v at the write index and advances it.
// It returns true when this write wrapped the index back to 0, i.e. on every
// Cap()-th call; subsequent pushes overwrite the oldest slots in order.
func (r *Ring[T]) Push(v T) bool {
	r.buf[r.index] = v
	r.pushed = true
	if r.index+1 >= len(r.buf) {
		r.index = 0
		return true
	}
	r.index++
	return false
}

// At returns the value in physical slot i.
func (r *Ring[T]) At(i int) (T, error) {
	if err := r.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return r.buf[i], nil
}

// Set overwrites physical slot i without moving the write index.
func (r *Ring[T]) Set(i int, v T) error {
	if err := r.checkIndex(i); err != nil {
		return err
	}
	r.buf[i] = v
	return nil
}

func (r *Ring[T]) checkIndex(i int) error {
	if i < 0 || i >= len(r.buf) {
		return api.NewError(api.ErrCodeIndexOutOfRange, "ring: index out of range").
			WithContext("index", i).
			WithContext("capacity", len(r.buf))
	}
	return nil
}

// Current returns the slot at the write index: the slot the next Push will
// overwrite. After a wrap that is the oldest value; before the first wrap it
// is a slot that has not been pushed yet (zero or fill value).
func (r *Ring[T]) Current() T {
	return r.buf[r.index]
}

// Latest returns the most recently pushed value; ok is false before any Push.
func (r *Ring[T]) Latest() (v T, ok bool) {
	if !r.pushed {
		return v, false
	}
	i := r.index - 1
	if i < 0 {
		i = len(r.buf) - 1
	}
	return r.buf[i], true
}

// Index returns the write index, always in [0, Cap()).
func (r *Ring[T]) Index() int { return r.index }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Len equals Cap: every slot is initialized from construction on.
func (r *Ring[T]) Len() int { return len(r.buf) }

// ContainsFunc reports whether any slot satisfies pred.
func (r *Ring[T]) ContainsFunc(pred func(T) bool) bool {
	for _, v := range r.buf {
		if pred(v) {
			return true
		}
	}
	return false
}

// Contains reports whether v equals any slot of r.
func Contains[T comparable](r *Ring[T], v T) bool {
	for _, x := range r.buf {
		if x == v {
			return true
		}
	}
	return false
}

// ApplyEach replaces every slot with fn(slot), in physical order.
func (r *Ring[T]) ApplyEach(fn func(T) T) {
	for i, v := range r.buf {
		r.buf[i] = fn(v)
	}
}

// Slice returns a copy of the slots in physical order.
func (r *Ring[T]) Slice() []T {
	out := make([]T, len(r.buf))
	copy(out, r.buf)
	return out
}

// Combine returns a new ring of capacity a.Cap()+b.Cap() whose physical
// slots are a's slots followed by b's. The write index starts at 0.
func Combine[T any](a, b *Ring[T]) *Ring[T] {
	buf := make([]T, 0, len(a.buf)+len(b.buf))
	buf = append(buf, a.buf...)
	buf = append(buf, b.buf...)
	return &Ring[T]{buf: buf}
}
