package ring

import "iter"

// All yields (slot, value) pairs in physical order 0..Cap()-1.
// Values are read from live storage at each step.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(r.buf); i++ {
			if !yield(i, r.buf[i]) {
				return
			}
		}
	}
}

// Backward yields (slot, value) pairs in physical order Cap()-1..0.
func (r *Ring[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(r.buf) - 1; i >= 0; i-- {
			if !yield(i, r.buf[i]) {
				return
			}
		}
	}
}

// Values yields slot values in physical order.
func (r *Ring[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range r.All() {
			if !yield(v) {
				return
			}
		}
	}
}
