// Package either
// Author: momentics <momentics@gmail.com>
//
// Either holds exactly one of two payload types and remembers which.

package either

import "fmt"

// Either is a closed two-case sum: a Left L or a Right R.
// The zero value is a Left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds the left case.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right builds the right case.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// IsLeft reports whether e holds an L.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether e holds an R.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Left returns the L payload; ok is false when e holds an R.
func (e Either[L, R]) Left() (v L, ok bool) {
	if e.isRight {
		return v, false
	}
	return e.left, true
}

// Right returns the R payload; ok is false when e holds an L.
func (e Either[L, R]) Right() (v R, ok bool) {
	if !e.isRight {
		return v, false
	}
	return e.right, true
}

// Fold applies onLeft or onRight depending on the case held.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// String formats as Left(v) or Right(v).
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
