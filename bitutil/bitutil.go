// Package bitutil provides single-bit helpers over any integer type.
package bitutil

import (
	"math/bits"
	"unsafe"
)

// Integer is any signed or unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Set returns i with bit n set.
func Set[T Integer](i T, n uint) T { return i | T(1)<<n }

// Clear returns i with bit n cleared.
func Clear[T Integer](i T, n uint) T { return i &^ (T(1) << n) }

// Check reports whether bit n of i is set.
func Check[T Integer](i T, n uint) bool { return i&(T(1)<<n) != 0 }

// Toggle returns i with bit n flipped.
func Toggle[T Integer](i T, n uint) T { return i ^ T(1)<<n }

// Count returns the number of set bits in the two's complement representation of i.
func Count[T Integer](i T) int {
	return bits.OnesCount64(uint64(i) & mask[T]())
}

// Width returns the size of T in bits.
func Width[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// mask keeps sign-extended bits of narrow signed types out of Count.
func mask[T Integer]() uint64 {
	w := Width[T]()
	if w == 64 {
		return ^uint64(0)
	}
	return 1<<uint(w) - 1
}
