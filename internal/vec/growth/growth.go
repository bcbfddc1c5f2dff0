// Package growth implements the capacity policy for shared vector blocks.
//
// Capacity doubles on overflow: Next(c) = max(2c, 1). Doubling gives amortized
// O(1) appends. The result is clamped to Max, the largest element count whose
// backing array the Go runtime can allocate.
package growth

import (
	"math"
	"unsafe"
)

// maxBytes mirrors the runtime's heap address space limit on 64-bit targets
// (48-bit addresses, one bit kept back for the sign of intermediate math).
const maxBytes = 1<<47 - 1

// Max returns the largest capacity that can be allocated for elements of type T.
//
// Zero-size types never consume memory, so their limit is math.MaxInt.
func Max[T any]() int {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	limit := uint64(math.MaxInt)
	if limit > maxBytes {
		limit = maxBytes
	}
	return int(limit / size)
}

// Next returns the capacity to grow to from old.
//
// Returns false when old is already at Max[T] and no larger block exists.
func Next[T any](old int) (int, bool) {
	limit := Max[T]()
	if old >= limit {
		return old, false
	}
	if old > limit/2 {
		return limit, true
	}
	return max(2*old, 1), true
}

// Fits reports whether a block of capacity c may be allocated for T.
func Fits[T any](c int) bool {
	return c >= 0 && c <= Max[T]()
}
