// Package block implements the reference-counted heap block behind a shared vector.
//
// A Block holds a fixed capacity, a live element count, a reference count and
// the element slots. Any number of vectors may point at one block; the block
// is destroyed exactly when the last of them releases it.
//
// Lifecycle:
//   - New: refs = 1, count = 0, all slots zero
//   - Retain: another vector shares the block (copy construction)
//   - Release: one holder goes away; at zero the live slots are zeroed and
//     the block is counted as freed
//
// Thread Safety: NOT safe for concurrent use. Reference counts are plain ints;
// callers must confine a block and every vector sharing it to one goroutine
// or synchronize externally.
package block

import "github.com/kolkov/socow/internal/vec/stats"

// Block is a fixed-capacity run of elements shared by one or more vectors.
//
// Memory layout: 16 bytes of counters plus a slice header; the element array
// is a single allocation of exactly Cap() slots.
type Block[T any] struct {
	refs  int // Holders of this block, >= 1 while alive.
	count int // Live elements, the prefix elems[:count].
	elems []T // len(elems) == capacity, immutable after New.
}

// New allocates an exclusively owned, empty block with room for capacity elements.
func New[T any](capacity int) *Block[T] {
	stats.RecordBlockAlloc()
	return &Block[T]{
		refs:  1,
		elems: make([]T, capacity),
	}
}

// Cap returns the fixed capacity.
func (b *Block[T]) Cap() int {
	return len(b.elems)
}

// Len returns the number of live elements.
func (b *Block[T]) Len() int {
	return b.count
}

// Refs returns the current reference count.
func (b *Block[T]) Refs() int {
	return b.refs
}

// Unique reports whether exactly one vector holds the block.
// Only a unique block may be written in place.
func (b *Block[T]) Unique() bool {
	return b.refs == 1
}

// Retain registers one more holder.
func (b *Block[T]) Retain() {
	b.refs++
}

// Release drops one holder and reports whether the block was destroyed.
//
// The last Release zeroes the live slots so values they reference become
// collectable even if a stale pointer to the block survives.
func (b *Block[T]) Release() bool {
	b.refs--
	if b.refs > 0 {
		return false
	}
	clear(b.elems[:b.count])
	b.count = 0
	stats.RecordBlockFree()
	return true
}

// Elems returns the live elements. The slice is capped at Len so appends
// through it cannot reach the spare slots.
func (b *Block[T]) Elems() []T {
	return b.elems[:b.count:b.count]
}

// Slots returns every slot, live or not. Callers write past Len and then
// publish the new count with SetLen.
func (b *Block[T]) Slots() []T {
	return b.elems
}

// SetLen publishes n live elements. Shrinking zeroes the dropped slots.
//
// PRECONDITION: 0 <= n <= Cap(), and slots [Len(), n) were written.
func (b *Block[T]) SetLen(n int) {
	if n < b.count {
		clear(b.elems[n:b.count])
	}
	b.count = n
}
