package vec

import (
	"fmt"
	"slices"

	"github.com/kolkov/socow/internal/vec/block"
	"github.com/kolkov/socow/internal/vec/growth"
	"github.com/kolkov/socow/internal/vec/stats"
)

// Push appends x. Amortized O(1).
//
// x is passed by value, so v.Push(v.At(i)) is always safe. Growth past the
// allocatable limit panics with an error wrapping ErrCapacity, like append.
func (v *Vector[T, B]) Push(x T) {
	v.reserveOne()
	v.appendOne(x)
}

// PushRef appends a copy of *p. p may point at an element of v itself, even
// when the append grows or forks the storage and discards the slot p
// points at.
//
// The copy is taken before v is touched, so a panicking Copy leaves v
// exactly as it was, capacity and mode included.
func (v *Vector[T, B]) PushRef(p *T) {
	x := copyElem(*p)
	v.reserveOne()
	v.appendOne(x)
}

// PushAll appends xs in order with at most one reallocation. xs may be a
// view of v itself.
func (v *Vector[T, B]) PushAll(xs ...T) {
	if len(xs) == 0 {
		return
	}
	if overlaps(v.view(), xs) {
		xs = slices.Clone(xs)
	}
	want := v.Len() + len(xs)
	if want > v.Cap() {
		next, ok := growth.Next[T](v.Cap())
		if !ok || !growth.Fits[T](want) {
			panic(fmt.Errorf("%w: cannot hold %d elements", ErrCapacity, want))
		}
		stats.RecordGrowth()
		v.rebuild(max(next, want))
	} else {
		v.unshare(want)
	}
	for _, x := range xs {
		v.appendOne(x)
	}
}

// Pop removes and returns the last element.
//
// PRECONDITION: !Empty().
func (v *Vector[T, B]) Pop() T {
	d := v.Data()
	n := len(d) - 1
	x := d[n]
	v.truncate(n)
	return x
}

// Insert places x at index i, shifting the tail right, and returns i.
// O(Len()-i).
//
// PRECONDITION: 0 <= i <= Len().
func (v *Vector[T, B]) Insert(i int, x T) int {
	v.Push(x)
	v.rotateIn(i)
	return i
}

// InsertRef places a copy of *p at index i and returns i. Like PushRef, p
// may point into v.
func (v *Vector[T, B]) InsertRef(i int, p *T) int {
	v.PushRef(p)
	v.rotateIn(i)
	return i
}

// rotateIn walks the last element down to index i by adjacent swaps.
func (v *Vector[T, B]) rotateIn(i int) {
	d := v.view()
	for j := len(d) - 1; j > i; j-- {
		d[j-1], d[j] = d[j], d[j-1]
	}
}

// Erase removes the element at index i and returns i, the index of the
// element that followed it. Erase(Len()) is a no-op returning Len().
func (v *Vector[T, B]) Erase(i int) int {
	if i == v.Len() {
		return i
	}
	return v.EraseRange(i, i+1)
}

// EraseRange removes the elements in [first, last) and returns first.
// An empty range changes nothing and does not fork.
//
// PRECONDITION: 0 <= first <= last <= Len().
func (v *Vector[T, B]) EraseRange(first, last int) int {
	cnt := last - first
	if cnt == 0 {
		return first
	}
	d := v.Data()
	for j := first; j < len(d)-cnt; j++ {
		d[j], d[j+cnt] = d[j+cnt], d[j]
	}
	v.truncate(len(d) - cnt)
	return first
}

// Reserve ensures Cap() >= c and leaves v owning its storage exclusively.
//
// Returns an error wrapping ErrCapacity, with v unchanged, when c is
// negative or larger than any block that can be allocated.
func (v *Vector[T, B]) Reserve(c int) error {
	if !growth.Fits[T](c) {
		return fmt.Errorf("%w: requested %d, limit %d", ErrCapacity, c, growth.Max[T]())
	}
	if v.Cap() < c {
		v.rebuild(c)
		return nil
	}
	v.unshare(c)
	return nil
}

// ShrinkToFit releases spare capacity. A vector whose elements fit inline
// returns to inline storage; otherwise Cap() == Len() afterwards.
func (v *Vector[T, B]) ShrinkToFit() {
	if n := v.Len(); n != v.Cap() {
		v.rebuild(n)
	}
}

// Clear removes all elements and keeps the capacity.
//
// A block shared with other vectors is left to them untouched, and v
// takes a fresh empty block of the same capacity instead of copying
// elements only to discard them.
func (v *Vector[T, B]) Clear() {
	switch {
	case v.blk == nil:
		v.truncate(0)
	case v.blk.Unique():
		v.blk.SetLen(0)
	default:
		c := v.blk.Cap()
		v.dropBlock()
		v.blk = block.New[T](c)
		stats.RecordFork()
	}
}
