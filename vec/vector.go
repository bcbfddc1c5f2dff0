package vec

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"github.com/kolkov/socow/internal/vec/block"
)

// Buffer constrains the inline storage of a Vector to an array of T.
// The array length is the inline capacity N.
type Buffer[T any] interface {
	~[0]T | ~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[10]T | ~[12]T | ~[16]T | ~[24]T | ~[32]T | ~[48]T | ~[64]T | ~[128]T
}

// Mode is the storage representation a Vector currently uses.
type Mode uint8

const (
	// ModeInline stores elements in the array embedded in the Vector.
	ModeInline Mode = iota

	// ModeShared stores elements in a reference-counted heap block.
	ModeShared
)

// String returns "inline" or "shared".
func (m Mode) String() string {
	if m == ModeShared {
		return "shared"
	}
	return "inline"
}

// noCopy lets go vet's copylocks check flag Vectors copied by value.
// A plain copy would share a block without taking a reference.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Vector is a growable array of T that keeps up to len(B) elements inline
// and shares its heap block between clones until one of them writes.
//
// The zero value is an empty inline vector ready to use. A Vector must not
// be copied by assignment after first use; use Clone or Assign.
//
// Representation:
//   - Inline: blk == nil, elements in inline[:n]
//   - Shared: blk != nil, elements in blk, inline holds only zero values
//
// Thread Safety: NOT safe for concurrent use, including concurrent reads of
// clones that share a block while either side mutates.
type Vector[T any, B Buffer[T]] struct {
	_ noCopy

	blk    *block.Block[T]
	n      int
	inline B
}

// From returns an inline-or-shared vector holding xs, in order.
func From[T any, B Buffer[T]](xs ...T) *Vector[T, B] {
	v := new(Vector[T, B])
	v.PushAll(xs...)
	return v
}

// slots views the whole inline array as a slice.
func (v *Vector[T, B]) slots() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.inline)), len(v.inline))
}

// view returns the live elements without forking.
func (v *Vector[T, B]) view() []T {
	if v.blk != nil {
		return v.blk.Elems()
	}
	return v.slots()[:v.n:v.n]
}

// Mode returns the current storage representation.
func (v *Vector[T, B]) Mode() Mode {
	if v.blk != nil {
		return ModeShared
	}
	return ModeInline
}

// Len returns the number of elements.
func (v *Vector[T, B]) Len() int {
	if v.blk != nil {
		return v.blk.Len()
	}
	return v.n
}

// Cap returns the number of elements the current storage can hold:
// the inline capacity while inline, the block capacity while shared.
func (v *Vector[T, B]) Cap() int {
	if v.blk != nil {
		return v.blk.Cap()
	}
	return len(v.inline)
}

// InlineCap returns N, the inline capacity fixed by B.
func (v *Vector[T, B]) InlineCap() int {
	return len(v.inline)
}

// Empty reports whether the vector has no elements.
func (v *Vector[T, B]) Empty() bool {
	return v.Len() == 0
}

// Refs returns how many vectors hold the same block, or 1 while inline.
func (v *Vector[T, B]) Refs() int {
	if v.blk != nil {
		return v.blk.Refs()
	}
	return 1
}

// SharesWith reports whether v and o currently point at the same block.
func (v *Vector[T, B]) SharesWith(o *Vector[T, B]) bool {
	return v.blk != nil && v.blk == o.blk
}

// At returns the element at index i. It never forks.
func (v *Vector[T, B]) At(i int) T {
	return v.view()[i]
}

// Front returns the first element.
func (v *Vector[T, B]) Front() T {
	return v.view()[0]
}

// Back returns the last element.
func (v *Vector[T, B]) Back() T {
	s := v.view()
	return s[len(s)-1]
}

// View returns the live elements for reading. It never forks, so the slice
// may alias a block shared with other vectors: callers must not write
// through it, and it is invalidated by the next mutation of v.
func (v *Vector[T, B]) View() []T {
	return v.view()
}

// All iterates over index/value pairs without forking.
func (v *Vector[T, B]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.view() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values iterates over the elements without forking.
func (v *Vector[T, B]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.view() {
			if !yield(x) {
				return
			}
		}
	}
}

// Data returns the live elements for reading and writing, forking first if
// the block is shared. The slice is valid until the next call that changes
// the length or capacity of v.
func (v *Vector[T, B]) Data() []T {
	v.unshare(v.Len())
	return v.view()
}

// Ref returns a pointer to the element at index i, forking first if needed.
func (v *Vector[T, B]) Ref(i int) *T {
	return &v.Data()[i]
}

// Set replaces the element at index i, forking first if needed.
func (v *Vector[T, B]) Set(i int, x T) {
	v.Data()[i] = x
}

// Format implements fmt.Formatter by formatting the elements as a slice.
func (v *Vector[T, B]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.view())
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable, B Buffer[T]](a, b *Vector[T, B]) bool {
	return slices.Equal(a.view(), b.view())
}
