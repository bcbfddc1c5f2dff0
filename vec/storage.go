package vec

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/kolkov/socow/internal/vec/block"
	"github.com/kolkov/socow/internal/vec/growth"
	"github.com/kolkov/socow/internal/vec/stats"
)

// Copier is implemented by element types whose values must be duplicated
// with more than a plain assignment, such as types owning a slice or map.
//
// Copy is called whenever an element is duplicated: when a shared block is
// forked, when an inline vector is cloned and by PushRef/InsertRef. Moves of
// exclusively owned storage use plain assignment. Copy may panic; the vector
// and all its siblings are left exactly as they were.
type Copier[T any] interface {
	Copy() T
}

// copyElems fills dst with independent copies of src.
func copyElems[T any](dst, src []T) {
	t := reflect.TypeFor[T]()
	switch {
	case t.Kind() == reflect.Interface:
		// The dynamic type decides per element; nil stays nil.
		for i, x := range src {
			dst[i] = copyElem(x)
		}
	case t.Implements(reflect.TypeFor[Copier[T]]()):
		for i, x := range src {
			dst[i] = any(x).(Copier[T]).Copy()
		}
	default:
		copy(dst, src)
	}
}

// copyElem returns an independent copy of x.
func copyElem[T any](x T) T {
	if c, ok := any(x).(Copier[T]); ok {
		return c.Copy()
	}
	return x
}

// transfer fills dst from src, moving when src is about to be discarded by
// its only owner and copying otherwise.
func transfer[T any](dst, src []T, move bool) {
	if move {
		copy(dst, src)
		return
	}
	copyElems(dst, src)
}

// fill transfers src into the empty block nb. If a Copy panics, the
// partially filled block is released before the panic continues.
func fill[T any](nb *block.Block[T], src []T, move bool) {
	if move {
		copy(nb.Slots(), src)
		nb.SetLen(len(src))
		return
	}
	done := false
	defer func() {
		if !done {
			clear(nb.Slots())
			nb.Release()
		}
	}()
	copyElems(nb.Slots(), src)
	nb.SetLen(len(src))
	done = true
}

// overlaps reports whether a and b share any element slot.
func overlaps[T any](a, b []T) bool {
	size := unsafe.Sizeof(*new(T))
	if len(a) == 0 || len(b) == 0 || size == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b))*size && b0 < a0+uintptr(len(a))*size
}

// dropBlock releases v's reference to its block and leaves v inline.
func (v *Vector[T, B]) dropBlock() {
	v.blk.Release()
	v.blk = nil
}

// unshare forks a block held by other vectors so v can write in place and
// then hold need elements without reallocating.
//
// The fork keeps the current capacity, or grows to need in the same copy.
// When need fits inline, v returns to inline storage and the heap is not
// touched.
func (v *Vector[T, B]) unshare(need int) {
	if v.blk == nil || v.blk.Unique() {
		return
	}
	need = max(need, v.blk.Len())
	if need <= len(v.inline) {
		v.rebuild(len(v.inline))
		return
	}
	v.rebuild(max(v.blk.Cap(), need))
}

// rebuild moves the elements into fresh storage with capacity newCap and
// leaves v exclusively owning it. A newCap no larger than the inline capacity
// selects inline storage.
//
// Nothing about v changes until every element sits in the new storage, so a
// panicking Copy leaves v, its block and the block's reference count intact.
//
// PRECONDITION: newCap >= v.Len().
func (v *Vector[T, B]) rebuild(newCap int) {
	src := v.view()
	move := v.blk == nil || v.blk.Unique()

	if newCap <= len(v.inline) {
		if v.blk == nil {
			return
		}
		var buf B
		dst := unsafe.Slice((*T)(unsafe.Pointer(&buf)), len(buf))
		transfer(dst, src, move)
		v.dropBlock()
		v.inline = buf
		v.n = len(src)
		if !move {
			stats.RecordFork()
		}
		stats.RecordDemotion()
		return
	}

	nb := block.New[T](newCap)
	fill(nb, src, move)
	if v.blk == nil {
		clear(v.slots()[:v.n])
		v.n = 0
		stats.RecordPromotion()
	} else {
		v.dropBlock()
		if !move {
			stats.RecordFork()
		}
	}
	v.blk = nb
}

// reserveOne makes room for one more element in exclusively owned storage,
// growing by the doubling policy when full.
func (v *Vector[T, B]) reserveOne() {
	n, c := v.Len(), v.Cap()
	if n < c {
		v.unshare(n + 1)
		return
	}
	next, ok := growth.Next[T](c)
	if !ok {
		panic(fmt.Errorf("%w: cannot grow past %d elements", ErrCapacity, c))
	}
	stats.RecordGrowth()
	v.rebuild(next)
}

// appendOne stores x after the last element.
//
// PRECONDITION: storage is exclusively owned and Len() < Cap().
func (v *Vector[T, B]) appendOne(x T) {
	if v.blk != nil {
		n := v.blk.Len()
		v.blk.Slots()[n] = x
		v.blk.SetLen(n + 1)
		return
	}
	v.slots()[v.n] = x
	v.n++
}

// truncate drops trailing elements down to length n, zeroing their slots.
//
// PRECONDITION: storage is exclusively owned and n <= Len().
func (v *Vector[T, B]) truncate(n int) {
	if v.blk != nil {
		v.blk.SetLen(n)
		return
	}
	clear(v.slots()[n:v.n])
	v.n = n
}
