package vec

// Clone returns an independent copy of v.
//
// A shared vector is cloned in O(1): the clone takes a reference to the same
// block and the first of the two to write forks. An inline vector is copied
// element by element into the clone's own inline storage.
func (v *Vector[T, B]) Clone() *Vector[T, B] {
	w := new(Vector[T, B])
	if v.blk != nil {
		v.blk.Retain()
		w.blk = v.blk
		return w
	}
	copyElems(w.slots(), v.view())
	w.n = v.n
	return w
}

// Assign replaces the contents of v with a copy of src.
//
// The copy is made before v is touched, so a panicking Copy leaves v as it
// was, and v.Assign(v) is a no-op.
func (v *Vector[T, B]) Assign(src *Vector[T, B]) {
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.Release()
}

// Release gives up v's storage: inline elements are zeroed, and a shared
// block loses one reference and is destroyed when it was the last. v is
// left empty and inline, ready for reuse.
//
// Release is the deterministic destructor. A vector that is simply dropped
// is reclaimed by the garbage collector, but its siblings keep counting it
// as a holder and will fork on their next write.
func (v *Vector[T, B]) Release() {
	if v.blk != nil {
		v.dropBlock()
		return
	}
	v.truncate(0)
}

// Swap exchanges the contents of v and o.
//
// Two shared vectors swap block pointers in O(1). Any combination involving
// inline storage also exchanges the inline arrays, O(N). Reference counts
// are unchanged in every case since each block keeps exactly its holders.
func (v *Vector[T, B]) Swap(o *Vector[T, B]) {
	if v == o {
		return
	}
	if v.blk != nil && o.blk != nil {
		v.blk, o.blk = o.blk, v.blk
		return
	}
	v.blk, o.blk = o.blk, v.blk
	v.n, o.n = o.n, v.n
	v.inline, o.inline = o.inline, v.inline
}
