// Package vec provides Vector, a growable array that combines small-buffer
// inline storage with copy-on-write sharing of its heap block.
//
// Two common cases cost no extra allocations:
//   - vectors that never exceed N elements live entirely inside the Vector
//     value, with no heap allocation at all
//   - vectors that are cloned and then only read share a single heap block
//     until one clone writes, at which point that clone forks a private copy
//
// # Quick Start
//
// N is fixed by the second type parameter, an array type:
//
//	var v vec.Vector[int, [4]int] // inline capacity 4
//
//	v.Push(1)
//	v.Push(2)                     // still inline, no allocation
//	v.PushAll(3, 4, 5)            // promoted to a shared block, Cap() >= 5
//
//	c := v.Clone()                // O(1): c and v share the block
//	c.Set(0, 100)                 // c forks; v still reads 1
//	c.Release()
//	v.Release()
//
// # Storage Modes
//
// A Vector is in one of two modes, reported by [Vector.Mode]:
//
//	Inline:  elements in the embedded [N]T array, Cap() == N
//	Shared:  elements in a reference-counted block, Cap() > N at promotion
//
// Appending past N promotes to Shared with capacity 2N; later growth keeps
// doubling. [Vector.ShrinkToFit] and forks of a block whose elements fit in
// N slots return to Inline.
//
// # Copy-on-Write
//
// [Vector.Clone] of a shared vector only takes a reference. Every mutating
// method ([Vector.Data], [Vector.Ref], [Vector.Set], [Vector.Push],
// [Vector.Pop], [Vector.Insert], [Vector.Erase], [Vector.Clear],
// [Vector.Reserve], ...) first forks a block that other vectors still hold.
// Read methods ([Vector.At], [Vector.View], [Vector.All], [Vector.Len], ...)
// never fork.
//
// Vectors must not be copied by assignment: a copy would share a block
// without holding a reference. go vet reports such copies. Use Clone or
// [Vector.Assign], and call [Vector.Release] to give a block back
// deterministically.
//
// # Element Copies
//
// Plain assignment copies elements. Element types that own memory can
// implement [Copier]; Copy is then used for every duplication (fork, clone
// of inline storage, [Vector.PushRef]). A panicking Copy propagates after
// any partially built storage is discarded, leaving every vector unchanged.
//
// # Thread Safety
//
// Vectors are NOT safe for concurrent use, and reference counts are plain
// integers: a vector and all clones sharing its block must stay on one
// goroutine or be synchronized externally. The counters behind [ReadStats]
// are atomic and process-wide.
package vec
