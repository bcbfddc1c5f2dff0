package vec_test

import (
	"errors"
	"fmt"

	"github.com/kolkov/socow/vec"
)

// Example demonstrates inline storage, promotion and copy-on-write.
func Example() {
	var v vec.Vector[int, [4]int]
	for i := 1; i <= 4; i++ {
		v.Push(i)
	}
	fmt.Println(v.Mode(), v.Len(), v.Cap())

	v.Push(5)
	fmt.Println(v.Mode(), v.Len(), v.Cap())

	c := v.Clone()
	fmt.Println("shared:", c.SharesWith(&v))

	v.Push(6)
	fmt.Println("shared:", c.SharesWith(&v))
	fmt.Println(&v, c)

	c.Erase(1)
	fmt.Println(&v, c)

	c.Release()
	v.Release()

	// Output:
	// inline 4 4
	// shared 5 8
	// shared: true
	// shared: false
	// [1 2 3 4 5 6] [1 2 3 4 5]
	// [1 2 3 4 5 6] [1 3 4 5]
}

// Example_pushRef shows appending an element of the vector to itself while
// the append relocates the storage.
func Example_pushRef() {
	v := vec.From[string, [2]string]("a", "b")

	v.PushRef(v.Ref(0))
	fmt.Println(v, v.Mode())

	// Output:
	// [a b a] shared
}

// Example_reserve shows capacity errors.
func Example_reserve() {
	var v vec.Vector[int64, [8]int64]

	err := v.Reserve(-1)
	fmt.Println(errors.Is(err, vec.ErrCapacity))

	err = v.Reserve(100)
	fmt.Println(err, v.Cap())

	// Output:
	// true
	// <nil> 100
}

// ExampleCheckVersion shows the version gate used by workload files.
func ExampleCheckVersion() {
	fmt.Println(vec.CheckVersion("v0.1.0"))
	fmt.Println(errors.Is(vec.CheckVersion("v9.0.0"), vec.ErrVersion))

	// Output:
	// <nil>
	// true
}
