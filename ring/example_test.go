package ring_test

import (
	"fmt"

	"github.com/justeige/JUL/ring"
)

func Example() {
	r := ring.MustNew[int](3)
	for i := 1; i <= 4; i++ {
		wrapped := r.Push(i)
		fmt.Println(i, wrapped)
	}
	fmt.Println(r.Slice(), r.Current())
	// Output:
	// 1 false
	// 2 false
	// 3 true
	// 4 false
	// [4 2 3] 2
}

func ExampleCombine() {
	a, _ := ring.Of(1, 2)
	b, _ := ring.Of(3, 4, 5)
	c := ring.Combine(a, b)
	fmt.Println(c.Cap(), c.Slice())
	// Output: 5 [1 2 3 4 5]
}
