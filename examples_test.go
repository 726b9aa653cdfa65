package strcore

import (
	"fmt"
)

func Example() {
	tape := &Tape{}
	tape.Assign([][]byte{[]byte("banana"), []byte("apple"), []byte("cherry")})

	order := make([]int, tape.Len())
	_ = Sort(tape, DefaultAllocator, order)
	for _, idx := range order {
		fmt.Println(string(tape.At(idx)))
	}
	// Output:
	// apple
	// banana
	// cherry
}

func Example_intersect() {
	a := sliceCollection{[]byte("banana"), []byte("apple"), []byte("cherry")}
	b := sliceCollection{[]byte("cherry"), []byte("orange"), []byte("banana")}

	n := min(a.Len(), b.Len())
	posA, posB := make([]int, n), make([]int, n)
	count, _ := Intersect(a, b, DefaultAllocator, 0, posA, posB)
	fmt.Println(count)
	// Output:
	// 2
}

func Example_findCaseInsensitive() {
	start, length, ok := FindCaseInsensitive([]byte("die straße ist lang"), []byte("STRASSE"))
	fmt.Println(ok, start, length)
	// Output:
	// true 4 7
}
