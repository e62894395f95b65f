// SPDX-License-Identifier: MIT

package list_test

import (
	"fmt"

	"github.com/jlzhjp/algorithms/list"
)

// ExampleList inserts in the middle and walks the list in both directions.
func ExampleList() {
	l := list.Of("A", "D")
	_, _ = l.InsertSlice(l.Back(), "B", "C")
	_, _ = l.PushFront("0")
	fmt.Println(l, l.Len())

	for e := l.Back(); e != nil; e = e.Prev() {
		fmt.Print(e.Value())
	}
	fmt.Println()

	// Output:
	// [0 A B C D] 5
	// DCBA0
}
