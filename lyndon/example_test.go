package lyndon_test

import (
	"fmt"

	"github.com/katalvlaran/dbgcycles/lyndon"
)

// ExampleGenerator_All lists the binary Lyndon words of length 4.
func ExampleGenerator_All() {
	g, err := lyndon.NewSmallest(4, 1, lyndon.FixedLength)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for w := range g.All() {
		fmt.Println(w)
	}

	// Output:
	// 0.0.0.1
	// 0.0.1.1
	// 0.1.1.1
}

// ExampleCollect shows the interleaved order of the bounded mode.
func ExampleCollect() {
	ws, _ := lyndon.Collect(3, 1, lyndon.BoundedLength)
	fmt.Println(ws)

	// Output:
	// [0 0.0.1 0.1 0.1.1 1]
}
