package debruijn_test

import (
	"testing"

	"github.com/katalvlaran/dbgcycles/debruijn"
)

// BenchmarkSimpleCycles_Binary4 runs the DFS oracle on dBG(4, 2).
func BenchmarkSimpleCycles_Binary4(b *testing.B) {
	g, err := debruijn.New(4, 2)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.SimpleCycles(g.NodeCount()); err != nil {
			b.Fatal(err)
		}
	}
}
