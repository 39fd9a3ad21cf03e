package lyndon_test

import (
	"testing"

	"github.com/katalvlaran/dbgcycles/lyndon"
)

// BenchmarkFixed_Binary20 walks the 52377 binary Lyndon words of length 20.
func BenchmarkFixed_Binary20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, _ := lyndon.NewSmallest(20, 1, lyndon.FixedLength)
		for range g.All() {
		}
	}
}

// BenchmarkBounded_Ternary10 walks every ternary Lyndon word of length ≤ 10.
func BenchmarkBounded_Ternary10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g, _ := lyndon.NewSmallest(10, 2, lyndon.BoundedLength)
		for range g.All() {
		}
	}
}
