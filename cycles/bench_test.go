package cycles_test

import (
	"testing"

	"github.com/katalvlaran/dbgcycles/cycles"
)

// BenchmarkEnumAll_Binary4 enumerates every simple cycle of dBG(4, 2).
func BenchmarkEnumAll_Binary4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := cycles.EnumAll(4, 2); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCountOnlyEnum_Ternary counts length-7 cycles of dBG(4, 3).
func BenchmarkCountOnlyEnum_Ternary(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := cycles.CountOnlyEnum(7, 4, 3); err != nil {
			b.Fatal(err)
		}
	}
}
