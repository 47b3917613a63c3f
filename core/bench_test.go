// Package core_test provides benchmarks for the Neighborhood container.
package core_test

import (
	"testing"

	"github.com/katalvlaran/quadra/core"
)

// BenchmarkNeighborhood_Get measures sorted-lookup throughput on a
// 1000-neighbor neighborhood (binary search over a packed slice).
func BenchmarkNeighborhood_Get(b *testing.B) {
	var nb core.Neighborhood[float64, int32]
	for v := 0; v < 1000; v++ {
		nb.Append(v, float64(v))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nb.Get(i % 1000)
	}
}

// BenchmarkNeighborhood_Upsert measures sorted-insert cost under random-ish
// insertion order (worst case: O(k) shift per insert).
func BenchmarkNeighborhood_Upsert(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var nb core.Neighborhood[float64, int32]
		for v := 0; v < 256; v++ {
			// Bit-reversed order defeats the append fast path on purpose.
			*nb.Upsert((v*167)%256) = 1
		}
	}
}

// BenchmarkNeighborhood_Iter measures full-scan iteration, the hot loop of
// energy evaluation.
func BenchmarkNeighborhood_Iter(b *testing.B) {
	var nb core.Neighborhood[float64, int32]
	for v := 0; v < 1000; v++ {
		nb.Append(v, float64(v))
	}
	b.ReportAllocs()
	b.ResetTimer()
	var sum float64
	for i := 0; i < b.N; i++ {
		for _, bias := range nb.Iter() {
			sum += bias
		}
	}
	_ = sum
}
