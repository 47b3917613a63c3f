// Package bqm_test provides benchmarks for model construction, mutation, and
// the evaluation hot path.
package bqm_test

import (
	"testing"

	"github.com/katalvlaran/quadra/bqm"
)

// chainModel builds a path-shaped model of n BINARY variables:
// quadratic (v, v+1) for every consecutive pair, linear bias on every third.
func chainModel(n int) *bqm.BinaryQuadraticModel[float64, int32] {
	b, _ := bqm.NewSized[float64, int32](n, bqm.Binary)
	for v := 0; v+1 < n; v++ {
		b.AddQuadratic(v, v+1, float64(v%5)-2)
	}
	for v := 0; v < n; v += 3 {
		b.SetLinear(v, 1.5)
	}

	return b
}

// BenchmarkEnergy measures full-model evaluation on a 1000-variable chain —
// the workload the sorted-slice layout is tuned for.
func BenchmarkEnergy(b *testing.B) {
	m := chainModel(1000)
	sample := make([]float64, 1000)
	for v := range sample {
		sample[v] = float64(v & 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Energy(sample)
	}
}

// BenchmarkAddQuadratic measures symmetric sparse insertion under scattered
// pair order (two sorted inserts per call).
func BenchmarkAddQuadratic(b *testing.B) {
	m, _ := bqm.NewSized[float64, int32](512, bqm.Binary)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := (i * 167) % 512
		v := (u + 1 + i%255) % 512
		if u != v {
			m.AddQuadratic(u, v, 1)
		}
	}
}

// BenchmarkAddQuadraticDense measures bulk ingestion via the append-only
// fast path on a fresh 128-variable model.
func BenchmarkAddQuadraticDense(b *testing.B) {
	const n = 128
	dense := make([]float64, n*n)
	for i := range dense {
		dense[i] = float64(i%7) - 3
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, _ := bqm.NewSized[float64, int32](n, bqm.Binary)
		_ = m.AddQuadraticDense(dense, n)
	}
}

// BenchmarkChangeVartype measures the full conversion pass (every linear
// bias, every directed adjacency entry, the offset).
func BenchmarkChangeVartype(b *testing.B) {
	m := chainModel(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Alternate so each iteration performs a real conversion.
		if i&1 == 0 {
			_ = m.ChangeVartype(bqm.Spin)
		} else {
			_ = m.ChangeVartype(bqm.Binary)
		}
	}
}
