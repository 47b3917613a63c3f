// Package quadra is an in-memory engine for sparse quadratic optimization
// models over two-valued variables.
//
// 🚀 What is quadra?
//
//	A small, allocation-conscious, pure-Go library that represents objectives
//	of the form
//
//	    E(x) = offset + Σ_v linear(v)·x_v + Σ_{u<v} quadratic(u,v)·x_u·x_v
//
//	over dense 0-based variable indices, and evaluates them fast:
//		• Sparse adjacency: one sorted neighborhood per variable
//		• Generic engine: parametric bias (float32/float64) and index types
//		• Binary quadratic models: BINARY {0,1} and SPIN {-1,+1} domains
//		• Lossless vartype conversion: the energy landscape is preserved exactly
//		• Dense ingestion: row-major buffers and gonum matrices
//
// ✨ Why choose quadra?
//
//   - Minimal API, clear naming — build, mutate, evaluate
//   - Cache-friendly storage — sorted parallel slices, O(log k) lookup
//   - Pure Go — no cgo, no global state, each model self-contained
//   - Interop — gonum mat.Matrix in, batch energies out
//
// Under the hood, everything is organized under two subpackages:
//
//	core/ — the sparse per-variable Neighborhood container
//	bqm/  — the vartype-agnostic QuadraticModel engine and the
//	        BinaryQuadraticModel specialization
//
// Quick ASCII example:
//
//	    x0 ──2.0── x1
//	               │
//	             -1.0
//	               │
//	              x2
//
//	three BINARY variables, two interactions; with linear(0)=3 the sample
//	[1,1,0] has energy 3 + 2 = 5.
//
// quadra represents and evaluates models; it does not solve them. Pair it
// with your sampler or solver of choice.
//
//	go get github.com/katalvlaran/quadra
package quadra
