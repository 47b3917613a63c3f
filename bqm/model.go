// SPDX-License-Identifier: MIT

// Package bqm: the vartype-agnostic QuadraticModel engine.
//
// The engine owns three pieces of state: one linear bias per variable (dense
// slice), one sorted core.Neighborhood per variable (the adjacency list), and
// a scalar offset. Every quadratic bias appears in both endpoints'
// neighborhoods; engine methods are the only writers and keep the two copies
// equal. Domain-aware behavior (self-term folding, vartype conversion, dense
// ingestion) lives in BinaryQuadraticModel, which wraps one engine.

package bqm

import (
	"iter"
	"slices"

	"github.com/katalvlaran/quadra/core"
)

// QuadraticModel is the generic sparse quadratic-model engine.
//
// B is the bias type, N the stored neighbor-index type; N must be able to
// represent every variable index the model will ever hold (caller contract).
// The zero value is an empty model with zero variables and zero offset.
type QuadraticModel[B core.Bias, N core.Index] struct {
	linear []B
	adj    []core.Neighborhood[B, N]
	offset B
}

// NewQuadraticModel returns an engine pre-sized to n variables, all with zero
// linear bias and empty neighborhoods.
// Complexity: O(n).
func NewQuadraticModel[B core.Bias, N core.Index](n int) *QuadraticModel[B, N] {
	m := &QuadraticModel[B, N]{}
	m.Resize(n)

	return m
}

// NumVariables returns the number of variables in the model.
// Complexity: O(1).
func (m *QuadraticModel[B, N]) NumVariables() int {
	return len(m.linear)
}

// NumInteractions returns the global number of interactions, each unordered
// pair counted once (half the summed neighborhood sizes).
// Complexity: O(n).
func (m *QuadraticModel[B, N]) NumInteractions() int {
	count := 0
	for v := range m.adj {
		count += m.adj[v].Len()
	}

	return count / 2
}

// Degree returns the number of other variables v interacts with.
// Precondition (unchecked): 0 ≤ v < NumVariables().
// Complexity: O(1).
func (m *QuadraticModel[B, N]) Degree(v int) int {
	return m.adj[v].Len()
}

// IsLinear reports whether the model has no quadratic biases at all.
// Complexity: O(n).
func (m *QuadraticModel[B, N]) IsLinear() bool {
	for v := range m.adj {
		if m.adj[v].Len() > 0 {
			return false
		}
	}

	return true
}

// Linear returns the linear bias of variable v.
// Precondition (unchecked): 0 ≤ v < NumVariables().
// Complexity: O(1).
func (m *QuadraticModel[B, N]) Linear(v int) B {
	return m.linear[v]
}

// SetLinear overwrites the linear bias of variable v.
// Precondition (unchecked): 0 ≤ v < NumVariables().
// Complexity: O(1).
func (m *QuadraticModel[B, N]) SetLinear(v int, bias B) {
	m.linear[v] = bias
}

// AddLinear accumulates bias into the linear bias of variable v.
// Precondition (unchecked): 0 ≤ v < NumVariables().
// Complexity: O(1).
func (m *QuadraticModel[B, N]) AddLinear(v int, bias B) {
	m.linear[v] += bias
}

// Offset returns the scalar offset added to every energy evaluation.
// Complexity: O(1).
func (m *QuadraticModel[B, N]) Offset() B {
	return m.offset
}

// SetOffset overwrites the scalar offset.
// Complexity: O(1).
func (m *QuadraticModel[B, N]) SetOffset(bias B) {
	m.offset = bias
}

// AddOffset accumulates bias into the scalar offset.
// Complexity: O(1).
func (m *QuadraticModel[B, N]) AddOffset(bias B) {
	m.offset += bias
}

// Quadratic returns the quadratic bias of the pair (u, v), or 0 when the pair
// has no stored bias. No error is reported for an absent pair; use
// QuadraticAt for strict access. The value is returned by copy because each
// bias is stored twice.
// Precondition (unchecked): 0 ≤ u < NumVariables().
// Complexity: O(log k), k = Degree(u).
func (m *QuadraticModel[B, N]) Quadratic(u, v int) B {
	return m.adj[u].Get(v)
}

// QuadraticAt returns the quadratic bias of the pair (u, v).
// Returns ErrOutOfRange when u or v is not a variable, and
// ErrInteractionNotFound when the pair has no stored bias.
// Complexity: O(log k).
func (m *QuadraticModel[B, N]) QuadraticAt(u, v int) (B, error) {
	if u < 0 || u >= len(m.linear) || v < 0 || v >= len(m.linear) {
		return 0, ErrOutOfRange
	}

	return m.adj[u].At(v)
}

// Neighbors returns a read-only view over u's adjacency: (neighbor, bias)
// pairs in ascending neighbor order. The sequence is lazy and restartable; it
// is invalidated by any mutation of u's neighborhood or by Resize.
// Precondition (unchecked): 0 ≤ u < NumVariables().
func (m *QuadraticModel[B, N]) Neighbors(u int) iter.Seq2[N, B] {
	return m.adj[u].Iter()
}

// RemoveInteraction removes the pair (u, v) from both endpoints'
// neighborhoods and reports whether it existed. Removal is atomic with
// respect to symmetry: either both copies go or neither. A state where one
// side holds the bias and the other does not is unreachable through this
// package's API, so hitting it means memory corruption — the engine panics
// rather than propagating a half-removed model.
// Precondition (unchecked): 0 ≤ u, v < NumVariables().
// Complexity: O(log k + k).
func (m *QuadraticModel[B, N]) RemoveInteraction(u, v int) bool {
	if !m.adj[u].Erase(v) {
		return false
	}
	if !m.adj[v].Erase(u) {
		panic("bqm: asymmetric adjacency state detected during removal")
	}

	return true
}

// Energy evaluates the objective at the given sample:
//
//	offset + Σ_v sample[v]·linear(v) + Σ_{u<v} sample[u]·sample[v]·quadratic(u,v)
//
// Each unordered pair is accumulated exactly once: a neighbor contributes
// only while its index is below the current variable, which avoids double
// counting without a visited set and keeps the scan cache-friendly.
//
// Precondition (unchecked): len(sample) == NumVariables(). A short sample
// panics on index; a long sample's tail is ignored.
// Complexity: O(n + m), m = total interactions.
func (m *QuadraticModel[B, N]) Energy(sample []B) B {
	en := m.offset

	for u := 0; u < len(m.linear); u++ {
		uVal := sample[u]
		en += uVal * m.linear[u]

		for v, bias := range m.adj[u].Iter() {
			if int(v) >= u {
				break
			}
			en += uVal * sample[v] * bias
		}
	}

	return en
}

// Resize changes the model to contain exactly n variables.
//
// Growing appends variables with zero linear bias and empty neighborhoods.
// Shrinking first purges, from every surviving variable's neighborhood, every
// neighbor entry ≥ n (LowerBound + range-erase), then truncates the linear
// and adjacency storage — no surviving neighborhood keeps a dangling
// reference to a removed variable.
// Complexity: O(n) grow; O(Σ_v log k_v + purged) shrink.
func (m *QuadraticModel[B, N]) Resize(n int) {
	if n < len(m.linear) {
		for v := 0; v < n; v++ {
			m.adj[v].EraseRange(m.adj[v].LowerBound(n), m.adj[v].Len())
		}
		m.linear = slices.Delete(m.linear, n, len(m.linear))
		m.adj = slices.Delete(m.adj, n, len(m.adj))

		return
	}

	for len(m.linear) < n {
		m.linear = append(m.linear, 0)
		m.adj = append(m.adj, core.Neighborhood[B, N]{})
	}
}

// Clone returns a deep copy of the engine, independent of the original.
// Complexity: O(n + m).
func (m *QuadraticModel[B, N]) Clone() *QuadraticModel[B, N] {
	cp := &QuadraticModel[B, N]{
		linear: slices.Clone(m.linear),
		adj:    make([]core.Neighborhood[B, N], len(m.adj)),
		offset: m.offset,
	}
	for v := range m.adj {
		cp.adj[v] = m.adj[v].Clone()
	}

	return cp
}
