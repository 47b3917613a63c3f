// SPDX-License-Identifier: MIT

// Package bqm: the BinaryQuadraticModel specialization.
//
// A BinaryQuadraticModel is one QuadraticModel engine plus a Vartype tag.
// The tag decides where a self-interaction folds (x·x == x for x ∈ {0,1}, so
// Binary folds into the linear bias; s·s == 1 for s ∈ {-1,+1}, so Spin folds
// into the offset) and drives the algebraic rewrite that converts the model
// between the two encodings without changing the energy landscape.

package bqm

import (
	"iter"

	"github.com/katalvlaran/quadra/core"
)

// BinaryQuadraticModel is a quadratic polynomial over two-valued variables.
//
// Construct via New, NewSized, or FromDense; the zero value is a valid empty
// Binary-vartype model.
type BinaryQuadraticModel[B core.Bias, N core.Index] struct {
	model   QuadraticModel[B, N]
	vartype Vartype
}

// New returns an empty model of the given vartype.
// Returns ErrUnknownVartype when vt is not Binary or Spin.
func New[B core.Bias, N core.Index](vt Vartype) (*BinaryQuadraticModel[B, N], error) {
	if !vt.Valid() {
		return nil, ErrUnknownVartype
	}

	return &BinaryQuadraticModel[B, N]{vartype: vt}, nil
}

// NewSized returns a model with n variables of the given vartype, all biases
// zero.
// Returns ErrUnknownVartype when vt is not Binary or Spin.
// Complexity: O(n).
func NewSized[B core.Bias, N core.Index](n int, vt Vartype) (*BinaryQuadraticModel[B, N], error) {
	b, err := New[B, N](vt)
	if err != nil {
		return nil, err
	}
	b.model.Resize(n)

	return b, nil
}

// FromDense builds a model of the given vartype directly from a row-major
// n×n coefficient buffer — equivalent to NewSized followed by
// AddQuadraticDense. See AddQuadraticDense for the diagonal/off-diagonal
// interpretation.
// Returns ErrUnknownVartype when vt is not Binary or Spin.
// Complexity: O(n²).
func FromDense[B core.Bias, N core.Index](dense []B, n int, vt Vartype) (*BinaryQuadraticModel[B, N], error) {
	b, err := NewSized[B, N](n, vt)
	if err != nil {
		return nil, err
	}
	if err = b.AddQuadraticDense(dense, n); err != nil {
		return nil, err
	}

	return b, nil
}

// Vartype returns the model's current domain tag.
func (b *BinaryQuadraticModel[B, N]) Vartype() Vartype {
	return b.vartype
}

// Engine surface, delegated to the wrapped QuadraticModel.
// Preconditions and complexity are documented on the engine methods.

// NumVariables returns the number of variables in the model.
func (b *BinaryQuadraticModel[B, N]) NumVariables() int { return b.model.NumVariables() }

// NumInteractions returns the number of unordered interacting pairs.
func (b *BinaryQuadraticModel[B, N]) NumInteractions() int { return b.model.NumInteractions() }

// Degree returns the number of variables v interacts with.
func (b *BinaryQuadraticModel[B, N]) Degree(v int) int { return b.model.Degree(v) }

// IsLinear reports whether the model has no quadratic biases.
func (b *BinaryQuadraticModel[B, N]) IsLinear() bool { return b.model.IsLinear() }

// Linear returns the linear bias of variable v.
func (b *BinaryQuadraticModel[B, N]) Linear(v int) B { return b.model.Linear(v) }

// SetLinear overwrites the linear bias of variable v.
func (b *BinaryQuadraticModel[B, N]) SetLinear(v int, bias B) { b.model.SetLinear(v, bias) }

// AddLinear accumulates bias into the linear bias of variable v.
func (b *BinaryQuadraticModel[B, N]) AddLinear(v int, bias B) { b.model.AddLinear(v, bias) }

// Offset returns the scalar offset.
func (b *BinaryQuadraticModel[B, N]) Offset() B { return b.model.Offset() }

// SetOffset overwrites the scalar offset.
func (b *BinaryQuadraticModel[B, N]) SetOffset(bias B) { b.model.SetOffset(bias) }

// AddOffset accumulates bias into the scalar offset.
func (b *BinaryQuadraticModel[B, N]) AddOffset(bias B) { b.model.AddOffset(bias) }

// Quadratic returns the bias of pair (u, v), or 0 when absent.
func (b *BinaryQuadraticModel[B, N]) Quadratic(u, v int) B { return b.model.Quadratic(u, v) }

// QuadraticAt returns the bias of pair (u, v); ErrOutOfRange or
// ErrInteractionNotFound on failure.
func (b *BinaryQuadraticModel[B, N]) QuadraticAt(u, v int) (B, error) {
	return b.model.QuadraticAt(u, v)
}

// Neighbors returns a read-only ascending view over u's adjacency.
func (b *BinaryQuadraticModel[B, N]) Neighbors(u int) iter.Seq2[N, B] { return b.model.Neighbors(u) }

// RemoveInteraction removes pair (u, v) from both neighborhoods and reports
// whether it existed.
func (b *BinaryQuadraticModel[B, N]) RemoveInteraction(u, v int) bool {
	return b.model.RemoveInteraction(u, v)
}

// Energy evaluates the objective at the given sample.
func (b *BinaryQuadraticModel[B, N]) Energy(sample []B) B { return b.model.Energy(sample) }

// Resize changes the model to contain exactly n variables; see
// QuadraticModel.Resize for the purge-then-truncate shrink behavior.
func (b *BinaryQuadraticModel[B, N]) Resize(n int) { b.model.Resize(n) }

// Domain-aware operations.

// AddQuadratic accumulates bias into the quadratic term of the pair (u, v).
//
// When u == v the value is a self-interaction and never lands in the
// adjacency structure; it folds into the domain-appropriate term instead:
// linear(u) for Binary (x·x == x), offset for Spin (s·s == 1). Otherwise
// bias accumulates into both symmetric adjacency entries.
// Precondition (unchecked): 0 ≤ u, v < NumVariables().
// Complexity: O(log k + k) per endpoint on insert.
func (b *BinaryQuadraticModel[B, N]) AddQuadratic(u, v int, bias B) {
	if u == v {
		switch b.vartype {
		case Binary:
			b.model.AddLinear(u, bias)
		case Spin:
			b.model.AddOffset(bias)
		default:
			panic("bqm: invalid vartype tag on model")
		}

		return
	}

	*b.model.adj[u].Upsert(v) += bias
	*b.model.adj[v].Upsert(u) += bias
}

// SetQuadratic overwrites the quadratic term of the pair (u, v) in both
// symmetric adjacency entries, creating them when absent.
//
// u == v is rejected with ErrSelfInteraction and the model is left
// unmodified: a previous self-term may already be merged into the linear
// bias, so "overwrite" has no unambiguous meaning.
// Precondition (unchecked): 0 ≤ u, v < NumVariables().
// Complexity: O(log k + k) per endpoint on insert.
func (b *BinaryQuadraticModel[B, N]) SetQuadratic(u, v int, bias B) error {
	if u == v {
		return ErrSelfInteraction
	}

	*b.model.adj[u].Upsert(v) = bias
	*b.model.adj[v].Upsert(u) = bias

	return nil
}

// AddQuadraticDense bulk-ingests a row-major n×n coefficient matrix.
//
// For each unordered pair (u, v), u < v, the two off-diagonal entries
// dense[u·n+v] + dense[v·n+u] combine into one bias; zero combined biases are
// skipped. Entries land through the append-only fast path, so the model must
// currently be linear — ingestion into a model that already holds quadratic
// biases would need a sort-and-merge step that is intentionally not provided
// and returns ErrNotImplemented before any mutation.
//
// Diagonal entries dense[v·(n+1)] fold per the vartype rule: summed into the
// offset for Spin, into linear(v) for Binary.
//
// Preconditions (unchecked): len(dense) ≥ n², n ≤ NumVariables().
// Complexity: O(n²).
func (b *BinaryQuadraticModel[B, N]) AddQuadraticDense(dense []B, n int) error {
	if !b.model.IsLinear() {
		return ErrNotImplemented
	}

	// Off-diagonal: each pair visited once; mirror appends stay monotone
	// because u rows emit ascending v and column mirrors arrive in ascending
	// u across rows.
	var qbias B
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			qbias = dense[u*n+v] + dense[v*n+u]
			if qbias != 0 {
				b.model.adj[u].Append(v, qbias)
				b.model.adj[v].Append(u, qbias)
			}
		}
	}

	// Diagonal: fold per vartype.
	switch b.vartype {
	case Spin:
		for v := 0; v < n; v++ {
			b.model.AddOffset(dense[v*(n+1)])
		}
	case Binary:
		for v := 0; v < n; v++ {
			b.model.AddLinear(v, dense[v*(n+1)])
		}
	default:
		panic("bqm: invalid vartype tag on model")
	}

	return nil
}

// ChangeVartype converts the model to the target domain in place.
//
// A no-op when the model already has the target vartype. Otherwise every
// linear bias, quadratic bias, and the offset are re-derived from the
// algebraic identity s = 2x − 1 between a Spin value s and the corresponding
// Binary value x, so that energies of corresponding samples are preserved
// exactly. The five multipliers depend only on the target domain; each
// derived term is computed from the pre-update value, staged in a local
// before the in-place rewrite.
// Returns ErrUnknownVartype when target is not Binary or Spin.
// Complexity: O(n + m).
func (b *BinaryQuadraticModel[B, N]) ChangeVartype(target Vartype) error {
	if !target.Valid() {
		return ErrUnknownVartype
	}
	if target == b.vartype {
		return nil
	}

	var linMP, linOffsetMP, quadMP, linQuadMP, quadOffsetMP B
	switch target {
	case Binary:
		linMP, linOffsetMP = 2, -1
		quadMP, linQuadMP, quadOffsetMP = 4, -2, 0.5
	case Spin:
		linMP, linOffsetMP = 0.5, 0.5
		quadMP, linQuadMP, quadOffsetMP = 0.25, 0.25, 0.125
	}

	m := &b.model
	for u := 0; u < m.NumVariables(); u++ {
		lbias := m.linear[u]
		m.linear[u] *= linMP
		m.offset += linOffsetMP * lbias

		// Each directed adjacency entry rescales once; the quadratic
		// contributions to linear and offset therefore arrive once per
		// endpoint, which the 0.5-style multipliers already account for.
		for _, bias := range m.adj[u].MutIter() {
			qbias := *bias
			*bias = qbias * quadMP
			m.linear[u] += linQuadMP * qbias
			m.offset += quadOffsetMP * qbias
		}
	}
	b.vartype = target

	return nil
}

// Clone returns a deep copy of the model, independent of the original.
// Complexity: O(n + m).
func (b *BinaryQuadraticModel[B, N]) Clone() *BinaryQuadraticModel[B, N] {
	return &BinaryQuadraticModel[B, N]{
		model:   *b.model.Clone(),
		vartype: b.vartype,
	}
}
