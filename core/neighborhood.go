// Package core: Neighborhood implementation.
//
// The container is two parallel slices kept in lockstep:
//
//	neighbors — strictly increasing neighbor indices
//	biases    — the bias stored for the neighbor at the same position
//
// Every lookup is a binary search over neighbors; every positional insert or
// erase shifts both slices together. Iteration walks the pair front to back,
// yielding (neighbor, bias) in ascending neighbor order.

package core

import (
	"iter"
	"slices"
)

// Bias constrains the numeric type used for linear/quadratic biases and the
// offset. Models pick float64 for accuracy or float32 for memory.
type Bias interface {
	~float32 | ~float64
}

// Index constrains the stored neighbor-index type. Any signed integer works;
// the caller guarantees every variable index of the owning model fits in it.
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Neighborhood sparsely encodes one variable's incident quadratic biases.
//
// The zero value is an empty neighborhood, ready to use. A Neighborhood is
// exclusively owned by the model holding it and is not internally
// synchronized; concurrent mutation requires external locking.
type Neighborhood[B Bias, N Index] struct {
	neighbors []N
	biases    []B
}

// search locates v in the neighbor slice.
// Returns the insertion position and whether v is present.
// Complexity: O(log k).
func (nb *Neighborhood[B, N]) search(v int) (int, bool) {
	return slices.BinarySearch(nb.neighbors, N(v))
}

// Len returns the number of neighbors currently stored.
// Complexity: O(1).
func (nb *Neighborhood[B, N]) Len() int {
	return len(nb.neighbors)
}

// Get returns the bias stored for neighbor v, or 0 when v is absent.
// Get never mutates the neighborhood.
// Complexity: O(log k).
func (nb *Neighborhood[B, N]) Get(v int) B {
	return nb.GetDefault(v, 0)
}

// GetDefault returns the bias stored for neighbor v, or def when v is absent.
// Complexity: O(log k).
func (nb *Neighborhood[B, N]) GetDefault(v int, def B) B {
	if i, ok := nb.search(v); ok {
		return nb.biases[i]
	}

	return def
}

// At returns the bias stored for neighbor v.
// Returns ErrInteractionNotFound when v is absent; absence is not folded into
// a zero bias here, unlike Get.
// Complexity: O(log k).
func (nb *Neighborhood[B, N]) At(v int) (B, error) {
	i, ok := nb.search(v)
	if !ok {
		return 0, ErrInteractionNotFound
	}

	return nb.biases[i], nil
}

// Upsert returns a mutable pointer to the bias stored for neighbor v,
// inserting a zero-biased entry at the correct sorted position when v is
// absent. The pointer stays valid only until the next structural mutation
// (insert, erase, append) on this neighborhood.
// Complexity: O(log k) search + O(k) shift on insert.
func (nb *Neighborhood[B, N]) Upsert(v int) *B {
	i, ok := nb.search(v)
	if !ok {
		nb.neighbors = slices.Insert(nb.neighbors, i, N(v))
		nb.biases = slices.Insert(nb.biases, i, 0)
	}

	return &nb.biases[i]
}

// Append inserts (v, bias) unconditionally at the end of the neighborhood.
//
// Precondition (unchecked): v is strictly greater than the current last
// neighbor. Violating it silently breaks the sortedness invariant and every
// subsequent lookup. Append exists for bulk construction only — ingesting a
// dense matrix row by row, where indices are monotone by construction.
// Complexity: O(1) amortized.
func (nb *Neighborhood[B, N]) Append(v int, bias B) {
	nb.neighbors = append(nb.neighbors, N(v))
	nb.biases = append(nb.biases, bias)
}

// Erase removes the entry for neighbor v if present and reports whether one
// was removed.
// Complexity: O(log k) search + O(k) shift.
func (nb *Neighborhood[B, N]) Erase(v int) bool {
	i, ok := nb.search(v)
	if !ok {
		return false
	}
	nb.neighbors = slices.Delete(nb.neighbors, i, i+1)
	nb.biases = slices.Delete(nb.biases, i, i+1)

	return true
}

// EraseRange removes the entries in positions [i, j).
// Positions come from LowerBound/Len; the typical use is bulk-trimming every
// neighbor ≥ n when the owning model shrinks to n variables.
// Complexity: O(k).
func (nb *Neighborhood[B, N]) EraseRange(i, j int) {
	nb.neighbors = slices.Delete(nb.neighbors, i, j)
	nb.biases = slices.Delete(nb.biases, i, j)
}

// LowerBound returns the position of the first entry whose neighbor is ≥ v,
// or Len() when no such entry exists.
// Complexity: O(log k).
func (nb *Neighborhood[B, N]) LowerBound(v int) int {
	i, _ := nb.search(v)
	return i
}

// Iter returns a read-only iterator over (neighbor, bias) pairs in ascending
// neighbor order. The sequence is lazy, finite, and restartable; it is
// invalidated by any structural mutation of the neighborhood.
func (nb *Neighborhood[B, N]) Iter() iter.Seq2[N, B] {
	return func(yield func(N, B) bool) {
		for i, v := range nb.neighbors {
			if !yield(v, nb.biases[i]) {
				return
			}
		}
	}
}

// MutIter returns an iterator over (neighbor, *bias) pairs in ascending
// neighbor order. The bias pointer may be written through to rescale entries
// in place (vartype conversion does exactly that); the neighbor component is
// not mutable, preserving sortedness. Structural mutation during iteration is
// undefined.
func (nb *Neighborhood[B, N]) MutIter() iter.Seq2[N, *B] {
	return func(yield func(N, *B) bool) {
		for i, v := range nb.neighbors {
			if !yield(v, &nb.biases[i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the neighborhood, independent of the original.
// Complexity: O(k).
func (nb *Neighborhood[B, N]) Clone() Neighborhood[B, N] {
	return Neighborhood[B, N]{
		neighbors: slices.Clone(nb.neighbors),
		biases:    slices.Clone(nb.biases),
	}
}
