// SPDX-License-Identifier: MIT

// Package bqm: gonum interop.
//
// Dense quadratic coefficients very often arrive as gonum matrices, and
// samplers naturally batch their assignments row-wise. These adapters bridge
// both directions of that traffic without forcing callers through manual
// buffer flattening. Bias type is fixed to float64 — gonum's element type.

package bqm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quadra/core"
)

// NewFromMatrix builds a float64 model of the given vartype from a square
// gonum matrix, interpreting it exactly like FromDense interprets a row-major
// buffer: off-diagonal entries m[u][v] + m[v][u] combine into the pair bias,
// diagonal entries fold per the vartype rule.
//
// Returns ErrNonSquare for a non-square matrix and ErrUnknownVartype for an
// unrecognized vartype.
// Complexity: O(n²).
func NewFromMatrix[N core.Index](m mat.Matrix, vt Vartype) (*BinaryQuadraticModel[float64, N], error) {
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	dense := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dense[i*c+j] = m.At(i, j)
		}
	}

	return FromDense[float64, N](dense, r, vt)
}

// Energies evaluates the model at every row of samples and returns one energy
// per row. Each row is one complete assignment, column j holding the value of
// variable j.
//
// Panics when the sample width does not match NumVariables(), following the
// gonum mat convention for shape mismatches.
// Complexity: O(r·(n + m)).
func Energies[N core.Index](b *BinaryQuadraticModel[float64, N], samples mat.Matrix) []float64 {
	r, c := samples.Dims()
	if c != b.NumVariables() {
		panic("bqm: sample width does not match the number of variables")
	}

	out := make([]float64, r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, samples)
		out[i] = b.Energy(row)
	}

	return out
}
