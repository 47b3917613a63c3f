// SPDX-License-Identifier: MIT

// Package bqm implements sparse quadratic models over two-valued variables.
//
// Two layers, composed rather than inherited:
//
//	QuadraticModel       — the vartype-agnostic engine: one linear bias per
//	                       variable, one sorted core.Neighborhood per
//	                       variable, a scalar offset; generic bias access,
//	                       interaction counting/removal, energy evaluation.
//	BinaryQuadraticModel — one engine plus a Vartype tag (Binary {0,1} or
//	                       Spin {-1,+1}); adds the domain-aware operations:
//	                       self-interaction folding, dense-matrix ingestion,
//	                       and exact vartype conversion.
//
// Variables are dense 0-based integer indices. Every quadratic bias is stored
// twice — once in each endpoint's neighborhood — and the two copies are kept
// numerically equal by every mutating operation.
//
// Error policy (uniform across the package):
//
//   - Conditions the caller can legitimately hit at runtime are sentinel
//     errors checked via errors.Is: ErrInteractionNotFound, ErrOutOfRange,
//     ErrSelfInteraction, ErrUnknownVartype, ErrNotImplemented, ErrNonSquare.
//   - Variable-index range on plain accessors (Linear, Quadratic, Neighbors,
//     Degree, Energy sample length) is a documented caller contract; a
//     violation surfaces as an index-out-of-range panic, the same convention
//     gonum's mat package uses. Validate before calling if indices come from
//     untrusted input.
//
// Models are not internally synchronized. Iterators over a neighborhood are
// invalidated by any insert/erase on that neighborhood or by Resize.
package bqm
