// SPDX-License-Identifier: MIT
// Package bqm: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the bqm
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for documented caller-contract
// violations (index range) and internal invariant corruption.

package bqm

import (
	"errors"

	"github.com/katalvlaran/quadra/core"
)

var (
	// ErrOutOfRange indicates a variable index outside [0, NumVariables()) on
	// a checked accessor (QuadraticAt). Plain accessors do not return it; they
	// panic per the package error policy.
	ErrOutOfRange = errors.New("bqm: variable index out of range")

	// ErrSelfInteraction indicates SetQuadratic was called with u == v.
	// Overwriting a self-term is ill-defined: part of its previous value may
	// already live in the linear bias, so there is nothing unambiguous to
	// overwrite. AddQuadratic folds self-terms instead.
	ErrSelfInteraction = errors.New("bqm: cannot set the quadratic bias of a variable with itself")

	// ErrUnknownVartype indicates a Vartype value that is neither Binary nor
	// Spin was passed to a constructor or to ChangeVartype.
	ErrUnknownVartype = errors.New("bqm: unknown vartype")

	// ErrNotImplemented marks dense bulk ingestion into a model that already
	// holds quadratic biases. The append-only fast path cannot merge into
	// populated neighborhoods without a sort-and-merge step that is
	// intentionally not provided; the model is left unmodified.
	ErrNotImplemented = errors.New("bqm: dense ingestion into a non-linear model is not implemented")

	// ErrNonSquare indicates a non-square gonum matrix was offered as a dense
	// coefficient buffer.
	ErrNonSquare = errors.New("bqm: coefficient matrix is not square")
)

// ErrInteractionNotFound re-exports the core sentinel so bqm callers can
// match strict-lookup failures without importing core. Semantically identical;
// errors.Is works with either name.
var ErrInteractionNotFound = core.ErrInteractionNotFound
