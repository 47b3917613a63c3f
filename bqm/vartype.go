// SPDX-License-Identifier: MIT

// Package bqm: the Vartype tag and its validation.

package bqm

// Vartype encodes the two-valued domain a model's variables range over.
// It is fixed per model and only changes through ChangeVartype, which
// rewrites the biases so the energy landscape is preserved.
type Vartype uint8

const (
	// Binary variables take values in {0, 1}.
	Binary Vartype = iota

	// Spin variables take values in {-1, +1}.
	Spin
)

// Valid reports whether vt is one of the recognized domains.
func (vt Vartype) Valid() bool {
	return vt == Binary || vt == Spin
}

// String returns the lowercase domain name used by the debug dump.
func (vt Vartype) String() string {
	switch vt {
	case Binary:
		return "binary"
	case Spin:
		return "spin"
	default:
		return "unknown"
	}
}
