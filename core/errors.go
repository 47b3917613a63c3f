// Package core: sentinel error set.
// All error conditions surfaced by this package are package-level sentinels
// checked via errors.Is. Panics are reserved for programmer errors
// (precondition violations documented on the method).

package core

import "errors"

// ErrInteractionNotFound indicates a strict lookup (At) for a neighbor that
// has no stored bias in the neighborhood.
var ErrInteractionNotFound = errors.New("core: given variables have no interaction")
