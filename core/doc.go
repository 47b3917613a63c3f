// Package core provides the sparse storage primitive underneath every
// quadra model: the per-variable Neighborhood.
//
// A Neighborhood maps neighbor indices to quadratic biases using two parallel
// slices — one of strictly increasing neighbor indices, one of positionally
// aligned biases. The layout trades O(k) insert/erase for O(log k) lookup and
// cache-friendly iteration, which is the right trade for quadratic models:
// they are mutated occasionally and evaluated constantly.
//
// Neighborhood is generic over the bias type (float32/float64) and the stored
// neighbor index type (any signed integer), so callers can shrink memory for
// small models (int32 neighbors) without touching call sites.
//
// Invariants maintained by every mutating method except Append:
//
//	sortedness — neighbor indices are strictly increasing, no duplicates
//	alignment  — the two slices always have equal length, position i of one
//	             corresponds to position i of the other
//
// Append is the deliberate escape hatch for bulk construction; see its doc.
package core
