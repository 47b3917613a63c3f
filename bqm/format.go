// SPDX-License-Identifier: MIT

// Package bqm: human-readable debug dump.
//
// The dump is a diagnostic surface, not a persistence format. Its shape is
// stable: header, vartype, offset, nonzero linear biases one per line, then
// every interaction exactly once in (u, v) pairs with u > v, in adjacency
// iteration order.

package bqm

import (
	"fmt"
	"strings"
)

// String renders the model as an indented multi-line dump:
//
//	BinaryQuadraticModel
//	  vartype: binary
//	  offset: 0
//	  linear (3 variables):
//	    0 3
//	  quadratic (2 interactions):
//	    1 0 2
//	    2 1 -1
//
// Variables with zero linear bias are omitted. Each pair appears once, keyed
// by the larger endpoint, which is how the energy loop visits them.
// Complexity: O(n + m).
func (b *BinaryQuadraticModel[B, N]) String() string {
	var sb strings.Builder

	sb.WriteString("BinaryQuadraticModel\n")
	fmt.Fprintf(&sb, "  vartype: %s\n", b.vartype)
	fmt.Fprintf(&sb, "  offset: %v\n", b.model.Offset())

	fmt.Fprintf(&sb, "  linear (%d variables):\n", b.model.NumVariables())
	for v := 0; v < b.model.NumVariables(); v++ {
		if bias := b.model.Linear(v); bias != 0 {
			fmt.Fprintf(&sb, "    %d %v\n", v, bias)
		}
	}

	fmt.Fprintf(&sb, "  quadratic (%d interactions):\n", b.model.NumInteractions())
	for u := 0; u < b.model.NumVariables(); u++ {
		for v, bias := range b.model.Neighbors(u) {
			if int(v) >= u {
				break
			}
			fmt.Fprintf(&sb, "    %d %d %v\n", u, v, bias)
		}
	}

	return sb.String()
}
