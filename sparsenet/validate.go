// SPDX-License-Identifier: MIT
// Package sparsenet - index invariant checks.
//
// Rules (checked in this priority order per edge, edges in insertion order):
//   - 0 ≤ i < N and 0 ≤ j < N           (else ErrNodeOutOfRange)
//   - i ≥ input: inputs take no edges   (else ErrInputEdge)
//   - j < i: sources precede targets    (else ErrNotTopological)

package sparsenet

import (
	"fmt"

	"github.com/katalvlaran/sparsenet/matrix"
)

// ValidateEdges checks an edge list against the index invariant of a network
// with n nodes and input inputs. The first violation is returned.
// Complexity: O(E).
func ValidateEdges(n, input int, edges *matrix.COO) error {
	for k := 0; k < edges.Len(); k++ {
		if err := checkEdge(n, input, edges.At(k)); err != nil {
			return fmt.Errorf("%s: edge %d: %w", methodValidate, k, err)
		}
	}

	return nil
}

// Validate checks the forward layout of n against the index invariant.
// Networks built WithValidation or WithRelabel always pass.
// Complexity: O(N + E).
func (n *Network) Validate() error {
	k := 0
	for e := range n.forward.All() {
		if err := checkEdge(n.nodes, n.input, e); err != nil {
			return fmt.Errorf("%s: forward entry %d: %w", methodValidate, k, err)
		}
		k++
	}

	return nil
}

// checkEdge applies the per-edge rules.
func checkEdge(n, input int, e matrix.Entry) error {
	switch {
	case e.I < 0 || e.I >= n || e.J < 0 || e.J >= n:
		return fmt.Errorf("(%d,%d) with %d nodes: %w", e.I, e.J, n, ErrNodeOutOfRange)
	case e.I < input:
		return fmt.Errorf("(%d,%d) targets input %d: %w", e.I, e.J, e.I, ErrInputEdge)
	case e.J >= e.I:
		return fmt.Errorf("(%d,%d) source not below target: %w", e.I, e.J, ErrNotTopological)
	}

	return nil
}
