// SPDX-License-Identifier: MIT
// Package sparsenet: sentinel error set.
// Every message is prefixed with "sparsenet: ..."; callers branch with
// errors.Is. Context is attached with fmt.Errorf("Method: ...: %w", ErrX).

package sparsenet

import "errors"

var (
	// ErrBadShape indicates inconsistent sizes: negative input/output counts
	// or counts exceeding the node count.
	ErrBadShape = errors.New("sparsenet: invalid shape")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, N).
	ErrNodeOutOfRange = errors.New("sparsenet: node index out of range")

	// ErrInputEdge indicates an edge targeting an input node; inputs are
	// loaded externally and never computed.
	ErrInputEdge = errors.New("sparsenet: edge targets an input node")

	// ErrNotTopological indicates an edge whose source index is not strictly
	// lower than its target index.
	ErrNotTopological = errors.New("sparsenet: node indices are not in topological order")
)
