// Package dfs provides dependency ordering on integer-indexed networks.
//
// TopologicalOrder computes a linear ordering of nodes such that for every
// edge (i, j), read as "i depends on j", j appears before i in the ordering.
// If the edges contain a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E log E) (grouping edges by target, then one DFS)
//   - Memory: O(V + E)       (recursion stack, state slice, grouped edges)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/sparsenet/matrix"
)

const (
	methodTopologicalOrder = "TopologicalOrder"
	methodRelabel          = "Relabel"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	opts  topoOptions // traversal options (cancellation, pins)
	deps  *matrix.CSR // row = dependent node, columns = its sources
	start []int       // start[v] is row v's offset into deps.ColIndices
	state []int       // visitation state: 0=White,1=Gray,2=Black
	order []int       // recorded post-order sequence
}

// TopologicalOrder computes a dependency order of nodes [0, n) under edges.
// Roots are explored in ascending index order, so an already-ordered network
// returns the identity order.
// Errors: ErrBadSize, ErrNodeOutOfRange, ErrCycleDetected, ErrPinnedOrder,
// or the context error when canceled via WithCancelContext.
func TopologicalOrder(n int, edges *matrix.COO, options ...TopoOption) ([]int, error) {
	// 1. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 2. Validate sizes and edge endpoints
	if n < 0 || opts.inputs+opts.outputs > n {
		return nil, fmt.Errorf("%s: n=%d inputs=%d outputs=%d: %w",
			methodTopologicalOrder, n, opts.inputs, opts.outputs, ErrBadSize)
	}
	for k := 0; k < edges.Len(); k++ {
		e := edges.At(k)
		if e.I < 0 || e.I >= n || e.J < 0 || e.J >= n {
			return nil, fmt.Errorf("%s: edge %d (%d,%d) with n=%d: %w",
				methodTopologicalOrder, k, e.I, e.J, n, ErrNodeOutOfRange)
		}
	}
	// 3. Group sources by dependent node (one extent per node)
	deps := matrix.FromCOO(edges, n, matrix.WithRowPadding())
	start := make([]int, n+1)
	for v := 0; v < n; v++ {
		start[v+1] = start[v] + deps.RowExtents[v]
	}
	sorter := &topoSorter{
		opts:  opts,
		deps:  deps,
		start: start,
		state: make([]int, n),    // all nodes start as White (0)
		order: make([]int, 0, n), // capacity hint for post-order
	}
	// 4. Drive DFS from every unvisited node; post-order already lists
	//    sources before their dependents, so no reversal is needed.
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Pinned prefix and suffix must be untouched
	for k := 0; k < opts.inputs; k++ {
		if sorter.order[k] != k {
			return nil, fmt.Errorf("%s: input %d moved: %w", methodTopologicalOrder, k, ErrPinnedOrder)
		}
	}
	for k := n - opts.outputs; k < n; k++ {
		if sorter.order[k] != k {
			return nil, fmt.Errorf("%s: output %d moved: %w", methodTopologicalOrder, k, ErrPinnedOrder)
		}
	}

	return sorter.order, nil
}

// visit performs a DFS from v through its sources, marking states and
// detecting cycles. It respects cancellation.
func (t *topoSorter) visit(v int) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	if t.state[v] == Gray {
		return fmt.Errorf("%s: node %d: %w", methodTopologicalOrder, v, ErrCycleDetected)
	}
	// 3. Already fully processed (Black)? then skip
	if t.state[v] == Black {
		return nil
	}
	// 4. Mark as in-progress (Gray)
	t.state[v] = Gray
	// 5. Every source must be ordered before v
	for _, u := range t.deps.ColIndices[t.start[v]:t.start[v+1]] {
		if err := t.visit(u); err != nil {
			return err
		}
	}
	// 6. Mark as fully explored (Black) and record
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}

// Relabel computes a topological order and rewrites edges accordingly.
// perm[old] is the new index of node old; the returned COO keeps the
// insertion order of edges.
func Relabel(n int, edges *matrix.COO, options ...TopoOption) ([]int, *matrix.COO, error) {
	order, err := TopologicalOrder(n, edges, options...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodRelabel, err)
	}
	perm := make([]int, n)
	for pos, v := range order {
		perm[v] = pos
	}
	out := matrix.NewCOO(edges.Len())
	for k := 0; k < edges.Len(); k++ {
		e := edges.At(k)
		out.Push(perm[e.I], perm[e.J], e.Value)
	}

	return perm, out, nil
}

// Permute moves values[old] to position perm[old], e.g. to carry biases
// through Relabel. Panics if the lengths differ.
func Permute(perm []int, values []matrix.Num) []matrix.Num {
	if len(perm) != len(values) {
		panic(fmt.Sprintf("dfs: Permute: len(perm)=%d != len(values)=%d", len(perm), len(values)))
	}
	out := make([]matrix.Num, len(values))
	for old, v := range values {
		out[perm[old]] = v
	}

	return out
}
