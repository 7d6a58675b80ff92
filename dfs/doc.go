// Package dfs computes dependency orders for sparse networks with a
// depth-first search over integer node indices.
//
// What:
//
//   - TopologicalOrder: lists node indices so that every edge's source
//     (column j) precedes its target (row i). Edges use the forward-layout
//     convention of sparsenet: (i, j) means "i depends on j".
//   - Relabel: turns such an order into a permutation and rewrites a COO
//     edge list, so that the result satisfies sparsenet's index invariant
//     (every source index lower than its target index).
//
// Both honor pinned inputs (kept first) and pinned outputs (kept last), since
// sparsenet addresses inputs by the index prefix and outputs by the suffix.
//
// Errors:
//
//   - ErrBadSize         negative node count or pins that do not fit
//   - ErrNodeOutOfRange  edge endpoint outside [0, n)
//   - ErrCycleDetected   a cycle or self-loop exists
//   - ErrPinnedOrder     a pinned node cannot keep its place
//   - context.Canceled   sort canceled via WithCancelContext
//
// Complexity:
//
//   - Time:   O(V + E log E) (CSR grouping dominates the O(V + E) walk)
//   - Memory: O(V + E)
package dfs
