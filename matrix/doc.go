// Package matrix offers the sparse storage layouts behind sparsenet.
//
// The matrix package provides:
//
//   - COO, an insertion-ordered coordinate list of (row, column, weight)
//     edges. It is the raw input format for graph construction.
//   - CSR, a row-grouped layout (per-row extents, column indices, values)
//     built from a COO under an IndexMap, so the same routine yields both
//     the forward (Identity) and the transposed (Transpose) orientation.
//   - Iterator, a single-use cursor that walks a CSR in row-major order and
//     reconstructs row membership from the extents.
//   - WriteDOT, a directed-graph text export driven by the Iterator.
//   - Dense bridges to gonum's mat.Dense for reference computations.
//
// CSR construction is O(E log E) (stable sort + one sweep) and O(E) memory.
// Iteration is O(R + E) where R = len(RowExtents).
//
// See the examples in this package and in sparsenet for usage patterns.
package matrix
