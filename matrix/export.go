// SPDX-License-Identifier: MIT
// Package matrix - directed-graph text export (CSR → DOT).
//
// Grammar (byte-exact):
//
//	digraph {
//	  graph [rankdir=LR];
//	  node [shape=point];
//	  {i} -> {j};          one statement per entry, Iterator order
//	}
//
// Nodes are emitted implicitly through the edge statements. I/O failures are
// returned to the caller wrapped with the method tag; nothing is retried.

package matrix

import (
	"bufio"
	"fmt"
	"io"
)

const methodWriteDOT = "WriteDOT"

// DOT statements (no magic strings in the writer loop).
const (
	dotOpen      = "digraph {\n"
	dotGraphAttr = "  graph [rankdir=LR];\n"
	dotNodeAttr  = "  node [shape=point];\n"
	dotEdgeFmt   = "  %d -> %d;\n"
	dotClose     = "}\n"
)

// WriteDOT writes m as a directed graph to w.
// Stage 1 (Header): opening statement and layout attributes.
// Stage 2 (Execute): one edge statement per Iterator entry.
// Stage 3 (Finalize): closing statement and flush.
// Complexity: O(R + E).
func (m *CSR) WriteDOT(w io.Writer) error {
	if m == nil {
		return matrixErrorf(methodWriteDOT, ErrNilMatrix, "csr")
	}
	bw := bufio.NewWriter(w)

	for _, s := range []string{dotOpen, dotGraphAttr, dotNodeAttr} {
		if _, err := bw.WriteString(s); err != nil {
			return matrixErrorf(methodWriteDOT, err, "header")
		}
	}

	it := m.Iter()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if _, err := fmt.Fprintf(bw, dotEdgeFmt, e.I, e.J); err != nil {
			return matrixErrorf(methodWriteDOT, err, "edge %d -> %d", e.I, e.J)
		}
	}

	if _, err := bw.WriteString(dotClose); err != nil {
		return matrixErrorf(methodWriteDOT, err, "footer")
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf(methodWriteDOT, err, "flush")
	}

	return nil
}
