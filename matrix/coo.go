// SPDX-License-Identifier: MIT
// Package matrix - coordinate list (COO).
//
// COO is the raw, unordered edge list a network is built from:
//   - Insertion order is preserved and is the tie-break order of CSR rows.
//   - No validation of index ranges happens here; consumers that index
//     buffers with the stored indices treat out-of-range values as a
//     contract violation.
//   - Rebuilding is an explicit Reset + refill (deterministic construction)
//     or Random (stochastic generation from a caller-supplied RNG).

package matrix

import (
	"fmt"
	"io"
	"math/rand"
)

const methodDump = "Dump"

// COO is an insertion-ordered sequence of entries.
// The zero value is an empty, ready-to-use list.
type COO struct {
	entries []Entry
}

// NewCOO returns an empty COO with capacity for n entries.
// Complexity: O(n) memory.
func NewCOO(n int) *COO {
	if n < 0 {
		n = 0 // negative hint means "no preallocation"
	}

	return &COO{entries: make([]Entry, 0, n)}
}

// Len returns the number of stored entries. A nil COO has length 0.
// Complexity: O(1).
func (m *COO) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Push appends the edge (i, j, w). Indices are not validated.
// Complexity: O(1) amortized.
func (m *COO) Push(i, j int, w Num) {
	m.entries = append(m.entries, Entry{I: i, J: j, Value: w})
}

// At returns the k-th entry in insertion order.
// Panics if k is out of range (contract violation).
func (m *COO) At(k int) Entry {
	return m.entries[k]
}

// Entries returns a copy of the stored entries in insertion order.
// Complexity: O(E).
func (m *COO) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)

	return out
}

// Reset drops all entries and keeps the backing storage.
// Complexity: O(1).
func (m *COO) Reset() {
	m.entries = m.entries[:0]
}

// Random clears the list and repopulates it with count entries whose indices
// are drawn uniformly from [0,rows)×[0,cols) and whose weights are drawn
// uniformly from [-1,1).
// Stage 1 (Prepare): reset and reserve count entries.
// Stage 2 (Execute): draw i, j, w per entry in that order.
// Panics if rows or cols is not positive (rand.Intn contract) or rng is nil.
// Complexity: O(count).
func (m *COO) Random(rng *rand.Rand, rows, cols, count int) {
	m.Reset()
	if cap(m.entries) < count {
		m.entries = make([]Entry, 0, count)
	}
	for k := 0; k < count; k++ {
		i := rng.Intn(rows)
		j := rng.Intn(cols)
		w := 2*rng.Float32() - 1 // U[-1,1)
		m.entries = append(m.entries, Entry{I: i, J: j, Value: w})
	}
}

// MultiplyInto accumulates r[i] += w * v[j] for every entry (i, j, w).
// r is NOT zeroed first: callers pre-zero it, which lets several matrices
// accumulate into one buffer.
// Out-of-range indices panic (contract violation).
// Complexity: O(E).
func (m *COO) MultiplyInto(v, r []Num) {
	for _, e := range m.entries {
		r[e.I] += e.Value * v[e.J]
	}
}

// Dump writes one "%8d %8d %v" line per entry in insertion order.
// Write failures are returned wrapped with the method tag.
// Complexity: O(E).
func (m *COO) Dump(w io.Writer) error {
	for _, e := range m.entries {
		if _, err := fmt.Fprintf(w, "%8d %8d %v\n", e.I, e.J, e.Value); err != nil {
			return matrixErrorf(methodDump, err, "entry (%d,%d)", e.I, e.J)
		}
	}

	return nil
}
