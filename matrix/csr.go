// SPDX-License-Identifier: MIT
// Package matrix - compressed row layout (CSR).
//
// Construction model:
//   - Map every COO entry through an IndexMap to (row, col).
//   - Stable-sort entry positions by mapped row; ties keep insertion order,
//     which fixes the accumulation order inside a row.
//   - One sweep closes rows as the cursor falls behind an entry's row, emitting
//     an explicit 0 extent for every skipped row.
//   - The last row's extent is always appended, so an empty COO yields
//     RowExtents == [0].
//
// Invariant: sum(RowExtents) == len(ColIndices) == len(Values); row r occupies
// ColIndices/Values[sum(RowExtents[:r]) : sum(RowExtents[:r+1])].
//
// Complexity:
//   - Time O(E log E), Space O(E + R).

package matrix

import "sort"

// CSR is a row-grouped sparse layout.
// Fields are exported for read access; mutating them while an Iterator is
// live invalidates that Iterator.
type CSR struct {
	RowExtents []int // per-row entry counts, rows 0..last populated (plus padding)
	ColIndices []int // column index per entry, grouped by row
	Values     []Num // value per entry, parallel to ColIndices
}

// FromCOO builds the CSR of coo in its stored orientation.
// rows is a capacity hint (and the padding target under WithRowPadding).
func FromCOO(coo *COO, rows int, opts ...Option) *CSR {
	return FromCOOTransformed(coo, rows, Identity, opts...)
}

// FromCOOTransposed builds the CSR of the transpose of coo: rows are the
// stored columns.
func FromCOOTransposed(coo *COO, cols int, opts ...Option) *CSR {
	return FromCOOTransformed(coo, cols, Transpose, opts...)
}

// FromCOOTransformed builds a CSR from coo under the index map idx.
// Stage 1 (Prepare): compute the mapped row of every entry once.
// Stage 2 (Sort): stable-sort entry positions by mapped row.
// Stage 3 (Sweep): emit extents/columns/values in sorted order.
// Stage 4 (Finalize): append the last extent; pad if requested.
// A nil coo is treated as empty.
// Complexity: O(E log E) time, O(E + rows) memory.
func FromCOOTransformed(coo *COO, rows int, idx IndexMap, opts ...Option) *CSR {
	o := gatherOptions(opts...)
	n := coo.Len()
	if rows < 0 {
		rows = 0
	}

	// Stage 1: cache mapped coordinates.
	mappedRow := make([]int, n)
	mappedCol := make([]int, n)
	for k := 0; k < n; k++ {
		e := coo.entries[k]
		mappedRow[k], mappedCol[k] = idx(e.I, e.J)
	}

	// Stage 2: positions 0..n-1 ordered by mapped row (stable).
	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		return mappedRow[order[a]] < mappedRow[order[b]]
	})

	m := &CSR{
		RowExtents: make([]int, 0, rows),
		ColIndices: make([]int, 0, n),
		Values:     make([]Num, 0, n),
	}

	// Stage 3: single sweep.
	var row, extent int
	for _, k := range order {
		for row < mappedRow[k] { // close every row strictly below this entry
			m.RowExtents = append(m.RowExtents, extent)
			extent = 0
			row++
		}
		m.ColIndices = append(m.ColIndices, mappedCol[k])
		m.Values = append(m.Values, coo.entries[k].Value)
		extent++
	}

	// Stage 4: the current row is always closed, even for an empty COO.
	m.RowExtents = append(m.RowExtents, extent)
	if o.padRows {
		for len(m.RowExtents) < rows {
			m.RowExtents = append(m.RowExtents, 0)
		}
	}

	return m
}

// Rows returns the number of recorded row extents.
// Complexity: O(1).
func (m *CSR) Rows() int { return len(m.RowExtents) }

// NNZ returns the number of stored entries.
// Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.Values) }

// Row returns the column indices and values of row r as shared views.
// Rows beyond the recorded extents are empty.
// Complexity: O(r) to locate the row start.
func (m *CSR) Row(r int) ([]int, []Num) {
	if r < 0 || r >= len(m.RowExtents) {
		return nil, nil
	}
	start := 0
	for _, ext := range m.RowExtents[:r] {
		start += ext
	}
	end := start + m.RowExtents[r]

	return m.ColIndices[start:end:end], m.Values[start:end:end]
}

// Entries drains a fresh Iterator into a slice.
// Complexity: O(R + E).
func (m *CSR) Entries() []Entry {
	out := make([]Entry, 0, m.NNZ())
	it := m.Iter()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out = append(out, e)
	}

	return out
}
