// SPDX-License-Identifier: MIT
// Package matrix - row-major cursor over a CSR.
//
// Contract:
//   - An Iterator holds a non-owning reference to its CSR. Mutating the CSR
//     while iterating invalidates the Iterator (results are unspecified).
//   - It is forward-only and single-use; call Iter again to restart.
//   - Rows with a zero extent are skipped; iteration ends once the row
//     cursor passes len(RowExtents).

package matrix

import "iter"

// Iterator yields (row, column, value) triples in row-major order and, within
// a row, in storage order.
type Iterator struct {
	mat    *CSR // borrowed, never mutated
	row    int  // current row cursor
	offset int  // start of the current row in ColIndices/Values
	pos    int  // position inside the current row
}

// Iter returns a fresh Iterator positioned before the first entry.
// Complexity: O(1).
func (m *CSR) Iter() *Iterator {
	return &Iterator{mat: m}
}

// Next returns the next entry and true, or the zero Entry and false once the
// matrix is exhausted.
// Complexity: amortized O(1); O(R + E) over a full pass.
func (it *Iterator) Next() (Entry, bool) {
	ext := it.mat.RowExtents
	// Skip empty rows.
	for it.row < len(ext) && ext[it.row] < 1 {
		it.row++
	}
	if it.row >= len(ext) {
		return Entry{}, false
	}

	k := it.offset + it.pos
	e := Entry{I: it.row, J: it.mat.ColIndices[k], Value: it.mat.Values[k]}

	it.pos++
	if it.pos >= ext[it.row] { // row finished: advance to the next one
		it.pos = 0
		it.offset += ext[it.row]
		it.row++
	}

	return e, true
}

// All returns a range-over-func sequence backed by a fresh Iterator.
func (m *CSR) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		it := m.Iter()
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e) {
				return
			}
		}
	}
}
