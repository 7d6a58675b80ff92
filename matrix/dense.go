// Package matrix bridges the sparse layouts to gonum's dense matrices.
// Dense copies are reference material for cross-checks and debugging; the
// evaluation path never materialises them.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	methodCOODense = "COO.Dense"
	methodCSRDense = "CSR.Dense"
)

// Dense materialises the COO as an r×c gonum matrix (float64). Duplicate
// entries sum, matching MultiplyInto.
// Stage 1 (Validate): r, c > 0 and every entry inside the shape.
// Stage 2 (Execute): accumulate into a zeroed mat.Dense.
// Complexity: O(r*c + E).
func (m *COO) Dense(r, c int) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(methodCOODense, ErrNilMatrix, "coo")
	}
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(methodCOODense, ErrBadShape, "%dx%d", r, c)
	}
	d := mat.NewDense(r, c, nil)
	for _, e := range m.entries {
		if e.I < 0 || e.I >= r || e.J < 0 || e.J >= c {
			return nil, matrixErrorf(methodCOODense, ErrOutOfRange, "entry (%d,%d) in %dx%d", e.I, e.J, r, c)
		}
		d.Set(e.I, e.J, d.At(e.I, e.J)+float64(e.Value))
	}

	return d, nil
}

// Dense materialises the CSR as an r×c gonum matrix, walking the Iterator.
// Complexity: O(r*c + R + E).
func (m *CSR) Dense(r, c int) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(methodCSRDense, ErrNilMatrix, "csr")
	}
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(methodCSRDense, ErrBadShape, "%dx%d", r, c)
	}
	d := mat.NewDense(r, c, nil)
	it := m.Iter()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if e.I >= r || e.J < 0 || e.J >= c {
			return nil, matrixErrorf(methodCSRDense, ErrOutOfRange, "entry (%d,%d) in %dx%d", e.I, e.J, r, c)
		}
		d.Set(e.I, e.J, d.At(e.I, e.J)+float64(e.Value))
	}

	return d, nil
}
