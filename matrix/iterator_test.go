package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsenet/matrix"
)

// TestIterator_SkipsEmptyRows walks a layout with leading, inner and trailing zero extents.
func TestIterator_SkipsEmptyRows(t *testing.T) {
	csr := &matrix.CSR{
		RowExtents: []int{0, 2, 0, 1, 0},
		ColIndices: []int{4, 5, 6},
		Values:     []matrix.Num{1, 2, 3},
	}

	it := csr.Iter()
	var got []matrix.Entry
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		got = append(got, e)
	}
	require.Equal(t, []matrix.Entry{
		{I: 1, J: 4, Value: 1},
		{I: 1, J: 5, Value: 2},
		{I: 3, J: 6, Value: 3},
	}, got)

	// Exhausted iterators stay exhausted.
	_, ok := it.Next()
	require.False(t, ok)
}

// TestIterator_Restart shows that a new Iter starts from the beginning.
func TestIterator_Restart(t *testing.T) {
	coo := matrix.NewCOO(2)
	coo.Push(0, 1, 1)
	coo.Push(1, 0, 1)
	csr := matrix.FromCOO(coo, 2)

	first, _ := csr.Iter().Next()
	again, _ := csr.Iter().Next()
	require.Equal(t, first, again)
	require.Len(t, csr.Entries(), 2)
}

// TestCSR_All checks range-over-func iteration and early termination.
func TestCSR_All(t *testing.T) {
	coo := matrix.NewCOO(3)
	coo.Push(2, 0, 1)
	coo.Push(1, 0, 1)
	coo.Push(0, 0, 1)
	csr := matrix.FromCOO(coo, 3)

	var rows []int
	for e := range csr.All() {
		rows = append(rows, e.I)
	}
	require.Equal(t, []int{0, 1, 2}, rows)

	n := 0
	for range csr.All() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}
