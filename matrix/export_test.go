package matrix_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsenet/matrix"
)

// TestWriteDOT_Grammar checks the exact export text.
func TestWriteDOT_Grammar(t *testing.T) {
	coo := matrix.NewCOO(3)
	coo.Push(2, 1, 1)
	coo.Push(1, 0, 1)
	coo.Push(2, 0, 0.5)

	var buf bytes.Buffer
	require.NoError(t, matrix.FromCOO(coo, 3).WriteDOT(&buf))
	require.Equal(t, "digraph {\n"+
		"  graph [rankdir=LR];\n"+
		"  node [shape=point];\n"+
		"  1 -> 0;\n"+
		"  2 -> 1;\n"+
		"  2 -> 0;\n"+
		"}\n", buf.String())
}

// TestWriteDOT_Empty exports a matrix without entries.
func TestWriteDOT_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.FromCOO(nil, 0).WriteDOT(&buf))
	require.Equal(t, "digraph {\n  graph [rankdir=LR];\n  node [shape=point];\n}\n", buf.String())
}

// TestWriteDOT_Errors ensures I/O failures and nil receivers surface as errors.
func TestWriteDOT_Errors(t *testing.T) {
	coo := matrix.NewCOO(1)
	coo.Push(1, 0, 1)

	err := matrix.FromCOO(coo, 2).WriteDOT(failWriter{})
	require.Error(t, err)
	require.True(t, errors.Is(err, errBoom))

	var nilCSR *matrix.CSR
	require.ErrorIs(t, nilCSR.WriteDOT(&bytes.Buffer{}), matrix.ErrNilMatrix)
}
