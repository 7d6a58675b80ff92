package sparsenet_test

import (
	"errors"

	"github.com/katalvlaran/sparsenet/matrix"
)

var errBoom = errors.New("boom")

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errBoom }

// edge is a (target, source, weight) triple.
type edge struct {
	i, j int
	w    matrix.Num
}

// cooOf builds a COO from edges in the given order.
func cooOf(es ...edge) *matrix.COO {
	coo := matrix.NewCOO(len(es))
	for _, e := range es {
		coo.Push(e.i, e.j, e.w)
	}

	return coo
}
