package matrix_test

import (
	"errors"
	"sort"

	"github.com/katalvlaran/sparsenet/matrix"
)

// errBoom is the failure injected by failWriter.
var errBoom = errors.New("boom")

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errBoom }

// stableByRow returns a copy of in, stable-sorted by I.
func stableByRow(in []matrix.Entry) []matrix.Entry {
	out := append([]matrix.Entry(nil), in...)
	sort.SliceStable(out, func(a, b int) bool { return out[a].I < out[b].I })

	return out
}

// sum adds up ints.
func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}
