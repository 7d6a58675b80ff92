// SPDX-License-Identifier: MIT
// Package: sparsenet/builder
//
// vector.go - per-node data helpers (biases, random vectors).

package builder

import (
	"math/rand"

	"github.com/katalvlaran/sparsenet/matrix"
)

// RandomVector overwrites every slot of dst with a ∼U[-1,1) draw.
// Panics if rng is nil (programmer error).
// Complexity: O(len(dst)).
func RandomVector(rng *rand.Rand, dst []matrix.Num) {
	for i := range dst {
		dst[i] = 2*rng.Float32() - 1
	}
}

// Biases returns n biases drawn from the configured bias function
// (WithBiasFn), in node order. The default is all DefaultBias.
// Errors: ErrBadSize when n < 0.
// Complexity: O(n).
func Biases(n int, opts ...BuilderOption) ([]matrix.Num, error) {
	if err := validateNonNegative(MethodBiases, "n", n); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	out := make([]matrix.Num, n)
	for i := range out {
		out[i] = cfg.biasFn(cfg.rng)
	}

	return out, nil
}
