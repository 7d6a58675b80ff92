// SPDX-License-Identifier: MIT
// Package: sparsenet/builder
//
// impl_random.go - implementation of the Random(rows, cols, count) constructor.
//
// Canonical model:
//   - count independent draws: i ∼ U[0,rows), j ∼ U[0,cols), w ∼ U[-1,1),
//     drawn in that order per edge (matrix.COO.Random semantics).
//   - The drawn edges are appended after any edges already present.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - count ≥ 0 (else ErrBadSize).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for count = 0.
//
// Complexity:
//   - Time O(count), Space O(count) for the scratch list.

package builder

import "github.com/katalvlaran/sparsenet/matrix"

// Random returns a Constructor appending count uniformly drawn edges.
func Random(rows, cols, count int) Constructor {
	return func(coo *matrix.COO, cfg builderConfig) error {
		if err := validateMin(MethodRandom, "rows", rows, MinRandomDim); err != nil {
			return err
		}
		if err := validateMin(MethodRandom, "cols", cols, MinRandomDim); err != nil {
			return err
		}
		if err := validateNonNegative(MethodRandom, "count", count); err != nil {
			return err
		}
		if err := validateRand(MethodRandom, cfg); err != nil {
			return err
		}

		scratch := matrix.NewCOO(count)
		scratch.Random(cfg.rng, rows, cols, count)
		for k := 0; k < scratch.Len(); k++ {
			e := scratch.At(k)
			coo.Push(e.I, e.J, e.Value)
		}

		return nil
	}
}
