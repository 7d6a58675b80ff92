// Package builder provides internal helper functions and types
// for configuring edge-weight and bias distributions in constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sparsenet/matrix"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight matrix.Num = 1

// DefaultBias is the bias assigned to each node when no custom bias function
// is provided.
const DefaultBias matrix.Num = 0

// WeightFn produces a weight (or bias) given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) matrix.Num

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) matrix.Num {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Negative values are allowed: network weights are signed.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value matrix.Num) WeightFn {
	return func(_ *rand.Rand) matrix.Num {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if max < min.
// If rng is nil, yields DefaultEdgeWeight to maintain deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max matrix.Num) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) matrix.Num {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			// Degenerate interval: constant
			return min
		}
		// Continuous uniform on [min, max) (Float32() returns [0,1))
		return min + rng.Float32()*(max-min)
	}
}

// SymmetricWeightFn samples ∼U[-1,1), the range used for weight and bias
// initialisation. If rng is nil, yields DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space.
func SymmetricWeightFn(rng *rand.Rand) matrix.Num {
	return UniformWeightFn(-1, 1)(rng)
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
// Complexity: O(1).
func WithConstantWeight(w matrix.Num) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
// Complexity: O(1).
func WithUniformWeight(min, max matrix.Num) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
