// SPDX-License-Identifier: MIT
// Package: sparsenet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil                    (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn        (every edge weighs 1)
//   • biasFn   = constant DefaultBias   (every bias is 0)

package builder

import (
	"math/rand" // RNG for stochastic builders

	"github.com/katalvlaran/sparsenet/matrix"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Bias generator for nodes.
	biasFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,             // no RNG unless explicitly set
		weightFn: DefaultWeightFn, // constant 1
		biasFn:   constBias,       // constant 0
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// constBias yields DefaultBias regardless of the RNG.
func constBias(_ *rand.Rand) matrix.Num { return DefaultBias }
