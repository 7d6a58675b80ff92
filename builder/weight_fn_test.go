// Package builder_test contains unit tests for the WeightFn implementations
// and option constructors, covering both behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sparsenet/builder"
	"github.com/katalvlaran/sparsenet/matrix"
)

// TestOptionPanics verifies that option constructors panic on nil inputs.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithBiasFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.NotPanics(t, func() { builder.WithRand(rand.New(rand.NewSource(1))) })
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42)) // reproducible RNG

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, matrix.Num(-3), builder.ConstantWeightFn(-3)(rng))

	u := builder.UniformWeightFn(-2, 2)
	assert.Equal(t, builder.DefaultEdgeWeight, u(nil)) // deterministic fallback
	for i := 0; i < 100; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, matrix.Num(-2))
		assert.Less(t, w, matrix.Num(2))
	}
	assert.Equal(t, matrix.Num(0.25), builder.UniformWeightFn(0.25, 0.25)(rng))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.SymmetricWeightFn(nil))
}

// TestWeightOptions checks WithConstantWeight and WithUniformWeight through Layered.
func TestWeightOptions(t *testing.T) {
	t.Parallel()

	coo, err := builder.BuildCOO([]builder.BuilderOption{builder.WithConstantWeight(0.5)}, builder.Layered(1, 1))
	assert.NoError(t, err)
	for _, e := range coo.Entries() {
		assert.Equal(t, matrix.Num(0.5), e.Value)
	}

	coo, err = builder.BuildCOO(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(3, 4)},
		builder.Layered(1, 3),
	)
	assert.NoError(t, err)
	for _, e := range coo.Entries() {
		assert.GreaterOrEqual(t, e.Value, matrix.Num(3))
		assert.Less(t, e.Value, matrix.Num(4))
	}
}
