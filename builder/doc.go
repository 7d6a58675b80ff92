// Package builder provides reusable "functional-options"-style building blocks
// for sparse network fixtures. It lives alongside matrix and sparsenet to
// centralize RNG seeding, weight distributions and topology constructors,
// keeping callers DRY, testable and deterministic.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, edge weight function and bias function.
//   - Weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – SymmetricWeightFn: uniform ∼U[-1,1), the network initialisation range.
//   - Constructors (Constructor implementations):
//     – Layered:           input → hidden layers → output, wired in index order.
//     – Random:            uniformly drawn edges in a rows×cols box.
//   - Data helpers:
//     – Biases:            one bias per node from the configured bias function.
//     – RandomVector:      fill a slice with ∼U[-1,1) draws.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid build parameters, wrapping the
//     sentinels (ErrTooFewVertices, ErrNeedRandSource, ...) for errors.Is.
//   - Determinism: same options, seed and constructor order ⇒ identical COO.
package builder
