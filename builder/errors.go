// SPDX-License-Identifier: MIT
// Package: sparsenet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (layers, per-layer
// width, rows, cols) is smaller than the allowed minimum.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the orchestrator could not run a
// constructor (e.g. a nil Constructor was passed).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an invalid length for data helpers (Biases n < 0,
// Random count < 0).
var ErrBadSize = errors.New("builder: invalid size/length")

// builderErrorf wraps err with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	// Build the inner message using fmt.Sprintf
	inner := fmt.Sprintf(format, args...)
	// Prefix with the method name and keep the sentinel reachable
	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
