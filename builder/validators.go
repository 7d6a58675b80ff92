// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a wrapped sentinel via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: <name> must be ≥ <min>, got <got>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s must be ≥ %d, got %d", name, min, got)
	}

	return nil
}

// validateNonNegative ensures a length parameter is ≥ 0.
//
// Complexity: O(1) time and space.
func validateNonNegative(method, name string, got int) error {
	if got < 0 {
		return builderErrorf(method, ErrBadSize, "%s must be ≥ 0, got %d", name, got)
	}

	return nil
}

// validateRand ensures a stochastic constructor has an RNG.
//
// Complexity: O(1) time and space.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "no rng configured")
	}

	return nil
}
