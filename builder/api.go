// SPDX-License-Identifier: MIT
// Package: sparsenet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildCOO(bopts, cons...). Creates the COO, resolves cfg, runs cons in order.
//   - Public factories are declared in impl_*.go; data helpers in vector.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical edge lists.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsenet/matrix"
)

// Constructor appends edges to coo using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Append only; never reorder or drop edges added by earlier constructors.
//   - Preserve determinism for the same config and call order.
type Constructor func(coo *matrix.COO, cfg builderConfig) error

// BuildCOO creates an empty COO, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildCOO: %w" and returned immediately; no
// partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
func BuildCOO(bopts []BuilderOption, cons ...Constructor) (*matrix.COO, error) {
	coo := matrix.NewCOO(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildCOO, i, ErrConstructFailed)
		}
		if err := fn(coo, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildCOO, err)
		}
	}

	return coo, nil
}
