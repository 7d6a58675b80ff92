// SPDX-License-Identifier: MIT

// Package sparsenet: functional configuration for New.
//
// Defaults mirror the evaluation contract: no validation and no relabeling,
// so New is a pure layout conversion and index errors are the caller's.
package sparsenet

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultValidate controls whether New checks the index invariant.
	DefaultValidate = false

	// DefaultRelabel controls whether New reorders nodes topologically.
	DefaultRelabel = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	validate bool // DefaultValidate
	relabel  bool // DefaultRelabel
}

// WithValidation makes New reject edge lists that break the index invariant
// (ErrNodeOutOfRange, ErrInputEdge, ErrNotTopological).
func WithValidation() Option {
	return func(o *options) { o.validate = true }
}

// WithRelabel makes New renumber nodes into a topological order before
// building the layouts. Inputs keep [0, input) and outputs keep the last
// output indices; biases move with their nodes. The applied permutation is
// available from Network.Permutation. Implies validation of the result.
func WithRelabel() Option {
	return func(o *options) { o.relabel = true }
}

// gatherOptions applies user options on top of the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		validate: DefaultValidate,
		relabel:  DefaultRelabel,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.relabel {
		o.validate = true
	}

	return o
}
