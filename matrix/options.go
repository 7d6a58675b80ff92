// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for CSR construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - Without padding, RowExtents ends at the highest populated row; an empty
//     COO yields exactly one extent (0). Callers that index RowExtents by a
//     fixed row count either request padding or bound their sweep by
//     len(RowExtents).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRowPadding controls whether RowExtents is padded with zero
	// extents up to the requested row count.
	DefaultRowPadding = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	padRows bool // DefaultRowPadding
}

// WithRowPadding makes CSR construction append zero extents until
// len(RowExtents) == rows. It never truncates: rows populated beyond the
// requested count are kept.
//
// Complexity:
//   - Time O(rows - populated), Space O(rows).
func WithRowPadding() Option {
	return func(o *Options) { o.padRows = true }
}

// gatherOptions applies user options on top of the documented defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		padRows: DefaultRowPadding,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
