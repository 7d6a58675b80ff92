// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm returns these sentinels (optionally wrapped with method
// context via %w) and tests check them via errors.Is. Panics are reserved for
// contract violations inside hot loops (index out of range) and for option
// constructors.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is added at the boundary with
// fmt.Errorf("Method: ...: %w", ErrX).

var (
	// ErrBadShape is returned when a requested dense shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an entry index lies outside the requested shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil COO or CSR was used where one is required.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps err with a method tag and formatted context, keeping
// the sentinel reachable through errors.Is.
// Complexity: O(len(format) + Σlen(args)).
func matrixErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
