// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the coordinate and compressed
// layouts. Errors and options live in dedicated files (errors.go,
// options.go).
package matrix

// Num is the scalar type of weights, values and activations.
// Single precision is the only supported precision.
type Num = float32

// Entry is one (row, column, value) triple.
// In a network's forward layout I is the target node and J the source node.
// No uniqueness is implied: duplicate (I,J) pairs are legal and sum.
type Entry struct {
	I     int // row index
	J     int // column index
	Value Num // edge weight
}

// IndexMap maps a stored (i, j) pair onto the (row, col) pair used by a CSR
// layout. It must be pure: CSR construction calls it more than once per edge.
type IndexMap func(i, j int) (row, col int)

// Identity keeps the coordinate orientation (row=i, col=j).
func Identity(i, j int) (int, int) { return i, j }

// Transpose swaps the coordinate roles (row=j, col=i).
func Transpose(i, j int) (int, int) { return j, i }
