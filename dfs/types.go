// Package dfs defines the error set, visitation states and options shared by
// TopologicalOrder and Relabel.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is in the recursion stack (visiting).
	Black        // Black: the node and all its dependencies have been fully explored.
)

var (
	// ErrBadSize is returned when the node count is negative or the pinned
	// prefix/suffix does not fit into it.
	ErrBadSize = errors.New("dfs: invalid node count")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("dfs: node index out of range")

	// ErrCycleDetected indicates that a cycle (including a self-loop) was
	// encountered; no topological order exists.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrPinnedOrder indicates that the pinned input prefix or output suffix
	// cannot keep its place: a pinned input depends on another node, or a
	// non-output node depends on a pinned output.
	ErrPinnedOrder = errors.New("dfs: pinned nodes cannot keep their place")
)

// TopoOption configures optional behavior for TopologicalOrder and Relabel.
type TopoOption func(*topoOptions)

// topoOptions holds settings for the sort.
type topoOptions struct {
	ctx     context.Context // allows cancellation; defaults to Background
	inputs  int             // nodes [0, inputs) stay first, in index order
	outputs int             // the last outputs nodes stay last, in index order
}

// defaultTopoOptions returns the default options (Background context, nothing pinned).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithPinnedInputs keeps nodes [0, k) at the front of the order.
// Panics if k < 0.
func WithPinnedInputs(k int) TopoOption {
	if k < 0 {
		panic("dfs: WithPinnedInputs(k<0)")
	}
	return func(o *topoOptions) { o.inputs = k }
}

// WithPinnedOutputs keeps the last k nodes at the back of the order.
// Panics if k < 0.
func WithPinnedOutputs(k int) TopoOption {
	if k < 0 {
		panic("dfs: WithPinnedOutputs(k<0)")
	}
	return func(o *topoOptions) { o.outputs = k }
}
