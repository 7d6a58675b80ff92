// SPDX-License-Identifier: MIT

package sparsenet

import (
	"fmt"
	"io"

	"github.com/katalvlaran/sparsenet/dfs"
	"github.com/katalvlaran/sparsenet/matrix"
)

// Num is the scalar type of weights, biases and activations.
type Num = matrix.Num

const (
	methodNew      = "New"
	methodValidate = "Validate"
	methodWriteDOT = "Network.WriteDOT"
)

// Network is a sparse computation graph ready for single-pass evaluation.
// It exclusively owns its biases and layouts; it is read-only after New.
type Network struct {
	nodes int // N
	edges int // E

	biases   []Num
	forward  *matrix.CSR // rows = targets, cols = sources (identity map)
	backward *matrix.CSR // rows = sources, cols = targets (transpose map)

	input  int   // nodes [0, input) are inputs
	output int   // the last output nodes are outputs
	perm   []int // perm[old] = new when built WithRelabel, else nil
}

// Data is the scratch state of one evaluation, bound to one Network.
// DBiases and DWeights are allocated for a backward pass and never written.
type Data struct {
	Activations []Num // one slot per node
	DBiases     []Num // one slot per node
	DWeights    []Num // one slot per edge
}

// New builds a Network from node biases, an edge list in (target, source)
// form, and the input/output counts.
// Stage 1 (Validate): shape of input/output against len(biases).
// Stage 2 (Prepare): optional relabeling and/or index validation.
// Stage 3 (Execute): forward layout (identity) and backward layout (transpose),
// both sized to len(biases).
// biases is retained, not copied, unless WithRelabel permutes it.
// Errors: ErrBadShape; with options also ErrNodeOutOfRange, ErrInputEdge,
// ErrNotTopological and the dfs sentinels (e.g. dfs.ErrCycleDetected).
// Complexity: O(E log E + N).
func New(biases []Num, edges *matrix.COO, input, output int, opts ...Option) (*Network, error) {
	o := gatherOptions(opts...)
	n := len(biases)

	if input < 0 || output < 0 || input > n || output > n {
		return nil, fmt.Errorf("%s: nodes=%d input=%d output=%d: %w", methodNew, n, input, output, ErrBadShape)
	}

	var perm []int
	if o.relabel {
		p, relabeled, err := dfs.Relabel(n, edges, dfs.WithPinnedInputs(input), dfs.WithPinnedOutputs(outputSuffix(n, input, output)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
		perm, edges, biases = p, relabeled, dfs.Permute(p, biases)
	}
	if o.validate {
		if err := ValidateEdges(n, input, edges); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
	}

	return &Network{
		nodes:    n,
		edges:    edges.Len(),
		biases:   biases,
		forward:  matrix.FromCOO(edges, n),
		backward: matrix.FromCOOTransposed(edges, n),
		input:    input,
		output:   output,
		perm:     perm,
	}, nil
}

// outputSuffix is the number of trailing nodes that may be pinned as outputs
// without overlapping the pinned inputs.
func outputSuffix(n, input, output int) int {
	if input+output > n {
		return n - input
	}

	return output
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(biases []Num, edges *matrix.COO, input, output int, opts ...Option) *Network {
	net, err := New(biases, edges, input, output, opts...)
	if err != nil {
		panic(err)
	}

	return net
}

// Nodes returns N.
func (n *Network) Nodes() int { return n.nodes }

// Edges returns E.
func (n *Network) Edges() int { return n.edges }

// Inputs returns the number of input nodes.
func (n *Network) Inputs() int { return n.input }

// Outputs returns the number of output nodes.
func (n *Network) Outputs() int { return n.output }

// Biases returns the biases as a read-only view.
func (n *Network) Biases() []Num { return n.biases }

// ForwardMatrix returns the forward layout (rows = targets). Read-only.
func (n *Network) ForwardMatrix() *matrix.CSR { return n.forward }

// BackwardMatrix returns the backward layout (rows = sources). Read-only.
func (n *Network) BackwardMatrix() *matrix.CSR { return n.backward }

// Permutation returns perm[old] = new when the network was built WithRelabel,
// otherwise nil.
func (n *Network) Permutation() []int { return n.perm }

// NewData allocates zeroed evaluation buffers sized to this network.
// Complexity: O(N + E).
func (n *Network) NewData() *Data {
	return &Data{
		Activations: make([]Num, n.nodes),
		DBiases:     make([]Num, n.nodes),
		DWeights:    make([]Num, n.edges),
	}
}

// Reset zeroes every buffer of d.
// Complexity: O(N + E).
func (d *Data) Reset() {
	clear(d.Activations)
	clear(d.DBiases)
	clear(d.DWeights)
}

// LoadInput copies in[0:Input] into the input activation slots.
// Panics if len(in) < Input (contract violation). Extra values are ignored.
func (n *Network) LoadInput(d *Data, in []Num) {
	if len(in) < n.input {
		panic(fmt.Sprintf("sparsenet: LoadInput: got %d values, need %d", len(in), n.input))
	}
	copy(d.Activations[:n.input], in[:n.input])
}

// Output returns the last Outputs() activation slots of d as a view into
// d.Activations. The view is overwritten by the next Forward or Reset.
func (n *Network) Output(d *Data) []Num {
	return d.Activations[n.nodes-n.output:]
}

// WriteDOT exports the forward layout as a directed graph (target -> source
// per edge, Iterator order). Write failures are returned wrapped.
func (n *Network) WriteDOT(w io.Writer) error {
	if err := n.forward.WriteDOT(w); err != nil {
		return fmt.Errorf("%s: %w", methodWriteDOT, err)
	}

	return nil
}
