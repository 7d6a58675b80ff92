// SPDX-License-Identifier: MIT
// Package sparsenet - single-pass forward evaluation.
//
// The forward layout groups incoming edges by target node in increasing node
// order. Because every source index is lower than its target index, by the
// time row i is reached every activation it reads is final, so one linear
// sweep over the Iterator evaluates the whole network:
//
//   - sum accumulates weight·activation[source] for the current row;
//   - when the Iterator moves past a row, that node is finalised as
//     Relu(sum + bias) (inputs are skipped and their sum discarded) and the
//     node cursor advances, covering rows without edges as well;
//   - after the sweep every remaining node up to N-1 is finalised, so
//     trailing nodes without incoming edges still evaluate to Relu(bias).
//
// Complexity: O(N + E) time, O(1) extra space.

package sparsenet

// Relu is the rectified linear activation: x if x > 0, else 0.
func Relu(x Num) Num {
	if x > 0 {
		return x
	}

	return 0
}

// Forward computes every non-input activation of d in one pass over the
// forward layout. Input activations are read as loaded.
// d must come from n.NewData (or match its sizes); a mismatch or an
// out-of-range source index panics (contract violation).
// Forward is deterministic: the accumulation order within a row is the
// edge insertion order.
func (n *Network) Forward(d *Data) {
	act := d.Activations
	var sum Num
	node := 0

	it := n.forward.Iter()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		// Flush every row strictly below the entry's row.
		for node < e.I && node < n.nodes {
			n.finalize(act, node, sum)
			sum = 0
			node++
		}
		sum += act[e.J] * e.Value
	}

	// Flush the last populated row and every trailing row.
	for ; node < n.nodes; node++ {
		n.finalize(act, node, sum)
		sum = 0
	}
}

// finalize writes Relu(sum + bias) for non-input nodes.
func (n *Network) finalize(act []Num, node int, sum Num) {
	if node < n.input {
		return // externally supplied via LoadInput
	}
	act[node] = Relu(sum + n.biases[node])
}

// Evaluate is a convenience wrapper: Reset, LoadInput, Forward, and a copy
// of the output slots.
func (n *Network) Evaluate(d *Data, in []Num) []Num {
	d.Reset()
	n.LoadInput(d, in)
	n.Forward(d)
	out := make([]Num, n.output)
	copy(out, n.Output(d))

	return out
}
