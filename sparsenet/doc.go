// Package sparsenet evaluates a directed, weighted, sparse computation graph
// (a "sparse neural network") in one forward pass.
//
// A Network owns one bias per node and two compressed row layouts built from
// the same coordinate list: the forward layout (rows are target nodes,
// columns their sources) and the backward layout (rows are source nodes).
// Only the forward layout is consumed by Forward; the backward layout and the
// gradient buffers in Data are reserved for a backward pass.
//
// Index invariant:
//
//	Node indices form a topological order: every edge (target i, source j)
//	has j < i, and inputs [0, Inputs()) take no incoming edges. Forward relies
//	on it to finalise every node in a single linear sweep; Validate checks
//	it, and WithRelabel establishes it for any acyclic edge list.
//
// Evaluation:
//
//	activation[v] = Relu(bias[v] + Σ weight·activation[source])  for v ≥ Inputs()
//
// Input activations are whatever LoadInput last wrote.
//
// Concurrency: a Network is read-only after New. Several goroutines may run
// Forward at once as long as each uses its own Data.
//
// Errors follow the matrix/builder conventions: sentinels matched with
// errors.Is, wrapped with method context. Contract violations (short input,
// Data from another network, out-of-range indices without validation) panic.
package sparsenet
