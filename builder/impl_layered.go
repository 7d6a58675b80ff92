// SPDX-License-Identifier: MIT
// Package: sparsenet/builder
//
// impl_layered.go - implementation of the Layered(layers, perLayer) constructor.
//
// Canonical model:
//   - Node 0 is the single input; hidden node (layer, index) has index
//     layer*perLayer + index + 1; the single output is layers*perLayer + 1.
//   - The input feeds every node of hidden layer 0.
//   - Hidden node (l, k) feeds (l+1, k) and (l+1, (k+1) mod perLayer).
//   - Every node of the last hidden layer feeds the output.
//   - Edges are stored as (target, source), so every source index is lower
//     than its target index and the result is ready for sparsenet.New.
//
// Contract:
//   - layers ≥ 1, perLayer ≥ 1 (else ErrTooFewVertices).
//   - Weight policy: cfg.weightFn(cfg.rng) per edge, in push order.
//
// Determinism:
//   - Hidden nodes are visited layer-major (layer asc, index asc), then the
//     input edges are appended, mirroring the reference harness.
//
// Complexity:
//   - Time O(layers*perLayer), Space O(1) extra.

package builder

import "github.com/katalvlaran/sparsenet/matrix"

// LayeredNodes returns the node count of a Layered(layers, perLayer) network.
func LayeredNodes(layers, perLayer int) int {
	return layers*perLayer + 2
}

// LayeredHidden returns the node index of hidden node (layer, index).
func LayeredHidden(perLayer, layer, index int) int {
	return layer*perLayer + index + 1
}

// LayeredOutput returns the node index of the output.
func LayeredOutput(layers, perLayer int) int {
	return layers*perLayer + 1
}

// Layered returns a Constructor wiring input → hidden layers → output.
func Layered(layers, perLayer int) Constructor {
	return func(coo *matrix.COO, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodLayered, "layers", layers, MinLayers); err != nil {
			return err
		}
		if err := validateMin(MethodLayered, "perLayer", perLayer, MinPerLayer); err != nil {
			return err
		}

		const input = 0
		output := LayeredOutput(layers, perLayer)
		w := func() matrix.Num { return cfg.weightFn(cfg.rng) }

		// 2) Hidden nodes, layer-major.
		for l := 0; l < layers; l++ {
			for k := 0; k < perLayer; k++ {
				src := LayeredHidden(perLayer, l, k)
				if l == layers-1 {
					coo.Push(output, src, w())
					continue
				}
				coo.Push(LayeredHidden(perLayer, l+1, k), src, w())
				coo.Push(LayeredHidden(perLayer, l+1, (k+1)%perLayer), src, w())
			}
		}

		// 3) Input fan-out into hidden layer 0.
		for k := 0; k < perLayer; k++ {
			coo.Push(LayeredHidden(perLayer, 0, k), input, w())
		}

		return nil
	}
}
