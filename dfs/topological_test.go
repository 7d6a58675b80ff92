package dfs_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/sparsenet/dfs"
	"github.com/katalvlaran/sparsenet/matrix"
)

// position returns index of v in slice or -1 if not found
func position(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// edgesOf builds a COO from (target, source) pairs with unit weight.
func edgesOf(pairs ...[2]int) *matrix.COO {
	coo := matrix.NewCOO(len(pairs))
	for _, p := range pairs {
		coo.Push(p[0], p[1], 1)
	}

	return coo
}

// TestTopo_Empty covers zero nodes and nodes without edges.
func TestTopo_Empty(t *testing.T) {
	order, err := dfs.TopologicalOrder(0, nil)
	assert.NoError(t, err)
	assert.Empty(t, order)

	order, err = dfs.TopologicalOrder(3, matrix.NewCOO(0))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order) // ascending roots
}

// TestTopo_AlreadyOrdered verifies that an index-ordered network keeps the identity order.
func TestTopo_AlreadyOrdered(t *testing.T) {
	order, err := dfs.TopologicalOrder(3, edgesOf([2]int{1, 0}, [2]int{2, 1}))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestTopo_ReversedChain checks that sources are pulled ahead of their dependents.
func TestTopo_ReversedChain(t *testing.T) {
	// 0 depends on 1, 1 depends on 2.
	order, err := dfs.TopologicalOrder(3, edgesOf([2]int{0, 1}, [2]int{1, 2}))
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, order)
}

// TestTopo_Branching checks a diamond: 3 depends on 1 and 2, both depend on 0.
func TestTopo_Branching(t *testing.T) {
	order, err := dfs.TopologicalOrder(4, edgesOf(
		[2]int{3, 2}, [2]int{3, 1}, [2]int{1, 0}, [2]int{2, 0},
	))
	assert.NoError(t, err)
	assert.Len(t, order, 4)
	assert.Less(t, position(order, 0), position(order, 1))
	assert.Less(t, position(order, 0), position(order, 2))
	assert.Less(t, position(order, 1), position(order, 3))
	assert.Less(t, position(order, 2), position(order, 3))
}

// TestTopo_Errors covers the sentinel set.
func TestTopo_Errors(t *testing.T) {
	_, err := dfs.TopologicalOrder(-1, nil)
	assert.ErrorIs(t, err, dfs.ErrBadSize)

	_, err = dfs.TopologicalOrder(2, nil, dfs.WithPinnedInputs(2), dfs.WithPinnedOutputs(1))
	assert.ErrorIs(t, err, dfs.ErrBadSize)

	_, err = dfs.TopologicalOrder(2, edgesOf([2]int{2, 0}))
	assert.ErrorIs(t, err, dfs.ErrNodeOutOfRange)

	_, err = dfs.TopologicalOrder(2, edgesOf([2]int{1, -1}))
	assert.ErrorIs(t, err, dfs.ErrNodeOutOfRange)

	order, err := dfs.TopologicalOrder(3, edgesOf([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalOrder(2, edgesOf([2]int{1, 1})) // self-loop
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_Pinned verifies pinned inputs and outputs.
func TestTopo_Pinned(t *testing.T) {
	// Hidden nodes 1 and 2 are misordered; input 0 and output 3 are fine.
	edges := edgesOf([2]int{2, 0}, [2]int{1, 2}, [2]int{3, 1})
	order, err := dfs.TopologicalOrder(4, edges, dfs.WithPinnedInputs(1), dfs.WithPinnedOutputs(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, order)

	// Input 1 depends on node 2: cannot stay in the prefix.
	_, err = dfs.TopologicalOrder(3, edgesOf([2]int{1, 2}), dfs.WithPinnedInputs(2))
	assert.ErrorIs(t, err, dfs.ErrPinnedOrder)

	// Hidden node 1 depends on output 2: the output would move forward.
	_, err = dfs.TopologicalOrder(3, edgesOf([2]int{1, 2}, [2]int{2, 0}), dfs.WithPinnedOutputs(1))
	assert.ErrorIs(t, err, dfs.ErrPinnedOrder)
}

// TestTopo_Canceled ensures a canceled context aborts the sort.
func TestTopo_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.TopologicalOrder(2, edgesOf([2]int{1, 0}), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestTopo_OptionPanics checks option constructor validation.
func TestTopo_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dfs.WithPinnedInputs(-1) })
	assert.Panics(t, func() { dfs.WithPinnedOutputs(-1) })
	assert.NotPanics(t, func() { dfs.WithCancelContext(nil) })
}

// TestRelabel_RandomDAG relabels a shuffled DAG and checks the index invariant.
func TestRelabel_RandomDAG(t *testing.T) {
	const n, m = 40, 150
	rng := rand.New(rand.NewSource(5))
	label := rng.Perm(n) // hide the natural order behind a shuffle

	edges := matrix.NewCOO(m)
	for k := 0; k < m; k++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		if a < b {
			a, b = b, a
		}
		edges.Push(label[a], label[b], rng.Float32()) // a depends on b in natural order
	}

	perm, out, err := dfs.Relabel(n, edges)
	require.NoError(t, err)
	require.Equal(t, edges.Len(), out.Len())
	for k := 0; k < out.Len(); k++ {
		e, orig := out.At(k), edges.At(k)
		assert.Less(t, e.J, e.I)
		assert.Equal(t, perm[orig.I], e.I)
		assert.Equal(t, perm[orig.J], e.J)
		assert.Equal(t, orig.Value, e.Value)
	}
}

// TestRelabel_AgreesWithGonum cross-checks acyclicity decisions against gonum's topo.Sort.
func TestRelabel_AgreesWithGonum(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		const n = 12
		edges := matrix.NewCOO(0)
		g := simple.NewDirectedGraph()
		for v := 0; v < n; v++ {
			g.AddNode(simple.Node(v))
		}
		for k := 0; k < 14; k++ {
			i, j := rng.Intn(n), rng.Intn(n)
			if i == j {
				continue // gonum's simple graph rejects self edges
			}
			edges.Push(i, j, 1)
			g.SetEdge(g.NewEdge(simple.Node(j), simple.Node(i))) // source → dependent
		}

		_, gonumErr := topo.Sort(g)
		_, _, err := dfs.Relabel(n, edges)
		if gonumErr != nil {
			assert.ErrorIs(t, err, dfs.ErrCycleDetected, "seed %d", seed)
		} else {
			assert.NoError(t, err, "seed %d", seed)
		}
	}
}

// TestPermute carries values through a permutation.
func TestPermute(t *testing.T) {
	got := dfs.Permute([]int{2, 0, 1}, []matrix.Num{10, 20, 30})
	assert.Equal(t, []matrix.Num{20, 30, 10}, got)
	assert.Panics(t, func() { dfs.Permute([]int{0}, nil) })
}
