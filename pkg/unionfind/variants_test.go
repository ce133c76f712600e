package unionfind

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conn_tool/internal/testutils"
)

func TestQuickFindBasic(t *testing.T) {
	q := NewQuickFind(6)

	merged, err := q.Union(1, 2)
	require.NoError(t, err)
	require.True(t, merged)

	// Union(v, w) 之后整个分量挂在 v 的代表元下
	root, err := q.Find(2)
	require.NoError(t, err)
	assert.Equal(t, 1, root, "Find(2) should return the representative of 1")

	ok, err := q.Connected(1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q.Connected(1, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	// 重复合并不再改写
	merged, err = q.Union(2, 1)
	require.NoError(t, err)
	assert.False(t, merged)
}

func TestForestChainDegenerates(t *testing.T) {
	// 朝同一个方向连续合并，朴素森林退化成一条长链
	const n = 16
	f := NewForest(n)
	for v := 0; v+1 < n; v++ {
		merged, err := f.Union(v, v+1)
		require.NoError(t, err)
		require.True(t, merged)
	}

	root, err := f.Find(0)
	require.NoError(t, err)
	assert.Equal(t, n-1, root)

	// 从 0 走到根要 n-1 步
	steps := 0
	for v := 0; f.parent[v] >= 0; v = f.parent[v] {
		steps++
	}
	assert.Equal(t, n-1, steps, "node 0 should sit at the bottom of the chain")
}

func TestForestSelfUnionIsNoOp(t *testing.T) {
	f := NewForest(4)
	f.Union(0, 1)

	before := testutils.PartitionOf(t, f)
	merged, err := f.Union(1, 0)
	require.NoError(t, err)
	assert.False(t, merged)

	// 合并同一分量不能把根挂到自己身上
	root, err := f.Find(0)
	require.NoError(t, err)
	assert.Equal(t, 1, root)
	assert.True(t, testutils.SamePartition(before, testutils.PartitionOf(t, f)))
}

func TestBalancedForestHeightBound(t *testing.T) {
	// 按大小合并后，任何一棵树的高度（按节点数）不超过 ⌊log2(n)⌋ + 1
	const n = 64
	bound := bits.Len(uint(n)) // ⌊log2(n)⌋ + 1

	bf := NewBalancedForest(n)
	for _, e := range testutils.RandEdges(n, 4*n, 2024) {
		_, err := bf.Union(e[0], e[1])
		require.NoError(t, err)
	}

	for v := 0; v < n; v++ {
		height := 1
		for u := v; bf.cells[u].parent != u; u = bf.cells[u].parent {
			height++
		}
		assert.LessOrEqualf(t, height, bound,
			"node %d sits at depth %d, bound is %d", v, height, bound)
	}
}

func TestBalancedForestFindDoesNotMutate(t *testing.T) {
	bf := NewBalancedForest(10)
	for _, e := range testutils.RandEdges(10, 12, 3) {
		bf.Union(e[0], e[1])
	}

	snapshot := append([]cell(nil), bf.cells...)
	for v := 0; v < bf.Len(); v++ {
		_, err := bf.Find(v)
		require.NoError(t, err)
	}
	assert.Equal(t, snapshot, bf.cells, "Find must leave the forest untouched")
}

func TestVariantsAgreeOnRandomEdges(t *testing.T) {
	const (
		n    = 50
		m    = 120
		seed = 77
	)
	edges := testutils.RandEdges(n, m, seed)
	input := testutils.Snapshot(edges)

	impls := []struct {
		name string
		p    Partition
	}{
		{"quickfind", NewQuickFind(n)},
		{"forest", NewForest(n)},
		{"balanced", NewBalancedForest(n)},
		{"compressed", New(n)},
	}

	var want []int
	for _, impl := range impls {
		for _, e := range edges {
			_, err := impl.p.Union(e[0], e[1])
			require.NoErrorf(t, err, "%s: Union(%d, %d)", impl.name, e[0], e[1])
		}
		got := testutils.PartitionOf(t, impl.p)
		if want == nil {
			want = got
			continue
		}
		assert.Truef(t, testutils.SamePartition(want, got),
			"%s disagrees with the reference partition", impl.name)
	}

	// 边表是共享夹具，任何实现都不准改它
	assert.Equal(t, input, edges)
}

func TestVariantsRejectOutOfRange(t *testing.T) {
	impls := []struct {
		name string
		p    Partition
	}{
		{"quickfind", NewQuickFind(3)},
		{"forest", NewForest(3)},
		{"balanced", NewBalancedForest(3)},
		{"compressed", New(3)},
	}

	for _, impl := range impls {
		t.Run(impl.name, func(t *testing.T) {
			_, err := impl.p.Find(3)
			assert.ErrorIs(t, err, ErrOutOfRange)
			_, err = impl.p.Union(0, -1)
			assert.ErrorIs(t, err, ErrOutOfRange)
			_, err = impl.p.Connected(-1, 2)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}
