package unionfind

// BalancedForest 只按大小平衡、不做路径压缩的森林
// 小树总是挂到大树下，任何一棵树的高度不超过 ⌊log2(n)⌋ + 1，
// 单次操作最坏 O(log n)。想要摊还常数级就用 DisjointSet
type BalancedForest struct {
	cells []cell
}

// NewBalancedForest 初始化，每个节点自成一个大小为 1 的分量
func NewBalancedForest(n int) *BalancedForest {
	cells := make([]cell, n)
	for i := range cells {
		cells[i] = cell{parent: i, size: 1}
	}
	return &BalancedForest{cells: cells}
}

// Len 返回节点总数
func (b *BalancedForest) Len() int {
	return len(b.cells)
}

// Find 沿 parent 链走到根，不改写存储
func (b *BalancedForest) Find(v int) (int, error) {
	if err := checkIndex(v, len(b.cells)); err != nil {
		return 0, err
	}
	for b.cells[v].parent != v {
		v = b.cells[v].parent
	}
	return v, nil
}

// Union 按大小合并：小树挂到大树的根下，一样大时 v 的根保留
func (b *BalancedForest) Union(v, w int) (bool, error) {
	rv, err := b.Find(v)
	if err != nil {
		return false, err
	}
	rw, err := b.Find(w)
	if err != nil {
		return false, err
	}
	if rv == rw {
		return false, nil
	}
	if b.cells[rv].size < b.cells[rw].size {
		rv, rw = rw, rv
	}
	b.cells[rv].size += b.cells[rw].size
	b.cells[rw].parent = rv
	return true, nil
}

// Connected 判断 v 和 w 是否在同一个分量里
func (b *BalancedForest) Connected(v, w int) (bool, error) {
	rv, err := b.Find(v)
	if err != nil {
		return false, err
	}
	rw, err := b.Find(w)
	if err != nil {
		return false, err
	}
	return rv == rw, nil
}

// SizeOf 返回 v 所在分量的节点数
func (b *BalancedForest) SizeOf(v int) (int, error) {
	root, err := b.Find(v)
	if err != nil {
		return 0, err
	}
	return b.cells[root].size, nil
}
