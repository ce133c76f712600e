package unionfind

// Forest 是用 parent 数组表示的森林：parent[v] == -1 表示 v 是根
// 不做平衡也不做压缩，连续往一个方向合并时树会退化成链，
// 单次操作最坏 O(n)
type Forest struct {
	parent []int
}

// NewForest 初始化，所有节点都是孤立的根
func NewForest(n int) *Forest {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	return &Forest{parent: parent}
}

// Len 返回节点总数
func (f *Forest) Len() int {
	return len(f.parent)
}

// Find 沿 parent 链一路走到根，不改写存储
func (f *Forest) Find(v int) (int, error) {
	if err := checkIndex(v, len(f.parent)); err != nil {
		return 0, err
	}
	for f.parent[v] >= 0 {
		v = f.parent[v]
	}
	return v, nil
}

// Union 把 v 的根直接挂到 w 的根下，不看两棵树的大小
// 已在同一分量时必须跳过，否则根会挂到自己身上形成环
func (f *Forest) Union(v, w int) (bool, error) {
	rv, err := f.Find(v)
	if err != nil {
		return false, err
	}
	rw, err := f.Find(w)
	if err != nil {
		return false, err
	}
	if rv == rw {
		return false, nil
	}
	f.parent[rv] = rw
	return true, nil
}

// Connected 判断 v 和 w 是否在同一个分量里
func (f *Forest) Connected(v, w int) (bool, error) {
	rv, err := f.Find(v)
	if err != nil {
		return false, err
	}
	rw, err := f.Find(w)
	if err != nil {
		return false, err
	}
	return rv == rw, nil
}
