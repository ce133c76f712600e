package unionfind

// QuickFind 是最朴素的连通分量实现：comp[v] 直接存节点的代表元
// Find 是一次数组读取，Union 要整表扫描改写，单次合并 O(n)
// 只适合小规模数据或当其它实现的对照组
type QuickFind struct {
	comp []int
}

// NewQuickFind 初始化，每个节点的代表元是它自己
func NewQuickFind(n int) *QuickFind {
	comp := make([]int, n)
	for i := range comp {
		comp[i] = i
	}
	return &QuickFind{comp: comp}
}

// Len 返回节点总数
func (q *QuickFind) Len() int {
	return len(q.comp)
}

// Find 直接读出代表元，不改写任何存储
func (q *QuickFind) Find(v int) (int, error) {
	if err := checkIndex(v, len(q.comp)); err != nil {
		return 0, err
	}
	return q.comp[v], nil
}

// Union 把 w 所在分量的所有节点改挂到 v 的代表元下
func (q *QuickFind) Union(v, w int) (bool, error) {
	if err := checkIndex(v, len(q.comp)); err != nil {
		return false, err
	}
	if err := checkIndex(w, len(q.comp)); err != nil {
		return false, err
	}
	cv, cw := q.comp[v], q.comp[w]
	if cv == cw {
		return false, nil
	}
	for i, c := range q.comp {
		if c == cw {
			q.comp[i] = cv
		}
	}
	return true, nil
}

// Connected 判断 v 和 w 是否在同一个分量里
func (q *QuickFind) Connected(v, w int) (bool, error) {
	if err := checkIndex(v, len(q.comp)); err != nil {
		return false, err
	}
	if err := checkIndex(w, len(q.comp)); err != nil {
		return false, err
	}
	return q.comp[v] == q.comp[w], nil
}
