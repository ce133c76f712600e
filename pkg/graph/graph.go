package graph

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emirpasic/gods/sets/treeset"

	"conn_tool/pkg/toolutil"
	"conn_tool/pkg/unionfind"
)

// Edge 是一条无向边，两端都必须落在 [0, n) 内
type Edge struct {
	V int `json:"v"`
	W int `json:"w"`
}

// InferN 根据边集推断节点个数（最大下标 + 1），空边集返回 0
// 负数下标不参与推断，后续校验会把它拦下来
func InferN(edges []Edge) int {
	n := 0
	for _, e := range edges {
		n = toolutil.Max(n, e.V+1, e.W+1)
	}
	return n
}

// checkEdges 校验所有端点都在 [0, n) 内
func checkEdges(n int, edges []Edge) error {
	for _, e := range edges {
		if e.V < 0 || e.V >= n || e.W < 0 || e.W >= n {
			return fmt.Errorf("%w: edge (%d,%d), n=%d",
				unionfind.ErrOutOfRange, e.V, e.W, n)
		}
	}
	return nil
}

// BuildNeighbors 为每个节点收集直接相邻的节点集合
// 重复边靠集合语义自动去重；自环会让节点成为自己的邻居
func BuildNeighbors(n int, edges []Edge) ([]mapset.Set[int], error) {
	if err := checkEdges(n, edges); err != nil {
		return nil, err
	}
	neighbors := make([]mapset.Set[int], n)
	for i := range neighbors {
		neighbors[i] = mapset.NewThreadUnsafeSet[int]()
	}
	for _, e := range edges {
		neighbors[e.V].Add(e.W)
		neighbors[e.W].Add(e.V)
	}
	return neighbors, nil
}

// Reachable 从 start 出发沿边扩张，返回所有可达节点（含 start 自身）
// 纯遍历实现，不碰并查集，两种算法可以互相对账
// seen 记录已发现的节点，frontier 是待扩张的工作集
func Reachable(start int, neighbors []mapset.Set[int]) (mapset.Set[int], error) {
	if err := checkIndexN(start, len(neighbors)); err != nil {
		return nil, err
	}
	seen := mapset.NewThreadUnsafeSet(start)
	frontier := mapset.NewThreadUnsafeSet(start)
	for frontier.Cardinality() > 0 {
		v, _ := frontier.Pop()
		neighbors[v].Each(func(w int) bool {
			if !seen.Contains(w) {
				seen.Add(w)
				frontier.Add(w)
			}
			return false
		})
	}
	return seen, nil
}

func checkIndexN(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: v=%d, n=%d", unionfind.ErrOutOfRange, v, n)
	}
	return nil
}

// Fold 把边集按顺序全部并入任意一种划分实现
// 任何一条边越界都会原样返回 ErrOutOfRange，已并入的边保持有效
func Fold(p unionfind.Partition, edges []Edge) error {
	for _, e := range edges {
		if _, err := p.Union(e.V, e.W); err != nil {
			return err
		}
	}
	return nil
}

// Components 是组合入口：建 n 个节点的并查集并把所有边灌进去
func Components(n int, edges []Edge) (*unionfind.DisjointSet, error) {
	ds := unionfind.New(n)
	if err := Fold(ds, edges); err != nil {
		return nil, err
	}
	return ds, nil
}

// Groups 按分量聚合节点：分量内升序，分量之间按最小成员升序
// 分量内的有序性交给 gods 的 treeset 维护
func Groups(p unionfind.Partition) ([][]int, error) {
	byRoot := make(map[int]*treeset.Set)
	for v := 0; v < p.Len(); v++ {
		root, err := p.Find(v)
		if err != nil {
			return nil, err
		}
		members, ok := byRoot[root]
		if !ok {
			members = treeset.NewWithIntComparator()
			byRoot[root] = members
		}
		members.Add(v)
	}

	groups := make([][]int, 0, len(byRoot))
	for _, members := range byRoot {
		group := make([]int, 0, members.Size())
		for _, v := range members.Values() {
			group = append(group, v.(int))
		}
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})
	return groups, nil
}

// Sorted 把节点集合导出成升序切片，方便打印和断言
func Sorted(s mapset.Set[int]) []int {
	out := s.ToSlice()
	sort.Ints(out)
	return out
}
