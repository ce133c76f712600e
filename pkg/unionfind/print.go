package unionfind

import (
	"fmt"
	"sort"

	"conn_tool/pkg/treeprinter"
)

// forestView 是渲染需要的最小视图，包内的森林型实现都满足
// parentOf 返回父节点下标，根节点返回 ok == false
type forestView interface {
	Len() int
	parentOf(v int) (int, bool)
}

func (d *DisjointSet) parentOf(v int) (int, bool) {
	p := d.cells[v].parent
	return p, p != v
}

func (b *BalancedForest) parentOf(v int) (int, bool) {
	p := b.cells[v].parent
	return p, p != v
}

func (f *Forest) parentOf(v int) (int, bool) {
	p := f.parent[v]
	return p, p >= 0
}

// rootSize 由记录分量大小的实现额外提供，渲染时标在根上
type sizedView interface {
	rootSize(v int) int
}

func (d *DisjointSet) rootSize(v int) int {
	return d.cells[v].size
}

func (b *BalancedForest) rootSize(v int) int {
	return b.cells[v].size
}

// FormatForest 把森林渲染成文本，每棵树一段，子节点按下标升序
// style: 0 = ascii, 1 = unicode
func FormatForest(f forestView, style int) string {
	n := f.Len()
	children := make([][]int, n)
	var roots []int
	for v := 0; v < n; v++ {
		if p, ok := f.parentOf(v); ok {
			children[p] = append(children[p], v)
		} else {
			roots = append(roots, v)
		}
	}

	sized, hasSize := f.(sizedView)

	var build func(v int) *treeprinter.MultiNode
	build = func(v int) *treeprinter.MultiNode {
		node := &treeprinter.MultiNode{Data: v}
		sort.Ints(children[v])
		for _, c := range children[v] {
			node.Children = append(node.Children, build(c))
		}
		return node
	}

	nodes := make([]*treeprinter.MultiNode, 0, len(roots))
	for _, r := range roots {
		nodes = append(nodes, build(r))
	}

	return treeprinter.PrintForest(treeprinter.ForestPrinter{
		Roots: nodes,
		Style: style,
		FormatFn: func(node *treeprinter.MultiNode) string {
			v := node.Data.(int)
			if _, isChild := f.parentOf(v); !isChild && hasSize {
				return fmt.Sprintf("%d (size=%d)", v, sized.rootSize(v))
			}
			return fmt.Sprintf("%d", v)
		},
	})
}

// DumpTree 渲染当前森林，根上标分量大小
func (d *DisjointSet) DumpTree(style int) string {
	return FormatForest(d, style)
}

// DumpTree 渲染当前森林，根上标分量大小
func (b *BalancedForest) DumpTree(style int) string {
	return FormatForest(b, style)
}

// DumpTree 渲染当前森林
func (f *Forest) DumpTree(style int) string {
	return FormatForest(f, style)
}
