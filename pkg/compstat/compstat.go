package compstat

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/btree"

	"conn_tool/pkg/toolutil"
	"conn_tool/pkg/unionfind"
)

// Group 是一个连通分量的统计条目
type Group struct {
	Root int // 当前代表元，后续合并之后可能失效
	Size int // 分量节点数
}

// Less 先按大小、再按代表元反向排，这样 Descend 出来的顺序是
// 大小降序、同大小时代表元升序
func (g Group) Less(than btree.Item) bool {
	o := than.(Group)
	if g.Size != o.Size {
		return g.Size < o.Size
	}
	return g.Root > o.Root
}

// Index 是按分量大小组织的有序索引，Build 之后只读
type Index struct {
	tree *btree.BTree
	n    int
}

// Build 扫描划分里的全部节点，按代表元聚合出每个分量的大小
func Build(p unionfind.Partition) (*Index, error) {
	sizes := make(map[int]int)
	for v := 0; v < p.Len(); v++ {
		root, err := p.Find(v)
		if err != nil {
			return nil, err
		}
		sizes[root]++
	}

	tree := btree.New(2)
	for root, size := range sizes {
		tree.ReplaceOrInsert(Group{Root: root, Size: size})
	}
	return &Index{tree: tree, n: p.Len()}, nil
}

// Count 返回分量个数
func (idx *Index) Count() int {
	return idx.tree.Len()
}

// Nodes 返回统计时的节点总数
func (idx *Index) Nodes() int {
	return idx.n
}

// TopK 返回最大的 k 个分量，大小降序，同大小按代表元升序
// k 超过分量总数时返回全部
func (idx *Index) TopK(k int) []Group {
	k = toolutil.Min(k, idx.tree.Len())
	if k <= 0 {
		return nil
	}
	out := make([]Group, 0, k)
	idx.tree.Descend(func(item btree.Item) bool {
		out = append(out, item.(Group))
		return len(out) < k
	})
	return out
}

// Summary 生成一段人读的统计摘要，大数带千分位
func (idx *Index) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "nodes=%s components=%s\n",
		humanize.Comma(int64(idx.n)), humanize.Comma(int64(idx.Count())))
	for i, g := range idx.TopK(3) {
		fmt.Fprintf(&b, "  top%d: root=%d size=%s\n",
			i+1, g.Root, humanize.Comma(int64(g.Size)))
	}
	return b.String()
}
