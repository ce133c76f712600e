package labelset

import (
	"fmt"

	"github.com/armon/go-radix"

	"conn_tool/pkg/unionfind"
)

// LabelSet 把外部的字符串标签驻留成稠密的整数下标（0 起，按首次
// 出现的顺序递增），下标可以直接当并查集的节点编号用
// 标签 -> 下标 存在 radix 树里，顺带得到前缀检索能力
type LabelSet struct {
	tree  *radix.Tree
	names []string
}

// New 创建空的标签集
func New() *LabelSet {
	return &LabelSet{tree: radix.New()}
}

// Add 驻留一个标签并返回它的下标，重复加入返回已有下标
func (ls *LabelSet) Add(label string) int {
	if v, ok := ls.tree.Get(label); ok {
		return v.(int)
	}
	id := len(ls.names)
	ls.tree.Insert(label, id)
	ls.names = append(ls.names, label)
	return id
}

// ID 查询标签对应的下标
func (ls *LabelSet) ID(label string) (int, bool) {
	v, ok := ls.tree.Get(label)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// Label 按下标取回标签
func (ls *LabelSet) Label(id int) (string, error) {
	if id < 0 || id >= len(ls.names) {
		return "", fmt.Errorf("%w: id=%d, n=%d", unionfind.ErrOutOfRange, id, len(ls.names))
	}
	return ls.names[id], nil
}

// Len 返回已驻留的标签个数
func (ls *LabelSet) Len() int {
	return len(ls.names)
}

// Labels 返回按下标排列的标签表（副本）
func (ls *LabelSet) Labels() []string {
	out := make([]string, len(ls.names))
	copy(out, ls.names)
	return out
}

// WithPrefix 返回带指定前缀的所有标签，radix 树天然按字典序走
func (ls *LabelSet) WithPrefix(prefix string) []string {
	var out []string
	ls.tree.WalkPrefix(prefix, func(key string, _ any) bool {
		out = append(out, key)
		return false
	})
	return out
}
