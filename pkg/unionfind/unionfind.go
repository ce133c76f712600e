package unionfind

import (
	"errors"
	"fmt"
)

// ErrOutOfRange 表示节点下标不在 [0, n) 内
// 所有带下标的操作都先做范围校验，错误会在改写任何存储之前返回
var ErrOutOfRange = errors.New("node index out of range")

// Partition 是几种连通分量实现共有的操作集合
// Len 返回节点总数，Find 返回代表元，Union 合并两个分量并报告
// 是否真的发生了合并，Connected 判断两个节点是否同属一个分量
type Partition interface {
	Len() int
	Find(v int) (int, error)
	Union(v, w int) (bool, error)
	Connected(v, w int) (bool, error)
}

// checkIndex 校验下标范围，包内各实现共用
func checkIndex(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: v=%d, n=%d", ErrOutOfRange, v, n)
	}
	return nil
}

// cell 是单个节点的存储单元：parent == 自身下标时该节点是根，
// 此时 size 是整棵树的节点数；非根节点只有 parent 有意义
// 用两个显式字段代替"负数存规模、非负存父节点"的符号位编码，
// 读写不再需要符号翻转，出错面小，渐进复杂度不变
type cell struct {
	parent int
	size   int
}

// DisjointSet 是带按大小合并和路径压缩的并查集，
// 任意 Union/Find 混合序列的摊还代价接近常数（反阿克曼函数级）
//
// 注意 Find 在逻辑上是查询，但物理上会改写内部存储（路径压缩），
// 它代表的划分不变。需要并发访问时由调用方自己加锁，
// 结构本身不做任何同步
type DisjointSet struct {
	cells []cell
	count int // 当前分量个数，Union 成功时减一
}

// New 创建 n 个节点的并查集，初始时每个节点自成一个大小为 1 的分量
// n == 0 合法，此时任何带下标的操作都返回 ErrOutOfRange
func New(n int) *DisjointSet {
	cells := make([]cell, n)
	for i := range cells {
		cells[i] = cell{parent: i, size: 1}
	}
	return &DisjointSet{cells: cells, count: n}
}

// Len 返回节点总数
func (d *DisjointSet) Len() int {
	return len(d.cells)
}

// Count 返回当前的分量个数
func (d *DisjointSet) Count() int {
	return d.count
}

// Find 返回 v 所在分量的代表元（根下标），带两遍式路径压缩：
// 第一遍沿 parent 链走到根，第二遍把路径上的每个节点改挂到根下
// 压缩后整条路径长度变成 1，紧跟着的第二次 Find 不会再改写存储
func (d *DisjointSet) Find(v int) (int, error) {
	if err := checkIndex(v, len(d.cells)); err != nil {
		return 0, err
	}
	return d.findRoot(v), nil
}

// findRoot 是免校验版本，调用方保证 v 合法
func (d *DisjointSet) findRoot(v int) int {
	root := v
	for d.cells[root].parent != root {
		root = d.cells[root].parent
	}
	for v != root {
		v, d.cells[v].parent = d.cells[v].parent, root
	}
	return root
}

// Union 合并 v 和 w 所在的两个分量，返回是否真的发生了合并
// （已在同一分量时不做任何事，返回 false）
// 按大小合并：节点少的树挂到节点多的树的根下；两边一样大时
// v 的根保留，w 的根降级成子节点
func (d *DisjointSet) Union(v, w int) (bool, error) {
	if err := checkIndex(v, len(d.cells)); err != nil {
		return false, err
	}
	if err := checkIndex(w, len(d.cells)); err != nil {
		return false, err
	}
	rv, rw := d.findRoot(v), d.findRoot(w)
	if rv == rw {
		return false, nil
	}
	if d.cells[rv].size < d.cells[rw].size {
		rv, rw = rw, rv
	}
	d.cells[rv].size += d.cells[rw].size
	d.cells[rw].parent = rv
	d.count--
	return true, nil
}

// Connected 判断 v 和 w 是否在同一个分量里
// 两个下标都校验完才会触碰存储，非法调用不会留下半截压缩
func (d *DisjointSet) Connected(v, w int) (bool, error) {
	if err := checkIndex(v, len(d.cells)); err != nil {
		return false, err
	}
	if err := checkIndex(w, len(d.cells)); err != nil {
		return false, err
	}
	return d.findRoot(v) == d.findRoot(w), nil
}

// SizeOf 返回 v 所在分量的节点数
func (d *DisjointSet) SizeOf(v int) (int, error) {
	root, err := d.Find(v)
	if err != nil {
		return 0, err
	}
	return d.cells[root].size, nil
}

// Roots 返回当前所有代表元的下标，升序
func (d *DisjointSet) Roots() []int {
	roots := make([]int, 0, d.count)
	for i := range d.cells {
		if d.cells[i].parent == i {
			roots = append(roots, i)
		}
	}
	return roots
}
