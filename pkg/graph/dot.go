package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"conn_tool/pkg/unionfind"
)

// componentPalette 按分量序号轮换的填充色（graphviz 颜色名）
var componentPalette = []string{
	"lightblue", "palegreen", "lightsalmon", "plum",
	"khaki", "lightgray", "aquamarine", "mistyrose",
}

// unquoteName 去掉 DOT 里带引号节点名的外层引号
func unquoteName(name string) string {
	if len(name) >= 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`) {
		if unquoted, err := strconv.Unquote(name); err == nil {
			return unquoted
		}
	}
	return name
}

// EdgesFromDOT 解析 DOT 文本并把节点名驻留成稠密下标：
// 先按节点声明顺序编号，只在边里出现的名字按首次出现顺序补号
// 返回节点数、边集和 下标 -> 节点名 的表
func EdgesFromDOT(data []byte) (int, []Edge, []string, error) {
	graphAst, err := gographviz.Parse(data)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("解析 DOT 失败: %w", err)
	}
	g := gographviz.NewGraph()
	if err := gographviz.Analyse(graphAst, g); err != nil {
		return 0, nil, nil, fmt.Errorf("分析 DOT 图失败: %w", err)
	}

	ids := make(map[string]int)
	var names []string
	intern := func(raw string) int {
		name := unquoteName(raw)
		if id, ok := ids[name]; ok {
			return id
		}
		id := len(names)
		ids[name] = id
		names = append(names, name)
		return id
	}

	for _, node := range g.Nodes.Nodes {
		intern(node.Name)
	}
	var edges []Edge
	for _, e := range g.Edges.Edges {
		edges = append(edges, Edge{V: intern(e.Src), W: intern(e.Dst)})
	}
	return len(names), edges, names, nil
}

// ToDOT 把划分导出成无向 DOT 图：原始边原样保留，节点按所在
// 分量着色并标上 group，labels 不为空时节点显示外部标签
func ToDOT(p unionfind.Partition, edges []Edge, labels []string) (string, error) {
	if err := checkEdges(p.Len(), edges); err != nil {
		return "", err
	}
	groups, err := Groups(p)
	if err != nil {
		return "", err
	}
	comp := make(map[int]int, p.Len())
	for ci, members := range groups {
		for _, v := range members {
			comp[v] = ci
		}
	}

	g := gographviz.NewGraph()
	g.SetName("components")
	g.SetDir(false)

	nodeID := func(v int) string {
		return fmt.Sprintf("n%d", v)
	}
	for v := 0; v < p.Len(); v++ {
		attrs := map[string]string{
			"style":     "filled",
			"fillcolor": componentPalette[comp[v]%len(componentPalette)],
			"group":     fmt.Sprintf("c%d", comp[v]),
		}
		if labels != nil {
			attrs["label"] = strconv.Quote(labels[v])
		}
		if err := g.AddNode("components", nodeID(v), attrs); err != nil {
			return "", fmt.Errorf("写入节点 %d 失败: %w", v, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(nodeID(e.V), nodeID(e.W), false, nil); err != nil {
			return "", fmt.Errorf("写入边 (%d,%d) 失败: %w", e.V, e.W, err)
		}
	}
	return g.String(), nil
}
