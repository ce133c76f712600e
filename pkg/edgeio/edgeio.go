package edgeio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"conn_tool/pkg/graph"
	"conn_tool/pkg/labelset"
	"conn_tool/pkg/logutil"
)

// EdgeList 是一次输入解析的结果
// 纯下标输入时 Labels 为 nil；标签输入（JSON links 或 DOT）时
// Labels[i] 是节点 i 的外部名字
type EdgeList struct {
	N      int
	Edges  []graph.Edge
	Labels []string
}

// ReadEdgesJSON 解析 JSON 边表，两种形式二选一：
//
//	{"n": 5, "edges": [[0, 1], [2, 1], [3, 4]]}
//	{"links": [["web-01", "web-02"], ["db-01", "web-02"]]}
//
// 下标形式里 n 可省略，按最大下标 + 1 推断
// 标签形式按首次出现的顺序给标签编号，n 就是标签个数
func ReadEdgesJSON(data []byte) (*EdgeList, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("输入不是合法的 JSON")
	}
	doc := gjson.ParseBytes(data)

	if links := doc.Get("links"); links.Exists() {
		if !links.IsArray() {
			return nil, fmt.Errorf("links 字段必须是数组")
		}
		return readLabeledLinks(links)
	}

	edgesVal := doc.Get("edges")
	if !edgesVal.Exists() {
		return nil, fmt.Errorf("JSON 里既没有 edges 也没有 links 字段")
	}
	if !edgesVal.IsArray() {
		return nil, fmt.Errorf("edges 字段必须是数组")
	}

	var edges []graph.Edge
	var parseErr error
	edgesVal.ForEach(func(_, pair gjson.Result) bool {
		v, w, err := intPair(pair)
		if err != nil {
			parseErr = err
			return false
		}
		edges = append(edges, graph.Edge{V: v, W: w})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	n := graph.InferN(edges)
	if nVal := doc.Get("n"); nVal.Exists() {
		if nVal.Type != gjson.Number {
			return nil, fmt.Errorf("n 字段必须是数字")
		}
		explicit := int(nVal.Int())
		if explicit < n {
			return nil, fmt.Errorf("n=%d 小于边里出现的最大下标+1 (%d)", explicit, n)
		}
		n = explicit
	}

	logutil.Debug("JSON 边表: n=%d edges=%d", n, len(edges))
	return &EdgeList{N: n, Edges: edges}, nil
}

// intPair 把形如 [0, 1] 的 JSON 数组拆成两个整数下标
func intPair(pair gjson.Result) (int, int, error) {
	arr := pair.Array()
	if len(arr) != 2 {
		return 0, 0, fmt.Errorf("每条边必须是两个下标: %s", pair.Raw)
	}
	out := [2]int{}
	for i, item := range arr {
		if item.Type != gjson.Number {
			return 0, 0, fmt.Errorf("边的端点必须是数字: %s", pair.Raw)
		}
		if float64(item.Int()) != item.Float() {
			return 0, 0, fmt.Errorf("边的端点必须是整数: %s", pair.Raw)
		}
		out[i] = int(item.Int())
	}
	return out[0], out[1], nil
}

// readLabeledLinks 解析标签形式，标签驻留交给 labelset
func readLabeledLinks(links gjson.Result) (*EdgeList, error) {
	ls := labelset.New()
	var edges []graph.Edge
	var parseErr error
	links.ForEach(func(_, pair gjson.Result) bool {
		arr := pair.Array()
		if len(arr) != 2 || arr[0].Type != gjson.String || arr[1].Type != gjson.String {
			parseErr = fmt.Errorf("links 的每一项必须是两个字符串: %s", pair.Raw)
			return false
		}
		edges = append(edges, graph.Edge{
			V: ls.Add(arr[0].String()),
			W: ls.Add(arr[1].String()),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	logutil.Debug("标签边表: n=%d edges=%d", ls.Len(), len(edges))
	return &EdgeList{N: ls.Len(), Edges: edges, Labels: ls.Labels()}, nil
}

// ReadEdgesText 读纯文本边表：每行两个下标，# 开头是注释，空行跳过
// 首行允许写 "n <N>" 显式声明节点数（空图也能表达出来），
// 不声明就按最大下标 + 1 推断
func ReadEdgesText(r io.Reader) (*EdgeList, error) {
	sc := bufio.NewScanner(r)
	n := -1
	var edges []graph.Edge
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == "n" && n < 0 && len(edges) == 0 {
			declared, err := strconv.Atoi(fields[1])
			if err != nil || declared < 0 {
				return nil, fmt.Errorf("第 %d 行: 非法的节点数声明: %q", lineNo, line)
			}
			n = declared
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("第 %d 行: 每行需要两个下标: %q", lineNo, line)
		}
		v, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: 非法下标 %q", lineNo, fields[0])
		}
		w, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: 非法下标 %q", lineNo, fields[1])
		}
		edges = append(edges, graph.Edge{V: v, W: w})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	inferred := graph.InferN(edges)
	if n < 0 {
		n = inferred
	} else if n < inferred {
		return nil, fmt.Errorf("声明的 n=%d 小于边里出现的最大下标+1 (%d)", n, inferred)
	}

	logutil.Debug("文本边表: n=%d edges=%d", n, len(edges))
	return &EdgeList{N: n, Edges: edges}, nil
}

// ReadEdgesFile 按扩展名分发解析器：.json / .dot / .gv，其余按纯文本
func ReadEdgesFile(path string) (*EdgeList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadEdgesJSON(data)
	case ".dot", ".gv":
		n, edges, names, err := graph.EdgesFromDOT(data)
		if err != nil {
			return nil, err
		}
		return &EdgeList{N: n, Edges: edges, Labels: names}, nil
	default:
		return ReadEdgesText(bytes.NewReader(data))
	}
}
