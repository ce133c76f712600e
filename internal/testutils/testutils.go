package testutils

import (
	"encoding/json"
	"math/rand"
	"os"
	"reflect"
	"testing"

	"github.com/mohae/deepcopy"
)

// 工具输出的 result.json 的公共头
type ResultCommon struct {
	Action    string `json:"Action"`
	ErrorCode string `json:"ErrorCode"`
	ErrorMsg  string `json:"ErrorMsg"`
}

// 连通分量计算的完整输出文档
type ResultDoc struct {
	ResultCommon
	N          int      `json:"N"`
	Count      int      `json:"Count"`
	Components [][]int  `json:"Components"`
	Labels     []string `json:"Labels,omitempty"`
}

// 读取 JSON 文件的泛型函数
func ReadJSONFile[T any](filePath string) (*T, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var result T
	err = json.Unmarshal(file, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// 比较 JSON 数据的泛型函数
func CompareJSON[T any](actual, expected *T) bool {
	return reflect.DeepEqual(actual, expected)
}

// Partitioner 是归一化需要的最小操作集合
type Partitioner interface {
	Len() int
	Find(v int) (int, error)
}

// PartitionOf 把划分归一化成"每个节点映射到所在分量的最小下标"
// 不同实现、不同合并顺序产出的代表元可能不同，归一化之后可以直接比较
func PartitionOf(t *testing.T, p Partitioner) []int {
	t.Helper()
	n := p.Len()
	minOf := make(map[int]int)
	roots := make([]int, n)
	for v := 0; v < n; v++ {
		root, err := p.Find(v)
		if err != nil {
			t.Fatalf("Find(%d) 失败: %v", v, err)
		}
		roots[v] = root
		if m, ok := minOf[root]; !ok || v < m {
			minOf[root] = v
		}
	}
	out := make([]int, n)
	for v := 0; v < n; v++ {
		out[v] = minOf[roots[v]]
	}
	return out
}

// SamePartition 判断两个归一化划分是否一致
func SamePartition(a, b []int) bool {
	return reflect.DeepEqual(a, b)
}

// RandEdges 生成 m 条随机边，端点均匀落在 [0, n)
// 种子固定，同样的参数每次生成同样的边表
func RandEdges(n, m int, seed int64) [][2]int {
	r := rand.New(rand.NewSource(seed))
	edges := make([][2]int, m)
	for i := range edges {
		edges[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	return edges
}

// Snapshot 深拷贝一份测试夹具，改动原对象不影响快照
// 只复制导出字段，适用于边表这类纯数据对象
func Snapshot[T any](v T) T {
	return deepcopy.Copy(v).(T)
}
