package graph_test

import (
	"errors"
	"reflect"
	"testing"

	"conn_tool/internal/testutils"
	"conn_tool/pkg/graph"
	"conn_tool/pkg/unionfind"
)

func toEdges(pairs [][2]int) []graph.Edge {
	edges := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge{V: p[0], W: p[1]}
	}
	return edges
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		edges      [][2]int
		wantGroups [][]int
	}{
		{
			name:       "no edges keeps singletons",
			n:          5,
			edges:      nil,
			wantGroups: [][]int{{0}, {1}, {2}, {3}, {4}},
		},
		{
			name:       "single edge merges two nodes",
			n:          5,
			edges:      [][2]int{{0, 1}},
			wantGroups: [][]int{{0, 1}, {2}, {3}, {4}},
		},
		{
			name:       "duplicate edges and self loops change nothing",
			n:          5,
			edges:      [][2]int{{0, 1}, {1, 0}, {0, 1}, {2, 2}},
			wantGroups: [][]int{{0, 1}, {2}, {3}, {4}},
		},
		{
			name:       "two components",
			n:          5,
			edges:      [][2]int{{0, 1}, {2, 1}, {3, 4}},
			wantGroups: [][]int{{0, 1, 2}, {3, 4}},
		},
		{
			name:       "chain collapses into one component",
			n:          5,
			edges:      [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
			wantGroups: [][]int{{0, 1, 2, 3, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := graph.Components(tt.n, toEdges(tt.edges))
			if err != nil {
				t.Fatalf("Components failed: %v", err)
			}

			groups, err := graph.Groups(ds)
			if err != nil {
				t.Fatalf("Groups failed: %v", err)
			}
			if !reflect.DeepEqual(groups, tt.wantGroups) {
				t.Errorf("Groups = %v, want %v", groups, tt.wantGroups)
			}
			if ds.Count() != len(tt.wantGroups) {
				t.Errorf("Count = %d, want %d", ds.Count(), len(tt.wantGroups))
			}
		})
	}
}

func TestComponentsRejectsBadEdges(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"negative endpoint", 3, [][2]int{{0, -1}}},
		{"endpoint beyond n", 3, [][2]int{{0, 3}}},
		{"valid prefix then bad edge", 3, [][2]int{{0, 1}, {5, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graph.Components(tt.n, toEdges(tt.edges))
			if !errors.Is(err, unionfind.ErrOutOfRange) {
				t.Errorf("expected ErrOutOfRange, got %v", err)
			}
		})
	}
}

func TestBuildNeighbors(t *testing.T) {
	edges := toEdges([][2]int{{0, 1}, {1, 0}, {1, 2}, {3, 3}})
	neighbors, err := graph.BuildNeighbors(5, edges)
	if err != nil {
		t.Fatalf("BuildNeighbors failed: %v", err)
	}

	// 重复边去重，自环让节点邻接自己，孤立节点得到空集合
	wants := [][]int{
		{1},
		{0, 2},
		{1},
		{3},
		{},
	}
	for v, want := range wants {
		got := graph.Sorted(neighbors[v])
		if !reflect.DeepEqual(got, want) {
			t.Errorf("neighbors[%d] = %v, want %v", v, got, want)
		}
	}

	if _, err := graph.BuildNeighbors(2, toEdges([][2]int{{0, 2}})); !errors.Is(err, unionfind.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for endpoint 2 with n=2, got %v", err)
	}
}

func TestReachable(t *testing.T) {
	edges := toEdges([][2]int{{0, 1}, {2, 1}, {3, 4}})
	neighbors, err := graph.BuildNeighbors(6, edges)
	if err != nil {
		t.Fatalf("BuildNeighbors failed: %v", err)
	}

	tests := []struct {
		start int
		want  []int
	}{
		{0, []int{0, 1, 2}},
		{1, []int{0, 1, 2}},
		{3, []int{3, 4}},
		{5, []int{5}}, // 孤立节点只能到自己
	}
	for _, tt := range tests {
		got, err := graph.Reachable(tt.start, neighbors)
		if err != nil {
			t.Fatalf("Reachable(%d) failed: %v", tt.start, err)
		}
		if !reflect.DeepEqual(graph.Sorted(got), tt.want) {
			t.Errorf("Reachable(%d) = %v, want %v", tt.start, graph.Sorted(got), tt.want)
		}
	}

	if _, err := graph.Reachable(6, neighbors); !errors.Is(err, unionfind.ErrOutOfRange) {
		t.Errorf("Reachable(6): expected ErrOutOfRange, got %v", err)
	}
	if _, err := graph.Reachable(-1, neighbors); !errors.Is(err, unionfind.ErrOutOfRange) {
		t.Errorf("Reachable(-1): expected ErrOutOfRange, got %v", err)
	}
}

func TestReachableMatchesComponents(t *testing.T) {
	// 两条完全独立的算法路径必须给出同一个划分：
	// 并查集折叠边集 vs 邻接表上做图遍历
	const (
		n    = 40
		m    = 60
		seed = 11
	)
	pairs := testutils.RandEdges(n, m, seed)
	input := testutils.Snapshot(pairs)
	edges := toEdges(pairs)

	ds, err := graph.Components(n, edges)
	if err != nil {
		t.Fatalf("Components failed: %v", err)
	}
	neighbors, err := graph.BuildNeighbors(n, edges)
	if err != nil {
		t.Fatalf("BuildNeighbors failed: %v", err)
	}

	for v := 0; v < n; v++ {
		reach, err := graph.Reachable(v, neighbors)
		if err != nil {
			t.Fatalf("Reachable(%d) failed: %v", v, err)
		}
		size, err := ds.SizeOf(v)
		if err != nil {
			t.Fatalf("SizeOf(%d) failed: %v", v, err)
		}
		if reach.Cardinality() != size {
			t.Errorf("node %d: reachable set has %d nodes, component size is %d",
				v, reach.Cardinality(), size)
		}
		for _, w := range graph.Sorted(reach) {
			ok, err := ds.Connected(v, w)
			if err != nil {
				t.Fatalf("Connected(%d, %d) failed: %v", v, w, err)
			}
			if !ok {
				t.Errorf("node %d reaches %d by traversal but union-find disagrees", v, w)
			}
		}
	}

	// 夹具不许被改
	if !reflect.DeepEqual(input, pairs) {
		t.Errorf("edge fixture was mutated")
	}
}

func TestGroupsOrdering(t *testing.T) {
	// 分量间按最小成员升序，分量内升序
	ds, err := graph.Components(6, toEdges([][2]int{{5, 3}, {4, 0}}))
	if err != nil {
		t.Fatalf("Components failed: %v", err)
	}
	groups, err := graph.Groups(ds)
	if err != nil {
		t.Fatalf("Groups failed: %v", err)
	}
	want := [][]int{{0, 4}, {1}, {2}, {3, 5}}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("Groups = %v, want %v", groups, want)
	}
}

func TestInferN(t *testing.T) {
	if n := graph.InferN(nil); n != 0 {
		t.Errorf("InferN(nil) = %d, want 0", n)
	}
	if n := graph.InferN(toEdges([][2]int{{0, 1}, {7, 2}})); n != 8 {
		t.Errorf("InferN = %d, want 8", n)
	}
}
