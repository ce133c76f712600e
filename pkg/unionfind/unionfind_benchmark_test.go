package unionfind

import (
	"testing"

	"conn_tool/internal/testutils"
)

const (
	benchNodes = 2048
	benchEdges = 4096
	benchSeed  = 1
)

func benchEdgeSet(b *testing.B) [][2]int {
	b.Helper()
	return testutils.RandEdges(benchNodes, benchEdges, benchSeed)
}

func foldEdges(b *testing.B, p Partition, edges [][2]int) {
	b.Helper()
	for _, e := range edges {
		if _, err := p.Union(e[0], e[1]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDisjointSetBuild(b *testing.B) {
	edges := benchEdgeSet(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		foldEdges(b, New(benchNodes), edges)
	}
}

func BenchmarkBalancedForestBuild(b *testing.B) {
	edges := benchEdgeSet(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		foldEdges(b, NewBalancedForest(benchNodes), edges)
	}
}

func BenchmarkQuickFindBuild(b *testing.B) {
	edges := benchEdgeSet(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		foldEdges(b, NewQuickFind(benchNodes), edges)
	}
}

func BenchmarkDisjointSetFindAfterBuild(b *testing.B) {
	d := New(benchNodes)
	foldEdges(b, d, benchEdgeSet(b))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := 0; v < benchNodes; v++ {
			if _, err := d.Find(v); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkBalancedForestFindAfterBuild(b *testing.B) {
	bf := NewBalancedForest(benchNodes)
	foldEdges(b, bf, benchEdgeSet(b))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := 0; v < benchNodes; v++ {
			if _, err := bf.Find(v); err != nil {
				b.Fatal(err)
			}
		}
	}
}
