package concmd

import (
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"conn_tool/pkg/compstat"
	"conn_tool/pkg/graph"
	"conn_tool/pkg/logutil"
)

type benchOptions struct {
	nodes int
	edges int
	seed  int64
}

// bench 子命令: 对比四种算法在随机图上的耗时
func BenchCmd() *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "在随机图上对比各算法的构建和查询耗时",
		Long: `在随机图上对比各算法的构建和查询耗时
Examples:

goconn bench
goconn bench -n 100000 -m 200000 --seed 7
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", 10000, "节点数")
	cmd.Flags().IntVarP(&opts.edges, "edges", "m", 20000, "随机边数")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "随机种子")

	return cmd
}

func runBench(cmd *cobra.Command, opts *benchOptions) error {
	rng := rand.New(rand.NewSource(opts.seed))
	edges := make([]graph.Edge, opts.edges)
	for i := range edges {
		edges[i] = graph.Edge{V: rng.Intn(opts.nodes), W: rng.Intn(opts.nodes)}
	}
	logutil.Info("bench: n=%d m=%d seed=%d", opts.nodes, opts.edges, opts.seed)

	cmd.Printf("n=%s m=%s seed=%d\n",
		humanize.Comma(int64(opts.nodes)), humanize.Comma(int64(opts.edges)), opts.seed)
	for _, algo := range []Algo{AlgoQuickFind, AlgoForest, AlgoBalanced, AlgoCompressed} {
		p := NewPartition(algo, opts.nodes)

		start := time.Now()
		if err := graph.Fold(p, edges); err != nil {
			return wrapComputeErr(err)
		}
		buildCost := time.Since(start)

		start = time.Now()
		for v := 0; v < opts.nodes; v++ {
			if _, err := p.Find(v); err != nil {
				return wrapComputeErr(err)
			}
		}
		findCost := time.Since(start)

		idx, err := compstat.Build(p)
		if err != nil {
			return wrapComputeErr(err)
		}
		cmd.Printf("%-10s build=%-12s find=%-12s components=%s\n",
			algo, buildCost, findCost, humanize.Comma(int64(idx.Count())))
	}
	return nil
}
