package concmd

import (
	"github.com/spf13/cobra"

	"conn_tool/pkg/graph"
	"conn_tool/pkg/logutil"
)

type connectedOptions struct {
	input string
	algo  Algo
}

// connected 子命令: 判断两个节点是否连通
func ConnectedCmd() *cobra.Command {
	opts := &connectedOptions{algo: AlgoCompressed}

	cmd := &cobra.Command{
		Use:   "connected <node> <node>",
		Short: "判断两个节点是否在同一连通分量",
		Long: `判断两个节点是否在同一连通分量, 打印 true 或 false
Examples:

goconn connected 0 4 -i edges.json
goconn connected web-01 db-01 -i hosts.dot
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnected(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "输入文件(.json/.dot/.gv, 其余按纯文本)")
	cmd.Flags().VarP(&opts.algo, "algo", "a", "算法(quickfind/forest/balanced/compressed)")

	return cmd
}

func runConnected(cmd *cobra.Command, opts *connectedOptions, args []string) error {
	el, err := loadEdges(opts.input)
	if err != nil {
		return err
	}
	v, err := resolveNode(el, args[0])
	if err != nil {
		return err
	}
	w, err := resolveNode(el, args[1])
	if err != nil {
		return err
	}
	logutil.Info("connected: 输入=%s v=%d w=%d 算法=%s", opts.input, v, w, opts.algo)

	p := NewPartition(opts.algo, el.N)
	if err := graph.Fold(p, el.Edges); err != nil {
		return wrapComputeErr(err)
	}
	ok, err := p.Connected(v, w)
	if err != nil {
		return wrapComputeErr(err)
	}
	cmd.Println(ok)
	return nil
}
