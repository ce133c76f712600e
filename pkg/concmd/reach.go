package concmd

import (
	"github.com/spf13/cobra"

	"conn_tool/pkg/edgeio"
	"conn_tool/pkg/errorutil"
	"conn_tool/pkg/graph"
	"conn_tool/pkg/logutil"
)

type reachOptions struct {
	input  string
	output string
	from   string
}

// reach 子命令: 从指定起点做可达性展开
func ReachCmd() *cobra.Command {
	opts := &reachOptions{}

	cmd := &cobra.Command{
		Use:   "reach",
		Short: "列出从起点可达的全部节点",
		Long: `列出从起点可达的全部节点
Examples:

1. 按下标指定起点
goconn reach -i edges.json --from 0

2. 带标签的输入可以直接用标签
goconn reach -i hosts.dot --from web-01 -o reach.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReach(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "输入文件(.json/.dot/.gv, 其余按纯文本)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "结果 JSON 的输出路径(缺省打印到标准输出)")
	cmd.Flags().StringVar(&opts.from, "from", "", "起点, 标签或下标")

	return cmd
}

func runReach(cmd *cobra.Command, opts *reachOptions) error {
	el, err := loadEdges(opts.input)
	if err != nil {
		return err
	}
	if opts.from == "" {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
			"必须用 --from 指定起点", nil)
	}
	start, err := resolveNode(el, opts.from)
	if err != nil {
		return err
	}
	logutil.Info("reach: 输入=%s n=%d 起点=%d", opts.input, el.N, start)

	neighbors, err := graph.BuildNeighbors(el.N, el.Edges)
	if err != nil {
		err = wrapComputeErr(err)
		writeErrorDoc("reach", opts.output, err)
		return err
	}
	seen, err := graph.Reachable(start, neighbors)
	if err != nil {
		err = wrapComputeErr(err)
		writeErrorDoc("reach", opts.output, err)
		return err
	}

	doc, err := edgeio.MarshalReach(el, start, graph.Sorted(seen))
	if err != nil {
		return errorutil.NewExitError(errorutil.CodeInternalErr, err)
	}
	if opts.output == "" {
		cmd.Println(string(doc))
		return nil
	}
	if err := edgeio.WriteResultFile(opts.output, doc); err != nil {
		return errorutil.NewExitError(errorutil.CodeIOError, err)
	}
	logutil.Info("结果已写入 %s", opts.output)
	return nil
}
