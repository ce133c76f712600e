package concmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"conn_tool/pkg/edgeio"
	"conn_tool/pkg/errorutil"
	"conn_tool/pkg/logutil"
	"conn_tool/pkg/unionfind"
)

// Algo 是 --algo 选项的取值，实现 pflag.Value 接口(String Set Type)
// 之后可以直接交给 VarP
type Algo string

const (
	AlgoQuickFind  Algo = "quickfind"
	AlgoForest     Algo = "forest"
	AlgoBalanced   Algo = "balanced"
	AlgoCompressed Algo = "compressed"
)

func (a *Algo) String() string { return string(*a) }

func (a *Algo) Set(val string) error {
	switch Algo(val) {
	case AlgoQuickFind, AlgoForest, AlgoBalanced, AlgoCompressed:
		*a = Algo(val)
		return nil
	default:
		return fmt.Errorf("无效的 algo 值: %s, 可选: %s",
			val, strings.Join(Algo("").Values(), "/"))
	}
}

func (a *Algo) Type() string {
	return "algo" // 这个字符串用于帮助文档与类型提示
}

// 列出所有的合法值
func (Algo) Values() []string {
	return []string{
		string(AlgoQuickFind),
		string(AlgoForest),
		string(AlgoBalanced),
		string(AlgoCompressed),
	}
}

// NewPartition 按算法名构造对应的划分实现
func NewPartition(algo Algo, n int) unionfind.Partition {
	switch algo {
	case AlgoQuickFind:
		return unionfind.NewQuickFind(n)
	case AlgoForest:
		return unionfind.NewForest(n)
	case AlgoBalanced:
		return unionfind.NewBalancedForest(n)
	default:
		return unionfind.New(n)
	}
}

// loadEdges 读输入文件并把底层错误折成带退出码的结构化错误
func loadEdges(path string) (*edgeio.EdgeList, error) {
	if path == "" {
		return nil, errorutil.NewExitErrorWithMessage(
			errorutil.CodeMissingInput, "必须用 -i 指定输入文件", nil)
	}
	el, err := edgeio.ReadEdgesFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errorutil.NewExitError(errorutil.CodeMissingInput, err)
		}
		return nil, errorutil.NewExitError(errorutil.CodeInvalidData, err)
	}
	return el, nil
}

// wrapComputeErr 把计算层的错误映射到退出码
func wrapComputeErr(err error) error {
	if errors.Is(err, unionfind.ErrOutOfRange) {
		return errorutil.NewExitError(errorutil.CodeOutOfRange, err)
	}
	return errorutil.NewExitError(errorutil.CodeInternalErr, err)
}

// writeErrorDoc 计算失败时照样落一份结果文档，错误码进 ErrorCode 字段，
// 调用方拿到文件就能区分成功和失败，不用解析 stderr
func writeErrorDoc(action, output string, err error) {
	if output == "" {
		return
	}
	doc := edgeio.MarshalError(action, errorutil.ExitCodeFromError(err), err.Error())
	if werr := edgeio.WriteResultFile(output, doc); werr != nil {
		logutil.Warn("写错误结果失败: %v", werr)
	}
}

// resolveNode 把命令行里的节点写法解析成下标：有标签表时先查标签，
// 查不到再按数字下标解析
func resolveNode(el *edgeio.EdgeList, token string) (int, error) {
	for i, name := range el.Labels {
		if name == token {
			return i, nil
		}
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
			fmt.Sprintf("无法解析节点 %q, 既不是已知标签也不是下标", token), err)
	}
	return v, nil
}
