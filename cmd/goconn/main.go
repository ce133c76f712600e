package main

import (
	"fmt"
	"os"

	"conn_tool/pkg/concmd"
	"conn_tool/pkg/errorutil"
	"conn_tool/pkg/logutil"

	"github.com/spf13/cobra"
)

const TOOL_VERSION = "1.0.0+20260822"

func main() {
	var rootCmd = &cobra.Command{
		Use:   "goconn",
		Short: fmt.Sprintf("Goconn v%s 是一个连通分量分析工具，支持 components/reach/connected/bench 等子命令", TOOL_VERSION),
		Long: "     o---o       __ _   ___    ___  ___   _ __   _ __  \n" +
			"    /     \\     / _` | / _ \\  / __|/ _ \\ | '_ \\ | '_ \\ \n" +
			"   o       o   | (_| || (_) || (__| (_) || | | || | | |\n" +
			"    \\     /     \\__, | \\___/  \\___|\\___/ |_| |_||_| |_|\n" +
			"     o---o      |___/                                  \n" +
			fmt.Sprintf("\nGoconn v%s 是一个连通分量分析工具，支持 components/reach/connected/bench 等子命令\n", TOOL_VERSION),
	}

	rootCmd.AddCommand(concmd.ComponentsCmd())
	rootCmd.AddCommand(concmd.ReachCmd())
	rootCmd.AddCommand(concmd.ConnectedCmd())
	rootCmd.AddCommand(concmd.BenchCmd())
	var logFile string
	logLevel := logutil.WARN

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().VarP(&logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "goconn.log", "日志文件名(默认goconn.log，stdout 表示标准输出)")
	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 阻止Cobra自动打印RunE返回的错误内容
	rootCmd.SilenceErrors = true

	// 等待Cobra的flag解析完成后
	// PersistentPreRunE 回调，这个钩子会在用户的命令解析完成、flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logutil.InitLogger(logFile, logLevel)
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		// 统一出口: 错误详情进 stderr 和日志，退出码给调用方做分支
		msg, code := errorutil.FormatErrorAndCode(err)
		fmt.Fprintln(os.Stderr, msg)
		logutil.Error("命令执行失败: %v", err)
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(0)
}
