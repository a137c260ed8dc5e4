// mgidctl 是 mgid 类型的命令行工具。
//
// 用法:
//
//	mgidctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	--log-level    日志级别 debug/info/warn/error (默认: info)
//	--log-format   日志格式 text/json (默认: text)
//	--log-file     日志写入按大小轮转的文件，默认输出到 stderr
//
// 命令:
//
//	parse <text>...          校验并输出规范文本形式
//	format [file]            从线格式（每条 12 字节）读取并输出文本形式
//	wire <text>              输出 12 字节线格式
//	fields <text>            输出时间戳、进程唯一段、计数器
//	hash <text>              输出 32 位哈希和带种子的 64 位哈希
//	compare <a> [op] <b>     比较两个 mgid
//	abbrev [file]            对输入的 mgid 做缩写键排序模拟并报告是否放弃缩写
//
// 退出码:
//
//	0: 成功（compare 带运算符时：结果为真）
//	1: 执行失败，或 compare 结果为假
//	2: 参数错误（缺少参数、未知运算符、未知 flag 等）
//
// 示例:
//
//	mgidctl parse 0102030405060708090A0B0C
//	mgidctl wire 0102030405060708090a0b0c | mgidctl format
//	mgidctl compare 000000000000000000000001 '<' 000000000000000000000002
//	mgidctl --log-level debug abbrev --config abbrev.yaml ids.txt
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:      "mgidctl",
		Usage:     "mgid 标识符命令行工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径（按大小轮转），为空时输出到 stderr",
			},
		},
		Commands:     createCommands(),
		OnUsageError: onUsageError,
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(cmd.Root().ErrWriter, err)
			}
		},
	}
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return runApp(ctx, createApp(), os.Args, os.Stderr)
}

// runApp 执行命令并把错误映射为退出码。
func runApp(ctx context.Context, app *cli.Command, args []string, stderr io.Writer) int {
	err := app.Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	if isCLIUsageError(err) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}

// =============================================================================
// 错误类型
// =============================================================================

// exitError 命令已完成输出，只需设置非零退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func newUsageError(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// onUsageError 把 flag 解析错误转换为 usageError。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// isCLIUsageError 识别框架直接返回的参数错误（未知命令等）。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, s := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"No help topic for",
		"command not found",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
