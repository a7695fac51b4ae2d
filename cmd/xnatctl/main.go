// xnatctl 是 1:1 静态 NAT 地址映射的命令行工具。
//
// 用法:
//
//	xnatctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config       配置文件路径 (YAML/JSON，可选)
//	    --max-entries  枚举条目上限 (默认: 1048576，0 表示不限制)
//	    --log-level    日志级别 (debug/info/warn/error，默认: info)
//	    --log-format   日志格式 (text/json，默认: text)
//
// 命令:
//
//	map [<source> <target>]   计算两个网段的 1:1 映射并渲染
//	inspect <range>...        查看网段的派生元数据
//	examples                  显示常见用法示例
//	help                      显示帮助信息
//
// map 命令说明:
//
//	省略参数时使用配置的默认网段（内置 192.168.1.0/26 → 10.188.65.0/26）。
//	--output 选择渲染形式：table（默认）、csv、json。
//	CSV 表头默认 DMZ_IP,Internal_IP，可用 --source-header/--target-header 覆盖。
//
// 退出码:
//
//	0: 命令执行成功
//	1: 计算或配置失败（格式错误、前缀不一致、范围过大等）
//	2: 参数错误（参数个数不对、未知 flag、未知命令等）
//
// 示例:
//
//	xnatctl map 192.168.1.0/26 10.188.65.0/26         # 表格输出 62 条映射
//	xnatctl map 192.168.1.0/30 10.0.1.0/30 -o csv     # CSV 输出
//	xnatctl map -o csv --source-header Source_IP --target-header Target_IP
//	xnatctl inspect 192.168.1.0/26 10.188.65.0/26     # 网段元数据
//	xnatctl -c /etc/xnat/config.yaml map              # 使用配置的默认网段
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xnat/pkg/mapping/xnatmap"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
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
		Name:    "xnatctl",
		Usage:   "1:1 静态 NAT 地址映射生成器",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (YAML/JSON)",
			},
			&cli.Uint64Flag{
				Name:  "max-entries",
				Usage: "枚举条目上限，0 表示不限制",
				Value: xnatmap.DefaultMaxEntries,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"XNat Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `xnatctl 在两个等宽网段之间计算确定性的、保序的 1:1 地址映射，
用于静态 NAT 表生成。

主要命令:
  map [<source> <target>]   计算映射
    --output, -o            渲染形式: table/csv/json (默认 table)
    --source-header         CSV 源地址列表头 (默认 DMZ_IP)
    --target-header         CSV 目标地址列表头 (默认 Internal_IP)
  inspect <range>...        网段元数据 (网络地址/前缀长度/末地址/地址总数)
    --output, -o            渲染形式: table/json (默认 table)
  examples                  常见用法示例表`,
	}
}

// usageError 表示调用方参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 识别 CLI 框架产生的参数解析错误（未知 flag、未知命令等）。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "No help topic for") ||
		strings.Contains(msg, "unknown command")
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 设置信号处理
	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
