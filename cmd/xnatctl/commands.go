package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xnat/pkg/config/xnatconf"
	"github.com/omeyang/xnat/pkg/mapping/xnatmap"
)

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createMapCommand(),
		createInspectCommand(),
		createExamplesCommand(),
	}
}

// resolveSettings 按 内置默认值 → 配置文件 → 命令行 flag 的优先级合成设置。
func resolveSettings(cmd *cli.Command) (xnatconf.Settings, error) {
	settings := xnatconf.Default()

	if path := cmd.String("config"); path != "" {
		loaded, err := xnatconf.Load(path)
		if err != nil {
			return xnatconf.Settings{}, err
		}
		settings = loaded
	}

	if cmd.IsSet("max-entries") {
		settings.MaxEntries = cmd.Uint64("max-entries")
	}
	if v := cmd.String("log-level"); v != "" {
		settings.Log.Level = v
	}
	if v := cmd.String("log-format"); v != "" {
		settings.Log.Format = v
	}

	// flag 覆盖后再校验一次，命令行传入的非法值同样在边界拒绝。
	if err := settings.Validate(); err != nil {
		return xnatconf.Settings{}, err
	}
	return settings, nil
}

// createMapCommand 创建 map 子命令（计算 1:1 映射）。
func createMapCommand() *cli.Command {
	return &cli.Command{
		Name:      "map",
		Aliases:   []string{"m"},
		Usage:     "计算两个网段的 1:1 地址映射",
		ArgsUsage: "[<source> <target>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "渲染形式: table/csv/json",
				Value:   "table",
			},
			&cli.StringFlag{
				Name:  "source-header",
				Usage: "CSV 源地址列表头",
			},
			&cli.StringFlag{
				Name:  "target-header",
				Usage: "CSV 目标地址列表头",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(settings.Log)
			if err != nil {
				return err
			}

			args := cmd.Args().Slice()
			var source, target string
			switch len(args) {
			case 0:
				// 省略参数时沿用配置的默认网段。
				source, target = settings.Source, settings.Target
			case 2:
				source, target = args[0], args[1]
			default:
				return &usageError{msg: "map 命令需要 0 或 2 个参数: [<source> <target>]"}
			}

			output := cmd.String("output")
			switch output {
			case "table", "csv", "json":
			default:
				return &usageError{msg: fmt.Sprintf("未知的渲染形式 %q，支持 table/csv/json", output)}
			}

			sourceHeader := cmd.String("source-header")
			if sourceHeader == "" {
				sourceHeader = settings.CSV.SourceHeader
			}
			targetHeader := cmd.String("target-header")
			if targetHeader == "" {
				targetHeader = settings.CSV.TargetHeader
			}

			logger.Debug("computing mapping",
				slog.String("source", source),
				slog.String("target", target),
				slog.Uint64("max_entries", settings.MaxEntries))

			m, err := xnatmap.Compute(source, target, xnatmap.WithMaxEntries(settings.MaxEntries))
			if err != nil {
				return err
			}

			logger.Debug("mapping computed", slog.Int("entries", m.Len()))

			w := cmd.Root().Writer
			switch output {
			case "csv":
				return m.WriteCSV(w, sourceHeader, targetHeader)
			case "json":
				return writeMappingJSON(w, m)
			default:
				return writeMappingTable(w, m, sourceHeader, targetHeader)
			}
		},
	}
}

// createInspectCommand 创建 inspect 子命令（网段元数据）。
func createInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Aliases:   []string{"i"},
		Usage:     "查看网段的派生元数据",
		ArgsUsage: "<range>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "渲染形式: table/json",
				Value:   "table",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			args := cmd.Args().Slice()
			if len(args) == 0 {
				return &usageError{msg: "inspect 命令需要至少一个网段参数"}
			}

			output := cmd.String("output")
			switch output {
			case "table", "json":
			default:
				return &usageError{msg: fmt.Sprintf("未知的渲染形式 %q，支持 table/json", output)}
			}

			details := make([]xnatmap.NetworkDetails, 0, len(args))
			for _, arg := range args {
				spec, err := xnatmap.ParseNetworkSpec(arg)
				if err != nil {
					return err
				}
				details = append(details, spec.Details())
			}

			w := cmd.Root().Writer
			if output == "json" {
				return writeDetailsJSON(w, details)
			}
			return writeDetailsTable(w, details)
		},
	}
}

// createExamplesCommand 创建 examples 子命令（用法示例表）。
func createExamplesCommand() *cli.Command {
	return &cli.Command{
		Name:  "examples",
		Usage: "显示常见用法示例",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return writeExamplesTable(cmd.Root().Writer)
		},
	}
}

// setupSignalHandler 设置信号处理。
// 设计决策: 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh) // 回收订阅
		os.Exit(130)       // 第二次信号: 强制退出
	}()
}
