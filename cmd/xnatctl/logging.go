package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/omeyang/xnat/pkg/config/xnatconf"
)

// newLogger 按日志设置构建 slog 日志器，输出到 stderr。
// 级别通过 LevelVar 持有，便于将来接入运行时动态调级。
func newLogger(cfg xnatconf.LogSettings) (*slog.Logger, error) {
	levelVar := new(slog.LevelVar)
	switch cfg.Level {
	case "debug":
		levelVar.Set(slog.LevelDebug)
	case "info":
		levelVar.Set(slog.LevelInfo)
	case "warn":
		levelVar.Set(slog.LevelWarn)
	case "error":
		levelVar.Set(slog.LevelError)
	default:
		return nil, fmt.Errorf("unknown log level %q", cfg.Level)
	}

	opts := &slog.HandlerOptions{Level: levelVar}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text", "":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return slog.New(handler), nil
}
