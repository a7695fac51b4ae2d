package xnatconf

import (
	"fmt"

	"github.com/omeyang/xnat/pkg/mapping/xnatmap"
)

// Settings 是映射工具的全部可配置项。
// 零值不可直接使用，请从 [Default] 或 [Load] / [LoadBytes] 获取。
type Settings struct {
	// Source 默认源网段（CIDR），命令行未指定参数时使用。
	Source string `koanf:"source"`

	// Target 默认目标网段（CIDR）。
	Target string `koanf:"target"`

	// MaxEntries 枚举条目上限，0 表示不限制。
	MaxEntries uint64 `koanf:"max_entries"`

	// CSV CSV 导出相关设置。
	CSV CSVSettings `koanf:"csv"`

	// Log 命令行日志设置。
	Log LogSettings `koanf:"log"`
}

// CSVSettings 定义 CSV 导出表头。
type CSVSettings struct {
	// SourceHeader 源地址列表头。
	SourceHeader string `koanf:"source_header"`

	// TargetHeader 目标地址列表头。
	TargetHeader string `koanf:"target_header"`
}

// LogSettings 定义命令行日志级别与格式。
type LogSettings struct {
	// Level 日志级别：debug/info/warn/error。
	Level string `koanf:"level"`

	// Format 输出格式：text 或 json。
	Format string `koanf:"format"`
}

// Default 返回默认设置：示例网段沿用最常见的 DMZ ↔ 内网场景。
func Default() Settings {
	return Settings{
		Source:     "192.168.1.0/26",
		Target:     "10.188.65.0/26",
		MaxEntries: xnatmap.DefaultMaxEntries,
		CSV: CSVSettings{
			SourceHeader: xnatmap.DefaultSourceHeader,
			TargetHeader: xnatmap.DefaultTargetHeader,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate 校验设置值。网段必须可解析，日志级别与格式必须是已知值。
// 表头允许为空，使用侧会回退到包默认表头。
func (s Settings) Validate() error {
	if s.Source != "" {
		if _, err := xnatmap.ParseNetworkSpec(s.Source); err != nil {
			return fmt.Errorf("%w: source: %v", ErrInvalidSettings, err)
		}
	}
	if s.Target != "" {
		if _, err := xnatmap.ParseNetworkSpec(s.Target); err != nil {
			return fmt.Errorf("%w: target: %v", ErrInvalidSettings, err)
		}
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidSettings, s.Log.Level)
	}
	switch s.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidSettings, s.Log.Format)
	}
	return nil
}
