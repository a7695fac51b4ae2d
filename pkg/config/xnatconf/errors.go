package xnatconf

import "errors"

var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xnatconf: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xnatconf: unsupported config format")

	// ErrLoadFailed 表示配置文件读取失败。
	ErrLoadFailed = errors.New("xnatconf: failed to load config")

	// ErrParseFailed 表示配置数据解析失败。
	ErrParseFailed = errors.New("xnatconf: failed to parse config")

	// ErrInvalidSettings 表示配置值未通过校验。
	ErrInvalidSettings = errors.New("xnatconf: invalid settings")
)
