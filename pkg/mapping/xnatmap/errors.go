package xnatmap

import "errors"

var (
	// ErrInvalidFormat 表示输入无法解析为 address/prefixLength 形式的网段。
	ErrInvalidFormat = errors.New("xnatmap: invalid address format")

	// ErrFamilyMismatch 表示两侧网段的地址族不一致（IPv4 与 IPv6 混用）。
	ErrFamilyMismatch = errors.New("xnatmap: address family mismatch")

	// ErrPrefixMismatch 表示两侧网段的前缀长度不一致。
	ErrPrefixMismatch = errors.New("xnatmap: prefix length mismatch")

	// ErrRangeTooLarge 表示枚举条目数超过配置的上限。
	ErrRangeTooLarge = errors.New("xnatmap: range too large")

	// ErrInvalidCSV 表示 CSV 数据无法还原为映射条目列表。
	ErrInvalidCSV = errors.New("xnatmap: invalid CSV data")
)
