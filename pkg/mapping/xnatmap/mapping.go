package xnatmap

import "fmt"

// Entry 是一条映射：源地址与目标地址的规范文本表示。
type Entry struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Mapping 是一次映射计算的成功结果。
// Entries 按共享枚举的位置索引升序排列；零条映射时 Entries 为空切片（非 nil）。
type Mapping struct {
	// Source 源网段（已规范化）。
	Source NetworkSpec
	// Target 目标网段（已规范化）。
	Target NetworkSpec
	// Entries 有序映射条目。
	Entries []Entry
}

// Len 返回映射条目数。
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Entries)
}

// Compute 计算两个网段之间的 1:1 地址映射。
//
// 步骤：
//  1. 宽松解析两侧 CIDR 文本（见 [ParseNetworkSpec]）
//  2. 校验地址族一致、前缀长度相等
//  3. 按升序枚举两侧可用地址（主机子集，块过小时回退为全地址）
//  4. 按位置配对；长度不等时截断到较短一侧，不报错也不填充
//
// 计算是纯函数：相同输入必然产出相同结果，可安全并发调用。
// 失败种类见包文档的错误处理一节。
func Compute(sourceText, targetText string, opts ...Option) (*Mapping, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	source, err := ParseNetworkSpec(sourceText)
	if err != nil {
		return nil, fmt.Errorf("source range %q: %w", sourceText, err)
	}
	target, err := ParseNetworkSpec(targetText)
	if err != nil {
		return nil, fmt.Errorf("target range %q: %w", targetText, err)
	}

	if source.Is4() != target.Is4() {
		return nil, fmt.Errorf("%w: source %s is %s, target %s is %s",
			ErrFamilyMismatch,
			source, source.family(),
			target, target.family())
	}
	if source.Bits() != target.Bits() {
		return nil, fmt.Errorf("%w: source /%d, target /%d",
			ErrPrefixMismatch, source.Bits(), target.Bits())
	}

	sourceAddrs, err := source.usableAddresses(options.MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("source range %s: %w", source, err)
	}
	targetAddrs, err := target.usableAddresses(options.MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("target range %s: %w", target, err)
	}

	n := min(len(sourceAddrs), len(targetAddrs))
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{
			Source: sourceAddrs[i].String(),
			Target: targetAddrs[i].String(),
		}
	}

	return &Mapping{
		Source:  source,
		Target:  target,
		Entries: entries,
	}, nil
}
