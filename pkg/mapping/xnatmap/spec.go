package xnatmap

import (
	"fmt"
	"math/big"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// NetworkSpec 是规范化后的网段：网络地址 + 前缀长度。
// 通过 [ParseNetworkSpec] 构造后不可变；零值无效（[NetworkSpec.IsValid] 为 false）。
type NetworkSpec struct {
	prefix netip.Prefix
}

// ParseNetworkSpec 从 CIDR 文本解析网段，要求必须带 /prefixLength 后缀。
// 采用宽松解析：输入带非零主机位（如 "192.168.1.5/26"）时按网络地址归一化，
// 不视为错误。输入会自动去除首尾空白字符。
//
// 设计决策: 拒绝包含 IPv6 zone ID 的输入（如 fe80::1%eth0）。
// zone 信息无法参与范围枚举，静默丢弃会导致映射语义偏差。
// 在 IP 地址字符串中 '%' 仅用作 zone 分隔符，因此检查 '%' 即可。
func ParseNetworkSpec(s string) (NetworkSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NetworkSpec{}, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}
	if strings.Contains(s, "%") {
		return NetworkSpec{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidFormat, s)
	}
	if !strings.Contains(s, "/") {
		return NetworkSpec{}, fmt.Errorf("%w: missing /prefixLength suffix: %s", ErrInvalidFormat, s)
	}

	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return NetworkSpec{}, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, s, err)
	}

	// IPv4-mapped IPv6 CIDR 统一归一化为纯 IPv4，保证地址族判定一致。
	// bits < 96 时该块同时覆盖非 IPv4-mapped 地址，无法归一化，直接拒绝。
	if prefix.Addr().Is4In6() {
		if prefix.Bits() < 96 {
			return NetworkSpec{}, fmt.Errorf("%w: IPv4-mapped prefix requires bits >= 96: %s", ErrInvalidFormat, s)
		}
		prefix = netip.PrefixFrom(prefix.Addr().Unmap(), prefix.Bits()-96)
	}

	return NetworkSpec{prefix: prefix.Masked()}, nil
}

// MustParseNetworkSpec 与 [ParseNetworkSpec] 相同，但失败时 panic。
// 适用于测试和硬编码常量。
func MustParseNetworkSpec(s string) NetworkSpec {
	spec, err := ParseNetworkSpec(s)
	if err != nil {
		panic(err)
	}
	return spec
}

// IsValid 报告 s 是否为有效网段（即是否经由 ParseNetworkSpec 构造）。
func (s NetworkSpec) IsValid() bool {
	return s.prefix.IsValid()
}

// Prefix 返回底层的 [netip.Prefix]（已规范化，主机位为零）。
func (s NetworkSpec) Prefix() netip.Prefix {
	return s.prefix
}

// Addr 返回网络地址（块内首地址）。
func (s NetworkSpec) Addr() netip.Addr {
	return s.prefix.Addr()
}

// Bits 返回前缀长度。无效网段返回 -1。
func (s NetworkSpec) Bits() int {
	return s.prefix.Bits()
}

// AddrBits 返回地址位宽：IPv4 为 32，IPv6 为 128。无效网段返回 0。
func (s NetworkSpec) AddrBits() int {
	return s.prefix.Addr().BitLen()
}

// Is4 报告网段是否属于 IPv4 地址族。
func (s NetworkSpec) Is4() bool {
	return s.prefix.Addr().Is4()
}

// Range 返回块的地址范围 [netipx.IPRange]（From 为网络地址，To 为末地址）。
func (s NetworkSpec) Range() netipx.IPRange {
	return netipx.RangeOfPrefix(s.prefix)
}

// Last 返回块内末地址。IPv4 中即广播地址；IPv6 没有广播概念，
// 取"块内最后一个地址"作为对应物。
func (s NetworkSpec) Last() netip.Addr {
	return s.Range().To()
}

// NumAddresses 返回块内地址总数 2^(AddrBits-Bits)。无效网段返回 nil。
func (s NetworkSpec) NumAddresses() *big.Int {
	if !s.IsValid() {
		return nil
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(s.AddrBits()-s.Bits()))
}

// NumAddressesUint64 返回块内地址总数。
// 主机位数 >= 64 时数量超出 uint64 表示范围，返回 (0, false)。
func (s NetworkSpec) NumAddressesUint64() (uint64, bool) {
	if !s.IsValid() {
		return 0, false
	}
	hostBits := s.AddrBits() - s.Bits()
	if hostBits >= 64 {
		return 0, false
	}
	return uint64(1) << uint(hostBits), true
}

// String 返回 CIDR 文本表示，如 "192.168.1.0/26"。
func (s NetworkSpec) String() string {
	return s.prefix.String()
}

// NetworkDetails 是网段的派生元数据，用于展示层渲染。
type NetworkDetails struct {
	// Network 规范化网络地址。
	Network string `json:"network" yaml:"network"`
	// PrefixLen 前缀长度。
	PrefixLen int `json:"prefix_len" yaml:"prefix_len"`
	// Last 块内末地址（IPv4 广播地址）。
	Last string `json:"last" yaml:"last"`
	// Addresses 块内地址总数的十进制文本（IPv6 可超出 uint64，故用字符串）。
	Addresses string `json:"addresses" yaml:"addresses"`
	// Version 地址族："IPv4" 或 "IPv6"。
	Version string `json:"version" yaml:"version"`
}

// Details 返回网段的派生元数据。无效网段返回零值。
func (s NetworkSpec) Details() NetworkDetails {
	if !s.IsValid() {
		return NetworkDetails{}
	}
	return NetworkDetails{
		Network:   s.Addr().String(),
		PrefixLen: s.Bits(),
		Last:      s.Last().String(),
		Addresses: s.NumAddresses().String(),
		Version:   s.family(),
	}
}

// family 返回地址族文本："IPv4" 或 "IPv6"。
func (s NetworkSpec) family() string {
	if s.Is4() {
		return "IPv4"
	}
	return "IPv6"
}
