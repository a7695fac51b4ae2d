package xnatmap

import (
	"fmt"
	"math"
	"net/netip"
)

// Addresses 枚举块内全部地址（升序），包含网络地址和末地址。
// max > 0 时作为条目数上限，超过返回 [ErrRangeTooLarge]；max == 0 表示不限制，
// 但块大小超出 uint64 可计数范围（主机位数 >= 64）时仍然拒绝。
func (s NetworkSpec) Addresses(max uint64) ([]netip.Addr, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: zero NetworkSpec", ErrInvalidFormat)
	}
	count, ok := s.NumAddressesUint64()
	if !ok {
		return nil, fmt.Errorf("%w: %s address count exceeds uint64", ErrRangeTooLarge, s)
	}
	return s.enumerate(s.Addr(), count, max)
}

// Hosts 枚举主机地址：块内地址排除首地址（网络地址）和末地址（广播/全 1 地址）。
// 前缀长度 ∈ {AddrBits-1, AddrBits} 时块内没有独立的主机地址，返回空切片。
func (s NetworkSpec) Hosts(max uint64) ([]netip.Addr, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: zero NetworkSpec", ErrInvalidFormat)
	}
	if s.Bits() > s.AddrBits()-2 {
		return []netip.Addr{}, nil
	}
	count, ok := s.NumAddressesUint64()
	if !ok {
		return nil, fmt.Errorf("%w: %s address count exceeds uint64", ErrRangeTooLarge, s)
	}
	return s.enumerate(s.Addr().Next(), count-2, max)
}

// usableAddresses 返回参与配对的地址序列：主机子集，
// 或块过小（没有独立主机地址）时回退为全部地址。
func (s NetworkSpec) usableAddresses(max uint64) ([]netip.Addr, error) {
	if s.Bits() > s.AddrBits()-2 {
		return s.Addresses(max)
	}
	return s.Hosts(max)
}

// enumerate 自 start 起按数值升序产出 count 个连续地址。
// count 已由调用方保证不越过块边界。
func (s NetworkSpec) enumerate(start netip.Addr, count, max uint64) ([]netip.Addr, error) {
	if max > 0 && count > max {
		return nil, fmt.Errorf("%w: %s yields %d entries, limit is %d", ErrRangeTooLarge, s, count, max)
	}
	// max == 0（不限制）时仍需保证切片长度可用 int 表示。
	if count > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %s yields %d entries", ErrRangeTooLarge, s, count)
	}
	addrs := make([]netip.Addr, 0, count)
	addr := start
	for i := uint64(0); i < count; i++ {
		addrs = append(addrs, addr)
		addr = addr.Next()
	}
	return addrs, nil
}
