package xnatmap

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/netip"
)

// 默认 CSV 表头，沿用 DMZ ↔ 内网这一最常见的静态 NAT 场景命名。
const (
	DefaultSourceHeader = "DMZ_IP"
	DefaultTargetHeader = "Internal_IP"
)

// WriteCSV 将映射表写为 CSV：表头一行，随后每条目一行 "<source>,<target>"。
// sourceHeader / targetHeader 为空字符串时使用默认表头
// [DefaultSourceHeader] / [DefaultTargetHeader]。
func (m *Mapping) WriteCSV(w io.Writer, sourceHeader, targetHeader string) error {
	if sourceHeader == "" {
		sourceHeader = DefaultSourceHeader
	}
	if targetHeader == "" {
		targetHeader = DefaultTargetHeader
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{sourceHeader, targetHeader}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, e := range m.Entries {
		if err := cw.Write([]string{e.Source, e.Target}); err != nil {
			return fmt.Errorf("write csv entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV 从 CSV 数据还原有序映射条目列表，与 [Mapping.WriteCSV] 往返可逆。
// 第一行视为表头并跳过；每个数据行必须恰好两列，且两列都是合法 IP 地址。
// 地址会重新规范化（如 IPv6 缩写），保证解析结果与原始条目逐字节一致。
// 只有表头没有数据行时返回空切片。
func ParseCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: missing header line", ErrInvalidCSV)
		}
		return nil, fmt.Errorf("%w: read header: %v", ErrInvalidCSV, err)
	}

	entries := []Entry{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidCSV, line, err)
		}
		source, err := netip.ParseAddr(record[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid source address %q", ErrInvalidCSV, line, record[0])
		}
		target, err := netip.ParseAddr(record[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid target address %q", ErrInvalidCSV, line, record[1])
		}
		entries = append(entries, Entry{
			Source: source.String(),
			Target: target.String(),
		})
	}
}
