package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/omeyang/xnat/pkg/mapping/xnatmap"
)

// mappingDocument 是映射结果 JSON 渲染的载体。
type mappingDocument struct {
	Source  xnatmap.NetworkDetails `json:"source"`
	Target  xnatmap.NetworkDetails `json:"target"`
	Entries []xnatmap.Entry        `json:"entries"`
}

// writeMappingJSON 将映射结果渲染为缩进 JSON。
func writeMappingJSON(w io.Writer, m *xnatmap.Mapping) error {
	doc := mappingDocument{
		Source:  m.Source.Details(),
		Target:  m.Target.Details(),
		Entries: m.Entries,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// writeMappingTable 将映射结果渲染为对齐表格，末行输出汇总。
func writeMappingTable(w io.Writer, m *xnatmap.Mapping, sourceHeader, targetHeader string) error {
	if sourceHeader == "" {
		sourceHeader = xnatmap.DefaultSourceHeader
	}
	if targetHeader == "" {
		targetHeader = xnatmap.DefaultTargetHeader
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\t%s\n", sourceHeader, targetHeader)
	for i, e := range m.Entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, e.Source, e.Target)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n共 %d 条映射 (%s → %s)\n", m.Len(), m.Source, m.Target)
	return err
}

// writeDetailsJSON 将网段元数据渲染为缩进 JSON。
func writeDetailsJSON(w io.Writer, details []xnatmap.NetworkDetails) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(details)
}

// writeDetailsTable 将网段元数据渲染为对齐表格。
func writeDetailsTable(w io.Writer, details []xnatmap.NetworkDetails) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "网络地址\t前缀\t末地址\t地址总数\t协议")
	for _, d := range details {
		fmt.Fprintf(tw, "%s\t/%d\t%s\t%s\t%s\n", d.Network, d.PrefixLen, d.Last, d.Addresses, d.Version)
	}
	return tw.Flush()
}

// writeExamplesTable 输出常见用法示例表。
func writeExamplesTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "场景\t源网段\t目标网段\t可用地址")
	fmt.Fprintln(tw, "小型网络 (/30)\t192.168.1.0/30\t10.0.1.0/30\t2")
	fmt.Fprintln(tw, "中型网络 (/26)\t192.168.1.0/26\t10.188.65.0/26\t62")
	fmt.Fprintln(tw, "大型网络 (/24)\t192.168.1.0/24\t10.0.1.0/24\t254")
	return tw.Flush()
}
