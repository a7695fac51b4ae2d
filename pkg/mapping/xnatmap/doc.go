// Package xnatmap 提供两个等宽网段之间的 1:1 静态 NAT 地址映射计算。
//
// xnatmap 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 将两个 CIDR 文本解析为规范化网段，校验兼容性，按升序枚举可用地址，
// 并按位置一一配对生成翻译表。计算本身是纯函数：无 I/O、无共享状态，
// 可安全并发调用。
//
// # 核心功能
//
//   - spec.go: [NetworkSpec] 规范化网段（宽松解析，主机位自动清零）及派生元数据
//   - enumerate.go: 块内地址升序枚举（主机子集 / 全地址回退）
//   - mapping.go: [Compute] 计算 1:1 映射，产出有序 [Entry] 列表
//   - csv.go: 映射表的 CSV 序列化与反序列化（往返可逆）
//   - options.go: [WithMaxEntries] 等函数式选项
//
// # 快速示例
//
// 计算两个 /26 网段的映射：
//
//	m, err := xnatmap.Compute("192.168.1.0/26", "10.188.65.0/26")
//	if err != nil {
//	    // errors.Is 判断具体失败种类
//	}
//	fmt.Println(len(m.Entries))            // 62
//	fmt.Println(m.Entries[0].Source)       // 192.168.1.1
//	fmt.Println(m.Entries[0].Target)       // 10.188.65.1
//
// 导出 CSV：
//
//	var buf bytes.Buffer
//	_ = m.WriteCSV(&buf, "", "")           // 默认表头 DMZ_IP,Internal_IP
//
// # 枚举语义
//
// 设前缀长度为 N，地址位宽为 W（IPv4 为 32，IPv6 为 128）：
//
//   - N <= W-2：枚举主机子集，排除首地址（网络地址）和末地址（广播/全 1 地址），
//     共 2^(W-N) - 2 个
//   - N ∈ {W-1, W}：块内没有独立的主机地址，回退为枚举全部 2^(W-N) 个地址
//
// 两侧前缀长度相等时枚举长度必然相同；配对仍按 min 长度截断，
// 不因长度差异报错或填充。
//
// # 设计决策
//
//   - 宽松解析：输入带主机位（如 "192.168.1.5/26"）按 [netip.Prefix.Masked]
//     归一化到网络地址，与规范输入产生完全相同的映射
//   - 拒绝 IPv6 zone ID（如 fe80::1%eth0）：zone 信息无法参与范围运算，
//     静默丢弃会造成映射语义偏差
//   - IPv4-mapped IPv6 CIDR（::ffff:a.b.c.d/bits，bits >= 96）归一化为纯 IPv4，
//     bits < 96 时拒绝，保证两侧地址族判定一致
//   - 地址文本一律取 [netip.Addr.String] 的规范形式：IPv4 点分十进制无前导零，
//     IPv6 小写十六进制缩写
//   - 默认枚举上限 [DefaultMaxEntries]，超出返回 [ErrRangeTooLarge]，
//     避免超大前缀（如 IPv4 /8 约 1600 万条）耗尽内存
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xnatmap.Compute("not-an-ip/26", "10.0.1.0/26")
//	if errors.Is(err, xnatmap.ErrInvalidFormat) {
//	    // 输入格式错误
//	}
//
//   - [ErrInvalidFormat]: 无法解析为 address/prefixLength，错误信息包含原始输入
//   - [ErrFamilyMismatch]: 两侧地址族不一致（IPv4 与 IPv6 混用）
//   - [ErrPrefixMismatch]: 两侧前缀长度不一致，错误信息包含双方长度
//   - [ErrRangeTooLarge]: 枚举条目数超过配置上限
//
// 所有失败都以 error 值返回，不产生 panic；成功结果与失败互斥，
// 不返回部分映射。
package xnatmap
