// Package xnatconf 提供映射工具的配置加载。
//
// xnatconf 基于 [github.com/knadh/koanf/v2] 构建，从 YAML/JSON 文件加载
// [Settings]（默认网段、枚举上限、CSV 表头、日志级别等），
// 未出现的键保留 [Default] 的默认值。配合 [Watch] 可在配置文件变更时
// 自动重载（基于 [github.com/fsnotify/fsnotify]，带防抖）。
//
// # 快速示例
//
//	settings, err := xnatconf.Load("/etc/xnat/config.yaml")
//	if err != nil {
//	    // errors.Is(err, xnatconf.ErrInvalidSettings) 等判断具体失败
//	}
//	m, _ := xnatmap.Compute(settings.Source, settings.Target,
//	    xnatmap.WithMaxEntries(settings.MaxEntries))
//
// 配置文件示例（YAML）：
//
//	source: 192.168.1.0/26
//	target: 10.188.65.0/26
//	max_entries: 1048576
//	csv:
//	  source_header: DMZ_IP
//	  target_header: Internal_IP
//	log:
//	  level: info
//	  format: text
//
// # 设计决策
//
//   - 格式由文件扩展名检测（.yaml/.yml/.json），与字节加载时显式指定一致
//   - 加载在 [Default] 基础上覆盖，配置文件只需写差异项
//   - 加载后立即校验（[Settings.Validate]），拒绝无法解析的网段和未知日志级别，
//     错误在加载边界暴露而不是推迟到首次计算
//   - [Watch] 监视配置文件所在目录而非文件本身：编辑器保存时可能先删除再创建，
//     直接监视文件会丢失事件
package xnatconf
