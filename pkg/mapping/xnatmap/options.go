package xnatmap

// DefaultMaxEntries 是 [Compute] 默认的枚举条目上限。
// 覆盖到 IPv4 /12（约 104 万主机）；更大的块（如 /8 约 1600 万条）
// 需要调用方通过 [WithMaxEntries] 显式放宽。
const DefaultMaxEntries uint64 = 1 << 20

// Options 定义映射计算选项。
type Options struct {
	// MaxEntries 枚举条目数上限，超过返回 [ErrRangeTooLarge]。
	// 0 表示不限制（块大小超出 uint64 可计数范围时仍然拒绝）。
	MaxEntries uint64
}

// Option 定义映射计算选项函数类型。
type Option func(*Options)

// defaultOptions 返回默认计算选项。
func defaultOptions() *Options {
	return &Options{
		MaxEntries: DefaultMaxEntries,
	}
}

// WithMaxEntries 设置枚举条目数上限。
// n == 0 表示不限制，调用方自行承担大范围枚举的内存开销。
func WithMaxEntries(n uint64) Option {
	return func(o *Options) {
		o.MaxEntries = n
	}
}
