package parse

// Options 描述了解析选项。
type Options struct {
	// LinkRef 设置是否启用链接引用定义解析支持。
	LinkRef bool
	// EditorWYSIWYG 设置是否启用编辑器所见即所得模式。
	EditorWYSIWYG bool
	// EditorIR 设置是否启用编辑器即时渲染模式。
	EditorIR bool
	// EditorSV 设置是否启用编辑器分屏预览模式。
	EditorSV bool
	// ProtyleWYSIWYG 设置是否启用 Protyle 所见即所得模式。
	ProtyleWYSIWYG bool
}

// NewOptions 创建一个默认的解析选项。
func NewOptions() *Options {
	return &Options{
		LinkRef: true,
	}
}
