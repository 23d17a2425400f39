package ast

// LinkRefResolveContext 描述了内联解析阶段调用创建钩子时传入的上下文能力。
type LinkRefResolveContext interface {
	// TreeName 返回当前解析树的名称。
	TreeName() string

	// ResolveAsImage 返回当前引用是否以图片（![label]）形式解析。
	ResolveAsImage() bool
}

// InlineCreationFunc 定义了链接引用定义解析为内联节点时的创建函数签名。
// child 为 [text][label] 形式中已解析出的链接文本节点，短横引用（[label]）时为 nil。
// 返回 nil 表示使用默认的链接/图片节点构造。
type InlineCreationFunc func(ctx LinkRefResolveContext, def *LinkRefDef, child *Node) *Node

// LinkRefDef 描述了一条链接引用定义（[label]: url "title"）。
// 成功解析后除 InlineCreationHook 外所有字段均不再变更。
type LinkRefDef struct {
	Node *Node // 关联的叶子块节点，类型为 NodeLinkRefDef，Tokens 为原始标签

	Label                   string // 规范化后的标签，作为查找键
	LabelWithWhitespace     string // 原始标签文本，保留内部空白，仅逐字模式填充
	URL                     string // 处理转义后的链接地址
	UnescapedURL            string // 原文中书写的链接地址，未处理转义
	URLHasPointyBrackets    bool   // 原文地址是否使用 <...> 包裹
	Title                   string // 处理转义后的标题，无标题时为空
	UnescapedTitle          string // 原文中书写的标题，未处理转义
	TitleEnclosingCharacter byte   // 标题定界符，" ' 或 (，无标题时为 0

	LabelSpan Span // 标签区间，含方括号
	URLSpan   Span // 地址区间，含尖括号（如果有）
	TitleSpan Span // 标题区间，含定界符，无标题时为零值
	Span      Span // 整体区间，起于标签，止于标题或地址

	WhitespaceBeforeURL   Span // 地址前的空白区间，仅逐字模式填充
	WhitespaceBeforeTitle Span // 标题前的空白区间，仅逐字模式填充

	// InlineCreationHook 可在注册前由所有者设置一次，用于按定义覆盖内联节点构造。
	InlineCreationHook InlineCreationFunc
}

// HasTitle 返回该定义是否携带标题。
func (def *LinkRefDef) HasTitle() bool {
	return 0 != def.TitleEnclosingCharacter
}
