// Package linkref 提供了结构化 Markdown 引擎中链接引用定义（[label]: url "title"）的
// 解析、规范化与解析期查找支持，支持 Go 和 JavaScript。
package linkref

import (
	"github.com/pafthang/linkref/ast"
	"github.com/pafthang/linkref/lex"
	"github.com/pafthang/linkref/parse"
	"github.com/pafthang/linkref/util"
)

const Version = "1.0.0"

// LinkRef 描述了链接引用定义子系统的顶层使用入口。
type LinkRef struct {
	ParseOptions *parse.Options // 解析选项
}

// New 创建一个新的链接引用定义解析引擎。
//
// 默认启用的解析选项：
//   - 链接引用定义支持
func New(opts ...ParseOption) (ret *LinkRef) {
	ret = &LinkRef{ParseOptions: parse.NewOptions()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// NewTree 创建一个名为 name 的解析树，供 TryParseLinkRefDef 等低层入口使用。
func (lr *LinkRef) NewTree(name string) *parse.Tree {
	return parse.NewTree(name, lr.ParseOptions)
}

// ParseLinkRefDefs 解析 input 起始处连续的链接引用定义并注册到返回的树上，
// remains 为第一条非定义内容的剩余字节。name 参数仅用于标识文本，可以传入 ""。
func (lr *LinkRef) ParseLinkRefDefs(name string, input []byte) (tree *parse.Tree, remains []byte) {
	tree = parse.NewTree(name, lr.ParseOptions)
	remains = tree.ParseLinkRefDefs(input)
	return
}

// ParseLinkRefDefsStr 接受 string 类型的 input 后直接调用 ParseLinkRefDefs 进行处理。
func (lr *LinkRef) ParseLinkRefDefsStr(name, input string) (tree *parse.Tree, remains string) {
	tree, remainsBytes := lr.ParseLinkRefDefs(name, util.StrToBytes(input))
	remains = util.BytesToStr(remainsBytes)
	return
}

// TryParseLinkRefDefSync 在独立的树上下文中解析 input 起始处的一条链接引用定义，
// 解析过程中的 panic 会被恢复并通过 err 返回。
func TryParseLinkRefDefSync(input []byte, parseOptions *parse.Options) (def *ast.LinkRefDef, err error) {
	defer util.RecoverPanic(&err)

	tree := parse.NewTree("", parseOptions)
	cursor := lex.NewCursor(input)
	if ok, parsed := tree.TryParseLinkRefDef(cursor); ok {
		def = parsed
	}
	return
}

// ParseOption 描述了解析选项设置函数签名。
type ParseOption func(lr *LinkRef)

// 以下 Setters 主要是给 JavaScript 端导出方法用。

func (lr *LinkRef) SetLinkRef(b bool) {
	lr.ParseOptions.LinkRef = b
}

func (lr *LinkRef) SetEditorWYSIWYG(b bool) {
	lr.ParseOptions.EditorWYSIWYG = b
}

func (lr *LinkRef) SetEditorIR(b bool) {
	lr.ParseOptions.EditorIR = b
}

func (lr *LinkRef) SetEditorSV(b bool) {
	lr.ParseOptions.EditorSV = b
}

func (lr *LinkRef) SetProtyleWYSIWYG(b bool) {
	lr.ParseOptions.ProtyleWYSIWYG = b
}
