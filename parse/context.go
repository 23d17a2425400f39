package parse

import (
	"bytes"

	"github.com/pafthang/linkref/ast"
	"github.com/pafthang/linkref/editor"
)

// Context 用于维护解析过程中的上下文。
type Context struct {
	ParseOption *Options // 解析选项

	linkRefDefs map[string]*ast.LinkRefDef // 文档内的链接引用定义表，键为规范化后的标签
}

// Tree 描述了解析树。
type Tree struct {
	Name    string    // 名称，仅用于标识文本
	Root    *ast.Node // 根节点
	Context *Context  // 解析上下文
}

// NewTree 创建一个名为 name 的解析树。
func NewTree(name string, option *Options) (ret *Tree) {
	ret = &Tree{Name: name, Context: &Context{ParseOption: option}}
	ret.Root = &ast.Node{Type: ast.NodeDocument}
	ret.Context.linkRefDefs = map[string]*ast.LinkRefDef{}
	return
}

// RegisterLinkRefDef 将 def 以其规范化标签注册到定义表中。
// 同一标签先注册者生效，后来者被忽略并返回 false。
func (context *Context) RegisterLinkRefDef(def *ast.LinkRefDef) bool {
	if nil == context.linkRefDefs {
		context.linkRefDefs = map[string]*ast.LinkRefDef{}
	}
	if _, exists := context.linkRefDefs[def.Label]; exists {
		return false
	}
	context.linkRefDefs[def.Label] = def
	return true
}

// LinkRefDef 以 label 规范化后的键查找已注册的链接引用定义，未注册时返回 nil。
func (context *Context) LinkRefDef(label []byte) *ast.LinkRefDef {
	return context.linkRefDefs[context.normalizeLinkLabel(label)]
}

// LinkRefDefs 返回已注册的链接引用定义表。
func (context *Context) LinkRefDefs() map[string]*ast.LinkRefDef {
	return context.linkRefDefs
}

// normalizeLinkLabel 规范化 label 作为定义表的查找键，编辑器模式下先移除插入符。
func (context *Context) normalizeLinkLabel(label []byte) string {
	if context.ParseOption.EditorIR || context.ParseOption.EditorSV || context.ParseOption.EditorWYSIWYG || context.ParseOption.ProtyleWYSIWYG {
		label = bytes.ReplaceAll(label, editor.CaretTokens, nil)
	}
	return NormalizeLinkLabel(label)
}
