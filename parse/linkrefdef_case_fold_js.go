//go:build javascript
// +build javascript

package parse

import (
	"bytes"

	"github.com/pafthang/linkref/ast"
	"github.com/pafthang/linkref/editor"
)

// NormalizeLinkLabel 规范化链接标签：合并内部空白为单个空格、去掉两端空白并转换
// ASCII 大写字母为小写。
// JS 版不支持 Unicode case fold https://spec.commonmark.org/0.30/#example-539
// 因为引入 golang.org/x/text/cases 后打包体积太大
func NormalizeLinkLabel(label []byte) string {
	ret, _ := collapseLinkLabelWhitespace(label)
	return ret
}

// FindLinkRefDefLink 在树上以 label 查找链接引用定义并返回按该定义构造出的链接节点。
func (t *Tree) FindLinkRefDefLink(label []byte) (link *ast.Node) {
	if !t.Context.ParseOption.LinkRef {
		return
	}

	if t.Context.ParseOption.EditorIR || t.Context.ParseOption.EditorSV || t.Context.ParseOption.EditorWYSIWYG || t.Context.ParseOption.ProtyleWYSIWYG {
		label = bytes.ReplaceAll(label, editor.CaretTokens, nil)
	}
	ast.Walk(t.Root, func(n *ast.Node, entering bool) ast.WalkStatus {
		if !entering || ast.NodeLinkRefDef != n.Type {
			return ast.WalkContinue
		}
		if bytes.EqualFold(n.Tokens, label) {
			link = t.resolveDef(n.LinkRefDef, nil, false)
			return ast.WalkStop
		}
		return ast.WalkContinue
	})
	return
}
