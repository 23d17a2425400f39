//go:build !javascript
// +build !javascript

package parse

import (
	"bytes"

	"github.com/pafthang/linkref/ast"
	"github.com/pafthang/linkref/editor"
	"golang.org/x/text/cases"
)

// NormalizeLinkLabel 规范化链接标签：合并内部空白为单个空格、去掉两端空白并做
// Unicode 大小写折叠，两个标签规范化后相等时指向同一个引用目标。
// 纯 ASCII 标签走快路径，不经过 cases.Fold。
func NormalizeLinkLabel(label []byte) string {
	ret, hasNonASCII := collapseLinkLabelWhitespace(label)
	if !hasNonASCII {
		return ret
	}
	return cases.Fold().String(ret)
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

		if c := cases.Fold(); bytes.EqualFold(c.Bytes(label), n.Tokens) || bytes.EqualFold(c.Bytes(n.Tokens), label) {
			link = t.resolveDef(n.LinkRefDef, nil, false)
			return ast.WalkStop
		}
		return ast.WalkContinue
	})
	return
}
