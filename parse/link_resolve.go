package parse

import (
	"github.com/pafthang/linkref/ast"
	"github.com/pafthang/linkref/util"
)

// resolveContext 实现了 ast.LinkRefResolveContext，在调用创建钩子时传入。
type resolveContext struct {
	tree  *Tree
	image bool
}

func (ctx *resolveContext) TreeName() string {
	return ctx.tree.Name
}

func (ctx *resolveContext) ResolveAsImage() bool {
	return ctx.image
}

// ResolveLinkRef 以 label 查找已注册的链接引用定义并构造内联节点。
// child 为 [text][label] 完整引用形式中已解析出的链接文本节点，
// 短横引用（[label]、[label][]）时传 nil；image 为 true 时按图片引用（![label]）解析。
// 未注册该标签时返回 nil，调用方应将原文按普通文本处理。
func (t *Tree) ResolveLinkRef(label []byte, child *ast.Node, image bool) *ast.Node {
	if !t.Context.ParseOption.LinkRef {
		return nil
	}

	def := t.Context.LinkRefDef(label)
	if nil == def {
		return nil
	}
	return t.resolveDef(def, child, image)
}

// resolveDef 优先调用定义上的创建钩子，钩子缺失或返回 nil 时走默认构造。
func (t *Tree) resolveDef(def *ast.LinkRefDef, child *ast.Node, image bool) *ast.Node {
	ctx := &resolveContext{tree: t, image: image}
	if nil != def.InlineCreationHook {
		if made := def.InlineCreationHook(ctx, def, child); nil != made {
			return made
		}
	}
	return buildLinkRefNode(ctx, def, child)
}

// buildLinkRefNode 按默认规则将定义构造为链接或图片节点。
func buildLinkRefNode(ctx ast.LinkRefResolveContext, def *ast.LinkRefDef, child *ast.Node) (ret *ast.Node) {
	ret = &ast.Node{Type: ast.NodeLink}
	if ctx.ResolveAsImage() {
		ret.Type = ast.NodeImage
		ret.AppendChild(&ast.Node{Type: ast.NodeBang})
	}
	ret.AppendChild(&ast.Node{Type: ast.NodeOpenBracket})
	if nil == child {
		child = &ast.Node{Type: ast.NodeLinkText, Tokens: def.Node.Tokens}
	}
	ret.AppendChild(child)
	ret.AppendChild(&ast.Node{Type: ast.NodeCloseBracket})
	ret.AppendChild(&ast.Node{Type: ast.NodeLinkDest, Tokens: util.StrToBytes(def.URL)})
	if def.HasTitle() {
		ret.AppendChild(&ast.Node{Type: ast.NodeLinkTitle, Tokens: util.StrToBytes(def.Title)})
	}
	return
}
