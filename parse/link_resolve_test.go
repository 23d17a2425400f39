package parse

import (
	"testing"

	"github.com/pafthang/linkref/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLinkRefDefault(t *testing.T) {
	tree := newTestTree()
	tree.ParseLinkRefDefs([]byte("[foo]: /url \"title\"\n"))

	// 短横引用形式，child 为 nil
	link := tree.ResolveLinkRef([]byte("Foo"), nil, false)
	require.NotNil(t, link)
	assert.Equal(t, ast.NodeLink, link.Type)
	assert.Equal(t, "foo", link.Text())

	// 完整引用形式，带已解析的链接文本
	child := &ast.Node{Type: ast.NodeLinkText, Tokens: []byte("显示文本")}
	link = tree.ResolveLinkRef([]byte("foo"), child, false)
	require.NotNil(t, link)
	assert.Equal(t, "显示文本", link.Text())

	// 未注册的标签
	assert.Nil(t, tree.ResolveLinkRef([]byte("bar"), nil, false))
}

func TestResolveLinkRefImage(t *testing.T) {
	tree := newTestTree()
	tree.ParseLinkRefDefs([]byte("[img]: /pic.png\n"))

	image := tree.ResolveLinkRef([]byte("img"), nil, true)
	require.NotNil(t, image)
	assert.Equal(t, ast.NodeImage, image.Type)
	assert.Equal(t, ast.NodeBang, image.FirstChild.Type)
}

func TestResolveLinkRefHook(t *testing.T) {
	tree := newTestTree()
	tree.ParseLinkRefDefs([]byte("[foo]: /url\n"))
	def := tree.Context.LinkRefDef([]byte("foo"))
	require.NotNil(t, def)

	var gotImage bool
	var gotDef *ast.LinkRefDef
	def.InlineCreationHook = func(ctx ast.LinkRefResolveContext, d *ast.LinkRefDef, child *ast.Node) *ast.Node {
		gotImage = ctx.ResolveAsImage()
		gotDef = d
		return &ast.Node{Type: ast.NodeText, Tokens: []byte("custom")}
	}

	made := tree.ResolveLinkRef([]byte("foo"), nil, true)
	require.NotNil(t, made)
	assert.Equal(t, ast.NodeText, made.Type)
	assert.Equal(t, "custom", string(made.Tokens))
	assert.True(t, gotImage)
	assert.Same(t, def, gotDef)
}

func TestResolveLinkRefHookFallback(t *testing.T) {
	tree := newTestTree()
	tree.ParseLinkRefDefs([]byte("[foo]: /url\n"))
	def := tree.Context.LinkRefDef([]byte("foo"))
	require.NotNil(t, def)

	// 钩子返回 nil 时走默认构造
	def.InlineCreationHook = func(ctx ast.LinkRefResolveContext, d *ast.LinkRefDef, child *ast.Node) *ast.Node {
		return nil
	}
	link := tree.ResolveLinkRef([]byte("foo"), nil, false)
	require.NotNil(t, link)
	assert.Equal(t, ast.NodeLink, link.Type)
}
