package parse

import (
	"testing"

	"github.com/pafthang/linkref/ast"
	"github.com/pafthang/linkref/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree() *Tree {
	return NewTree("test", NewOptions())
}

func TestTryParseLinkRefDef(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		ok        bool
		label     string
		url       string
		title     string
		titleChar byte
	}{
		{"基本形式", `[a]: /url "title"`, true, "a", "/url", "title", '"'},
		{"无标题", `[a]: /url`, true, "a", "/url", "", 0},
		{"单引号标题", `[a]: /url 'title'`, true, "a", "/url", "title", '\''},
		{"括号标题", `[a]: /url (title)`, true, "a", "/url", "title", '('},
		{"前导空格", `   [a]: /url`, true, "a", "/url", "", 0},
		{"四个前导空格", `    [a]: /url`, false, "", "", "", 0},
		{"标签大小写折叠", `[ΑΓΩ]: /φου`, true, "αγω", "/φου", "", 0},
		{"标签空白合并", "[Foo\n   Bar]: /url", true, "foo bar", "/url", "", 0},
		{"尖括号地址", `[a]: <b)c> "t"`, true, "a", "b)c", "t", '"'},
		{"尖括号空地址", `[a]: <>`, true, "a", "", "", 0},
		{"地址转义", `[a]: /url\(1\)`, true, "a", "/url(1)", "", 0},
		{"地址配对括号", `[a]: /url(a(b)c)`, true, "a", "/url(a(b)c)", "", 0},
		{"标题转义", `[a]: /url "ti\"tle"`, true, "a", "/url", `ti"tle`, '"'},
		{"跨行定义", "[a]:\n/url", true, "a", "/url", "", 0},
		{"跨行标题", "[a]: /url\n'title'", true, "a", "/url", "title", '\''},
		{"多行标题", "[a]: /url 'line1\nline2'", true, "a", "/url", "line1\nline2", '\''},
		{"缺少冒号", `[a] /url`, false, "", "", "", 0},
		{"缺少地址", `[a]:`, false, "", "", "", 0},
		{"空白标签", "[ \t ]: /url", false, "", "", "", 0},
		{"标签内未转义方括号", `[a[b]: /url`, false, "", "", "", 0},
		{"地址前空行", "[a]:\n\n/url", false, "", "", "", 0},
		{"地址前多个换行", "[a]:\n\n\n/url", false, "", "", "", 0},
		{"未闭合标题", `[a]: /url "unterminated`, false, "", "", "", 0},
		{"标题后跟非空白", `[a]: /url "title" ok`, false, "", "", "", 0},
		{"地址后跟非空白", `[a]: <bar>(baz)`, false, "", "", "", 0},
		{"地址内未闭合括号", `[a]: /url(`, false, "", "", "", 0},
		{"标题内空行", "[a]: /url 'title\n\nline'", false, "", "", "", 0},
		{"尖括号地址内换行", "[a]: <a\nb>", false, "", "", "", 0},
		{"尖括号地址内反斜杠换行", "[a]: <a\\\nb>", false, "", "", "", 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tree := newTestTree()
			cursor := lex.NewCursor([]byte(test.input))
			ok, def := tree.TryParseLinkRefDef(cursor)
			require.Equal(t, test.ok, ok, "input %q", test.input)
			if !test.ok {
				require.Nil(t, def)
				require.Equal(t, 0, cursor.Pos(), "解析失败时游标应回退到进入位置")
				return
			}

			require.NotNil(t, def)
			assert.Equal(t, test.label, def.Label)
			assert.Equal(t, test.url, def.URL)
			assert.Equal(t, test.title, def.Title)
			assert.Equal(t, test.titleChar, def.TitleEnclosingCharacter)
			require.NotNil(t, def.Node)
			assert.Equal(t, ast.NodeLinkRefDef, def.Node.Type)
			assert.Same(t, def, def.Node.LinkRefDef)
		})
	}
}

func TestLinkRefDefSpanEnd(t *testing.T) {
	tree := newTestTree()
	input := []byte(`[a]: /url "title"`)
	ok, def := tree.TryParseLinkRefDef(lex.NewCursor(input))
	require.True(t, ok)
	// 有标题时整体区间止于标题
	assert.Equal(t, def.TitleSpan.End, def.Span.End)
	assert.Equal(t, `"title"`, string(input[def.TitleSpan.Start:def.TitleSpan.End]))
	assert.Equal(t, `[a]`, string(input[def.LabelSpan.Start:def.LabelSpan.End]))
	assert.Equal(t, `/url`, string(input[def.URLSpan.Start:def.URLSpan.End]))

	tree = newTestTree()
	input = []byte("[a]: /url  \n")
	ok, def = tree.TryParseLinkRefDef(lex.NewCursor(input))
	require.True(t, ok)
	// 无标题时整体区间止于地址
	assert.Equal(t, def.URLSpan.End, def.Span.End)
	assert.True(t, def.TitleSpan.IsZero())
	assert.Equal(t, byte(0), def.TitleEnclosingCharacter)
}

func TestTryParseLinkRefDefVerbatim(t *testing.T) {
	tree := newTestTree()
	input := []byte("  [Foo  Bar]: \n  <my url> \t 'the title'  \nrest")
	cursor := lex.NewCursor(input)
	ok, def, wsBeforeLabel, wsBeforeURL, wsBeforeTitle, wsAfterTitle := tree.TryParseLinkRefDefVerbatim(cursor)
	require.True(t, ok)

	assert.Equal(t, "foo bar", def.Label)
	assert.Equal(t, "Foo  Bar", def.LabelWithWhitespace)
	assert.Equal(t, "my url", def.URL)
	assert.Equal(t, "my url", def.UnescapedURL)
	assert.True(t, def.URLHasPointyBrackets)
	assert.Equal(t, "the title", def.Title)
	assert.Equal(t, "the title", def.UnescapedTitle)
	assert.Equal(t, byte('\''), def.TitleEnclosingCharacter)

	// 逐字模式的区间拼接还原原文
	reconstructed := string(input[wsBeforeLabel.Start:wsBeforeLabel.End]) +
		string(input[def.LabelSpan.Start:def.LabelSpan.End]) + ":" +
		string(input[wsBeforeURL.Start:wsBeforeURL.End]) +
		string(input[def.URLSpan.Start:def.URLSpan.End]) +
		string(input[wsBeforeTitle.Start:wsBeforeTitle.End]) +
		string(input[def.TitleSpan.Start:def.TitleSpan.End])
	assert.Equal(t, string(input[:def.Span.End]), reconstructed)
	assert.Equal(t, def.Span.End, wsAfterTitle.Start)
	assert.Equal(t, cursor.Pos(), wsAfterTitle.End)
	assert.Equal(t, "rest", string(cursor.Remains()))

	assert.Equal(t, def.WhitespaceBeforeURL, wsBeforeURL)
	assert.Equal(t, def.WhitespaceBeforeTitle, wsBeforeTitle)
}

func TestTryParseLinkRefDefVerbatimEscapes(t *testing.T) {
	tree := newTestTree()
	input := []byte(`[a]: /u\(rl\) "ti\"tle"`)
	ok, def, _, _, _, _ := tree.TryParseLinkRefDefVerbatim(lex.NewCursor(input))
	require.True(t, ok)
	assert.Equal(t, `/u\(rl\)`, def.UnescapedURL)
	assert.Equal(t, "/u(rl)", def.URL)
	assert.False(t, def.URLHasPointyBrackets)
	assert.Equal(t, `ti\"tle`, def.UnescapedTitle)
	assert.Equal(t, `ti"tle`, def.Title)
}

func TestParseLinkRefDefsStacked(t *testing.T) {
	tree := newTestTree()
	input := []byte("[foo]: /url1\n[bar]: /url2 \"b\"\n[foo]: /dup\npara text\n")
	remains := tree.ParseLinkRefDefs(input)
	assert.Equal(t, "para text\n", string(remains))

	require.NotNil(t, tree.Context.LinkRefDef([]byte("foo")))
	require.NotNil(t, tree.Context.LinkRefDef([]byte("BAR")))
	// 同一标签先注册者生效
	assert.Equal(t, "/url1", tree.Context.LinkRefDef([]byte("foo")).URL)

	cnt := 0
	for n := tree.Root.FirstChild; nil != n; n = n.Next {
		require.Equal(t, ast.NodeLinkRefDef, n.Type)
		cnt++
	}
	assert.Equal(t, 3, cnt)
}

func TestParseLinkRefDefTitleFallback(t *testing.T) {
	// 跨行标题未合法闭合时回退为无标题，标题行保留为普通内容
	tree := newTestTree()
	input := []byte("[foo]: /url\n\"title\" ok\n")
	cursor := lex.NewCursor(input)
	ok, def := tree.TryParseLinkRefDef(cursor)
	require.True(t, ok)
	assert.Equal(t, "", def.Title)
	assert.Equal(t, byte(0), def.TitleEnclosingCharacter)
	assert.Equal(t, "\"title\" ok\n", string(cursor.Remains()))
}

func TestRegisterLinkRefDefFirstWins(t *testing.T) {
	tree := newTestTree()
	ok, first := tree.TryParseLinkRefDef(lex.NewCursor([]byte("[x]: /first")))
	require.True(t, ok)
	ok, second := tree.TryParseLinkRefDef(lex.NewCursor([]byte("[X]: /second")))
	require.True(t, ok)

	require.True(t, tree.Context.RegisterLinkRefDef(first))
	require.False(t, tree.Context.RegisterLinkRefDef(second))
	assert.Equal(t, "/first", tree.Context.LinkRefDef([]byte("x")).URL)
	assert.Equal(t, 1, len(tree.Context.LinkRefDefs()))
}

func TestLinkRefOptionDisabled(t *testing.T) {
	option := NewOptions()
	option.LinkRef = false
	tree := NewTree("test", option)
	ok, def := tree.TryParseLinkRefDef(lex.NewCursor([]byte("[a]: /url")))
	assert.False(t, ok)
	assert.Nil(t, def)
}
