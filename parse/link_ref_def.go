package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/pafthang/linkref/ast"
	"github.com/pafthang/linkref/lex"
	"github.com/pafthang/linkref/util"
)

// TryParseLinkRefDef 尝试从 cursor 当前位置解析一条链接引用定义（快速模式）。
// 解析成功时返回填充好的定义并将 cursor 推进到定义之后（含行尾换行），
// 失败时返回 false 并将 cursor 回退到进入时的位置，不会产生部分填充的定义。
func (t *Tree) TryParseLinkRefDef(cursor *lex.Cursor) (ok bool, def *ast.LinkRefDef) {
	ok, def, _, _, _, _ = t.parseLinkRefDef(cursor, false)
	return
}

// TryParseLinkRefDefVerbatim 尝试从 cursor 当前位置解析一条链接引用定义（逐字模式）。
// 除快速模式的输出外还会填充原始标签、原始地址/标题文本和定界符元数据，
// 并返回标签前、地址前、标题前和标题后的空白区间，供格式化等工具逐字还原原文。
func (t *Tree) TryParseLinkRefDefVerbatim(cursor *lex.Cursor) (ok bool, def *ast.LinkRefDef, wsBeforeLabel, wsBeforeURL, wsBeforeTitle, wsAfterTitle ast.Span) {
	return t.parseLinkRefDef(cursor, true)
}

// ParseLinkRefDefs 从 tokens 的起始位置连续解析链接引用定义并注册到定义表，
// 解析出的定义节点追加到树根下，返回第一条非定义内容的剩余字节。
func (t *Tree) ParseLinkRefDefs(tokens []byte) (remains []byte) {
	cursor := lex.NewCursor(tokens)
	for {
		ok, def := t.TryParseLinkRefDef(cursor)
		if !ok {
			break
		}
		t.Context.RegisterLinkRefDef(def)
		t.Root.AppendChild(def.Node)
	}
	return cursor.Remains()
}

// parseLinkRefDef 按 CommonMark 链接引用定义文法从左到右解析：
// 至多 3 个前导空格、[label]、紧跟的冒号、至多跨一个换行的空白、链接地址、
// 可选的标题（与地址之间必须有空白分隔），地址/标题之后的行内只允许空白。
// verbatim 控制是否额外捕获逐字信息，两种模式共用同一文法例程。
func (t *Tree) parseLinkRefDef(cursor *lex.Cursor, verbatim bool) (ok bool, def *ast.LinkRefDef, wsBeforeLabel, wsBeforeURL, wsBeforeTitle, wsAfterTitle ast.Span) {
	if !t.Context.ParseOption.LinkRef {
		return
	}

	entry := cursor.Mark()

	// 至多 3 个前导空格
	indent := 0
	for lex.ItemSpace == cursor.Token() && 3 > indent {
		cursor.Advance(1)
		indent++
	}
	if lex.ItemSpace == cursor.Token() || lex.ItemTab == cursor.Token() {
		cursor.ResetTo(entry)
		return
	}
	wsBeforeLabel = cursor.SpanFrom(entry)

	labelStart := cursor.Pos()
	rawLabel, okLabel := parseLinkLabel(cursor)
	if !okLabel {
		cursor.ResetTo(entry)
		return
	}
	labelSpan := cursor.SpanFrom(labelStart)

	if lex.ItemColon != cursor.Token() {
		cursor.ResetTo(entry)
		return
	}
	cursor.Advance(1)

	// 地址前的空白，至多跨一个换行
	wsURLStart := cursor.Pos()
	if !spnl(cursor) {
		cursor.ResetTo(entry)
		return
	}
	wsBeforeURL = cursor.SpanFrom(wsURLStart)

	urlStart := cursor.Pos()
	rawDest, dest, pointy, okDest := parseLinkRefDest(cursor)
	if !okDest {
		cursor.ResetTo(entry)
		return
	}
	urlSpan := cursor.SpanFrom(urlStart)

	// 地址后行内的空白
	afterURL := cursor.Pos()
	moved := false
	for lex.ItemSpace == cursor.Token() || lex.ItemTab == cursor.Token() {
		cursor.Advance(1)
		moved = true
	}

	noTitle := cursor.Mark()
	if cursor.Eof() || lex.ItemNewline == cursor.Token() {
		moved = true
		if !cursor.Eof() {
			cursor.Advance(1)
		}
		for lex.ItemSpace == cursor.Token() || lex.ItemTab == cursor.Token() {
			cursor.Advance(1)
		}
	}

	// 标题开始但未能合法闭合时只在行内剩余为空白的情况下回退为无标题，
	// 否则整条定义失败
	var rawTitle, title []byte
	var titleChar byte
	var titleSpan ast.Span
	titleParsed := false
	if moved && !cursor.Eof() {
		titleStart := cursor.Pos()
		if rt, tt, tc, okTitle := parseLinkRefTitle(cursor); okTitle {
			titleEnd := cursor.Pos()
			for lex.ItemSpace == cursor.Token() || lex.ItemTab == cursor.Token() {
				cursor.Advance(1)
			}
			if cursor.Eof() || lex.ItemNewline == cursor.Token() {
				titleParsed = true
				rawTitle, title, titleChar = rt, tt, tc
				titleSpan = ast.Span{Start: titleStart, End: titleEnd}
				wsBeforeTitle = ast.Span{Start: afterURL, End: titleStart}
			}
		}
	}
	if !titleParsed {
		cursor.ResetTo(noTitle)
		wsBeforeTitle = ast.Span{}
	}

	// 地址/标题之后的行内必须为空白
	if !cursor.Eof() && lex.ItemNewline != cursor.Token() {
		cursor.ResetTo(entry)
		return
	}
	if !cursor.Eof() {
		cursor.Advance(1)
	}

	span := ast.Span{Start: labelStart, End: urlSpan.End}
	if titleParsed {
		span.End = titleSpan.End
	}
	wsAfterTitle = cursor.SpanFrom(span.End)

	def = &ast.LinkRefDef{
		Label:     t.Context.normalizeLinkLabel(rawLabel),
		URL:       util.BytesToStr(dest),
		LabelSpan: labelSpan,
		URLSpan:   urlSpan,
		Span:      span,
	}
	def.Node = &ast.Node{Type: ast.NodeLinkRefDef, Tokens: lex.TrimWhitespace(rawLabel), LinkRefDef: def}
	if titleParsed {
		def.Title = util.BytesToStr(title)
		def.TitleEnclosingCharacter = titleChar
		def.TitleSpan = titleSpan
	}
	if verbatim {
		def.LabelWithWhitespace = string(rawLabel)
		def.UnescapedURL = string(rawDest)
		def.URLHasPointyBrackets = pointy
		def.WhitespaceBeforeURL = wsBeforeURL
		if titleParsed {
			def.UnescapedTitle = string(rawTitle)
			def.WhitespaceBeforeTitle = wsBeforeTitle
		}
	}
	ok = true
	return
}

// parseLinkLabel 从 cursor 当前位置解析 [label] 形式的链接标签并返回方括号内的原始文本。
// 标签内不允许出现未转义的方括号，方括号内至多 999 个字符且必须包含非空白字符。
func parseLinkLabel(cursor *lex.Cursor) (rawLabel []byte, ok bool) {
	tokens := cursor.Remains()
	if lex.ItemOpenBracket != lex.Peek(tokens, 0) {
		return
	}

	length := len(tokens)
	for i := 1; i < length; i++ {
		token := tokens[i]
		if lex.ItemCloseBracket == token {
			if 999 < i-1 {
				return
			}
			label := tokens[1:i]
			if 1 > len(lex.TrimWhitespace(label)) {
				return
			}
			rawLabel = label
			cursor.Advance(i + 1)
			ok = true
			return
		}
		if lex.ItemOpenBracket == token {
			return
		}
		if lex.ItemBackslash == token && i+1 < length {
			i++
		}
	}
	return
}

// parseLinkRefDest 从 cursor 当前位置解析链接地址。
// 地址使用 <...> 包裹时内部不允许换行和未转义的 <，
// 裸地址不允许空白和控制字符，未转义的括号必须配对。
// rawDest 为原文中书写的地址（不含尖括号），dest 为处理转义后的地址。
func parseLinkRefDest(cursor *lex.Cursor) (rawDest, dest []byte, pointy, ok bool) {
	tokens := cursor.Remains()
	length := len(tokens)
	if 1 > length {
		return
	}

	if lex.ItemLess == tokens[0] {
		pointy = true
		for i := 1; i < length; i++ {
			token := tokens[i]
			if lex.ItemNewline == token || lex.ItemLess == token {
				return
			}
			if lex.ItemGreater == token {
				rawDest = tokens[1:i]
				dest = lex.UnescapeBytes(rawDest)
				cursor.Advance(i + 1)
				ok = true
				return
			}
			if lex.ItemBackslash == token && i+1 < length && lex.IsASCIIPunct(tokens[i+1]) {
				i++
			}
		}
		return
	}

	var openParens, i int
	for ; i < length; i++ {
		token := tokens[i]
		if lex.IsWhitespace(token) || lex.IsControl(token) {
			break
		}
		if lex.ItemBackslash == token && i+1 < length && lex.IsASCIIPunct(tokens[i+1]) {
			i++
			continue
		}
		if lex.ItemOpenParen == token {
			openParens++
			if 32 < openParens {
				return
			}
		}
		if lex.ItemCloseParen == token {
			if 1 > openParens {
				break
			}
			openParens--
		}
	}
	if 0 != openParens || 1 > i {
		return
	}
	rawDest = tokens[:i]
	dest = lex.UnescapeBytes(rawDest)
	cursor.Advance(i)
	ok = true
	return
}

// parseLinkRefTitle 从 cursor 当前位置解析链接标题，定界符为成对的 "、' 或 (...)。
// 括号标题内不允许未转义的 (，标题内不允许空行。
// rawTitle 为原文中书写的标题（不含定界符），title 为处理转义后的标题。
func parseLinkRefTitle(cursor *lex.Cursor) (rawTitle, title []byte, titleChar byte, ok bool) {
	tokens := cursor.Remains()
	length := len(tokens)
	if 1 > length {
		return
	}

	opener := tokens[0]
	if lex.ItemDoublequote != opener && lex.ItemSinglequote != opener && lex.ItemOpenParen != opener {
		return
	}
	closer := opener
	if lex.ItemOpenParen == opener {
		closer = lex.ItemCloseParen
	}

	for i := 1; i < length; i++ {
		token := tokens[i]
		if closer == token {
			rawTitle = tokens[1:i]
			title = lex.UnescapeBytes(rawTitle)
			titleChar = opener
			cursor.Advance(i + 1)
			ok = true
			return
		}
		if lex.ItemOpenParen == token && lex.ItemCloseParen == closer {
			return
		}
		if lex.ItemNewline == token {
			j := i + 1
			for ; j < length && (lex.ItemSpace == tokens[j] || lex.ItemTab == tokens[j]); j++ {
			}
			if j < length && lex.ItemNewline == tokens[j] {
				return
			}
		}
		if lex.ItemBackslash == token && i+1 < length && lex.IsASCIIPunct(tokens[i+1]) {
			i++
		}
	}
	return
}

// spnl 吃掉 cursor 当前位置起的连续空白，该空白至多跨一个换行。
func spnl(cursor *lex.Cursor) bool {
	ok, passed, _ := lex.Spnl(cursor.Remains())
	if !ok {
		return false
	}
	cursor.Advance(len(passed))
	return true
}

// collapseLinkLabelWhitespace 合并 label 内部的 Unicode 空白为单个空格、
// 去掉两端空白并转换 ASCII 大写字母为小写，同时报告是否包含非 ASCII 字符。
func collapseLinkLabelWhitespace(label []byte) (ret string, hasNonASCII bool) {
	var b strings.Builder
	b.Grow(len(label))
	space := false
	for _, r := range string(label) {
		if lex.IsUnicodeWhitespace(r) {
			space = true
			continue
		}
		if space && 0 < b.Len() {
			b.WriteByte(' ')
		}
		space = false
		if 'A' <= r && 'Z' >= r {
			r += 'a' - 'A'
		}
		if utf8.RuneSelf <= r {
			hasNonASCII = true
		}
		b.WriteRune(r)
	}
	return b.String(), hasNonASCII
}
