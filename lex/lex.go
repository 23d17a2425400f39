package lex

import (
	"unicode"
)

const (
	ItemBackslash    = byte('\\')
	ItemNewline      = byte('\n')
	ItemCarriage     = byte('\r')
	ItemSpace        = byte(' ')
	ItemTab          = byte('\t')
	ItemOpenBracket  = byte('[')
	ItemCloseBracket = byte(']')
	ItemColon        = byte(':')
	ItemLess         = byte('<')
	ItemGreater      = byte('>')
	ItemDoublequote  = byte('"')
	ItemSinglequote  = byte('\'')
	ItemOpenParen    = byte('(')
	ItemCloseParen   = byte(')')
	ItemBang         = byte('!')
)

// Peek 返回 tokens 中 pos 位置的字节，越界时返回 0。
func Peek(tokens []byte, pos int) byte {
	if pos < len(tokens) {
		return tokens[pos]
	}
	return 0
}

// IsWhitespace 判断 token 是否是空白。
func IsWhitespace(token byte) bool {
	return ItemSpace == token || ItemNewline == token || ItemTab == token || '' == token || '' == token || '' == token
}

// IsUnicodeWhitespace 判断 r 是否是 Unicode 空白。
func IsUnicodeWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsControl 判断 token 是否是控制字符。
func IsControl(token byte) bool {
	return token < 0x20 || 0x7F == token
}

// IsASCIIPunct 判断 token 是否是 ASCII 标点符号。
func IsASCIIPunct(token byte) bool {
	return (0x21 <= token && 0x2F >= token) || (0x3A <= token && 0x40 >= token) || (0x5B <= token && 0x60 >= token) || (0x7B <= token && 0x7E >= token)
}

// IsBackslashEscapePunct 判断 tokens 中 pos 所指的标点是否被反斜杠转义。
func IsBackslashEscapePunct(tokens []byte, pos int) bool {
	if !IsASCIIPunct(tokens[pos]) {
		return false
	}

	backslashes := 0
	for i := pos - 1; 0 <= i; i-- {
		if ItemBackslash != tokens[i] {
			break
		}
		backslashes++
	}
	return 0 != backslashes%2
}

// TrimWhitespace 去掉 tokens 两端的空白。
func TrimWhitespace(tokens []byte) (ret []byte) {
	_, ret = TrimLeft(tokens)
	length := len(ret)
	for ; 0 < length; length-- {
		if !IsWhitespace(ret[length-1]) {
			break
		}
	}
	return ret[:length]
}

// TrimLeft 去掉 tokens 左端的空白并返回去掉的部分。
func TrimLeft(tokens []byte) (whitespaces, remains []byte) {
	length := len(tokens)
	var i int
	for ; i < length; i++ {
		if !IsWhitespace(tokens[i]) {
			break
		}
	}
	return tokens[:i], tokens[i:]
}

// Spnl 吃掉 tokens 左端的连续空白，该空白最多包含一个换行，超过一个换行时返回 ok 为 false。
func Spnl(tokens []byte) (ok bool, passed, remains []byte) {
	remains = tokens
	length := len(tokens)
	linebreaks := 0
	var i int
	for ; i < length; i++ {
		token := tokens[i]
		if !IsWhitespace(token) {
			break
		}
		if ItemNewline == token {
			linebreaks++
			if 1 < linebreaks {
				return
			}
		}
	}
	passed = tokens[:i]
	remains = tokens[i:]
	ok = true
	return
}

// UnescapeBytes 还原 tokens 中的反斜杠转义，即把 \ 后跟的 ASCII 标点还原为标点本身。
func UnescapeBytes(tokens []byte) (ret []byte) {
	length := len(tokens)
	ret = make([]byte, 0, length)
	for i := 0; i < length; i++ {
		token := tokens[i]
		if ItemBackslash == token && i+1 < length && IsASCIIPunct(tokens[i+1]) {
			continue
		}
		ret = append(ret, token)
	}
	return
}
