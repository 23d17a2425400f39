package lex

import (
	"github.com/pafthang/linkref/ast"
)

// Cursor 描述了在字节序列上按位置前进的游标，支持保存位置后回退，
// 解析失败时调用方应通过 ResetTo 回退到进入时保存的位置。
type Cursor struct {
	tokens []byte
	pos    int
}

// NewCursor 基于 tokens 创建一个游标，起始位置为 0。
func NewCursor(tokens []byte) *Cursor {
	return &Cursor{tokens: tokens}
}

// Pos 返回游标当前位置。
func (c *Cursor) Pos() int {
	return c.pos
}

// Len 返回底层字节序列长度。
func (c *Cursor) Len() int {
	return len(c.tokens)
}

// Eof 返回游标是否已到达末尾。
func (c *Cursor) Eof() bool {
	return c.pos >= len(c.tokens)
}

// Token 返回当前位置的字节，已到末尾时返回 0。
func (c *Cursor) Token() byte {
	return Peek(c.tokens, c.pos)
}

// Peek 返回当前位置偏移 offset 处的字节，越界时返回 0。
func (c *Cursor) Peek(offset int) byte {
	return Peek(c.tokens, c.pos+offset)
}

// Advance 将游标前进 n 个字节，不会越过末尾。
func (c *Cursor) Advance(n int) {
	c.pos += n
	if length := len(c.tokens); c.pos > length {
		c.pos = length
	}
}

// Remains 返回当前位置到末尾的字节。
func (c *Cursor) Remains() []byte {
	return c.tokens[c.pos:]
}

// Text 返回 [start, end) 区间的字节。
func (c *Cursor) Text(start, end int) []byte {
	return c.tokens[start:end]
}

// SpanFrom 返回从 start 到当前位置的区间。
func (c *Cursor) SpanFrom(start int) ast.Span {
	return ast.Span{Start: start, End: c.pos}
}

// Mark 保存当前位置。
func (c *Cursor) Mark() int {
	return c.pos
}

// ResetTo 将游标回退到之前通过 Mark 保存的位置。
func (c *Cursor) ResetTo(mark int) {
	c.pos = mark
}
