package lex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorAdvancePeek(t *testing.T) {
	cursor := NewCursor([]byte("[a]: /url"))
	require.Equal(t, 0, cursor.Pos())
	require.Equal(t, 9, cursor.Len())
	require.Equal(t, ItemOpenBracket, cursor.Token())
	require.Equal(t, byte('a'), cursor.Peek(1))

	cursor.Advance(3)
	require.Equal(t, ItemColon, cursor.Token())
	require.Equal(t, []byte(": /url"), cursor.Remains())
	require.False(t, cursor.Eof())

	cursor.Advance(100)
	require.True(t, cursor.Eof())
	require.Equal(t, 9, cursor.Pos())
	require.Equal(t, byte(0), cursor.Token())
	require.Equal(t, byte(0), cursor.Peek(3))
}

func TestCursorMarkReset(t *testing.T) {
	cursor := NewCursor([]byte("[label]: dest"))
	cursor.Advance(2)
	mark := cursor.Mark()
	cursor.Advance(5)
	require.Equal(t, 7, cursor.Pos())

	cursor.ResetTo(mark)
	require.Equal(t, 2, cursor.Pos())
	require.Equal(t, byte('b'), cursor.Token())
}

func TestCursorText(t *testing.T) {
	cursor := NewCursor([]byte("[a]: /url"))
	cursor.Advance(5)
	require.Equal(t, []byte("[a]"), cursor.Text(0, 3))
	require.Equal(t, []byte("/url"), cursor.Text(5, 9))
}

func TestCursorSpanFrom(t *testing.T) {
	cursor := NewCursor([]byte("[a]: /url"))
	mark := cursor.Mark()
	cursor.Advance(3)
	span := cursor.SpanFrom(mark)
	require.Equal(t, 0, span.Start)
	require.Equal(t, 3, span.End)
	require.Equal(t, []byte("[a]"), cursor.Text(span.Start, span.End))

	cursor.Advance(6)
	require.Equal(t, 0, cursor.SpanFrom(cursor.Pos()).Len())
}
