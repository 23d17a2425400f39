package editor

// Caret 插入符 ‸。
const Caret = "‸"

// CaretNewline 插入符加换行。
const CaretNewline = Caret + "\n"

// CaretTokens 是插入符的字节数组。
var CaretTokens = []byte(Caret)

// CaretRune 是插入符的 Rune。
var CaretRune = []rune(Caret)[0]
