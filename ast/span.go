package ast

// Span 描述了一段以字节偏移表示的原文区间，区间为左闭右开 [Start, End)。
type Span struct {
	Start int // 起始偏移
	End   int // 结束偏移
}

// IsZero 返回区间是否为零值。
func (span Span) IsZero() bool {
	return 0 == span.Start && 0 == span.End
}

// Len 返回区间长度。
func (span Span) Len() int {
	return span.End - span.Start
}
