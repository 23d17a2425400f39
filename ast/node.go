package ast

// NodeType 描述了节点的类型。
type NodeType int

const (
	// NodeDocument 文档根节点。
	NodeDocument NodeType = iota
	// NodeParagraph 段落节点。
	NodeParagraph
	// NodeText 文本节点。
	NodeText
	// NodeLinkRefDef 链接引用定义节点。
	NodeLinkRefDef
	// NodeLink 链接节点。
	NodeLink
	// NodeImage 图片节点。
	NodeImage
	// NodeLinkText 链接文本节点。
	NodeLinkText
	// NodeLinkDest 链接地址节点。
	NodeLinkDest
	// NodeLinkTitle 链接标题节点。
	NodeLinkTitle
	// NodeLinkLabel 链接标签节点。
	NodeLinkLabel
	// NodeOpenBracket 开方括号 [ 节点。
	NodeOpenBracket
	// NodeCloseBracket 闭方括号 ] 节点。
	NodeCloseBracket
	// NodeBang 叹号 ! 节点。
	NodeBang
)

var nodeTypeStrs = map[NodeType]string{
	NodeDocument:     "NodeDocument",
	NodeParagraph:    "NodeParagraph",
	NodeText:         "NodeText",
	NodeLinkRefDef:   "NodeLinkRefDef",
	NodeLink:         "NodeLink",
	NodeImage:        "NodeImage",
	NodeLinkText:     "NodeLinkText",
	NodeLinkDest:     "NodeLinkDest",
	NodeLinkTitle:    "NodeLinkTitle",
	NodeLinkLabel:    "NodeLinkLabel",
	NodeOpenBracket:  "NodeOpenBracket",
	NodeCloseBracket: "NodeCloseBracket",
	NodeBang:         "NodeBang",
}

func (typ NodeType) String() string {
	return nodeTypeStrs[typ]
}

// Node 描述了节点结构。
type Node struct {
	Type       NodeType // 节点类型
	Parent     *Node    // 父节点
	Previous   *Node    // 前一个兄弟节点
	Next       *Node    // 后一个兄弟节点
	FirstChild *Node    // 第一个子节点
	LastChild  *Node    // 最后一个子节点
	Tokens     []byte   // 节点内容字节数组

	LinkRefDef *LinkRefDef // 类型为 NodeLinkRefDef 时关联的链接引用定义
}

// AppendChild 在 n 的子节点最后再添加一个子节点 child。
func (n *Node) AppendChild(child *Node) {
	child.Unlink()
	child.Parent = n
	if nil != n.LastChild {
		n.LastChild.Next = child
		child.Previous = n.LastChild
		n.LastChild = child
	} else {
		n.FirstChild = child
		n.LastChild = child
	}
}

// InsertAfter 在 n 后插入兄弟节点 sibling。
func (n *Node) InsertAfter(sibling *Node) {
	sibling.Unlink()
	sibling.Next = n.Next
	if nil != sibling.Next {
		sibling.Next.Previous = sibling
	}
	sibling.Previous = n
	n.Next = sibling
	sibling.Parent = n.Parent
	if nil == sibling.Next && nil != sibling.Parent {
		sibling.Parent.LastChild = sibling
	}
}

// Unlink 将 n 从节点树上移除。
func (n *Node) Unlink() {
	if nil != n.Previous {
		n.Previous.Next = n.Next
	} else if nil != n.Parent {
		n.Parent.FirstChild = n.Next
	}
	if nil != n.Next {
		n.Next.Previous = n.Previous
	} else if nil != n.Parent {
		n.Parent.LastChild = n.Previous
	}
	n.Parent = nil
	n.Next = nil
	n.Previous = nil
}

// Text 返回 n 及其文本子节点的文本值。
func (n *Node) Text() (ret string) {
	buf := make([]byte, 0, 64)
	Walk(n, func(node *Node, entering bool) WalkStatus {
		if !entering {
			return WalkContinue
		}
		switch node.Type {
		case NodeText, NodeLinkText:
			buf = append(buf, node.Tokens...)
		}
		return WalkContinue
	})
	return string(buf)
}
