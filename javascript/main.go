package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/pafthang/linkref"
	"github.com/pafthang/linkref/editor"
	"github.com/pafthang/linkref/parse"
)

func main() {
	js.Global.Set("LinkRef", map[string]interface{}{
		"Version":        linkref.Version,
		"New":            New,
		"NormalizeLabel": NormalizeLabel,
		"ParseDef":       ParseDef,
		"Caret":          editor.Caret,
	})
}

func New() *js.Object {
	return js.MakeWrapper(linkref.New())
}

func NormalizeLabel(label string) string {
	return parse.NormalizeLinkLabel([]byte(label))
}

// ParseDef 解析 input 起始处的一条链接引用定义并返回字段字典，解析失败时返回 nil。
func ParseDef(input string) map[string]interface{} {
	def, err := linkref.TryParseLinkRefDefSync([]byte(input), parse.NewOptions())
	if nil != err || nil == def {
		return nil
	}

	ret := map[string]interface{}{
		"label": def.Label,
		"url":   def.URL,
	}
	if def.HasTitle() {
		ret["title"] = def.Title
		ret["titleEnclosingCharacter"] = string(def.TitleEnclosingCharacter)
	}
	return ret
}
