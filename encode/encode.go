// Package encode renders ir node trees as JSON, optionally colored for
// terminal output.
package encode

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/dual/daplug-base/ir"
)

type EncState struct {
	w      io.Writer
	indent string
	colors *Colors
	err    error
}

// Encode writes node to w as JSON followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{w: w, colors: NoColors()}
	for _, opt := range opts {
		opt(es)
	}
	es.encode(node, 0)
	es.write("\n")
	return es.err
}

func (es *EncState) write(s string) {
	if es.err != nil {
		return
	}
	_, es.err = io.WriteString(es.w, s)
}

func (es *EncState) color(t ir.Type, attr ColorAttr, s string) string {
	f, ok := es.colors.Map[Colorable{Type: t, Attr: attr}]
	if !ok {
		f = es.colors.Default
	}
	return f("%s", s)
}

func (es *EncState) newlineIndent(depth int) {
	if es.indent == "" {
		return
	}
	es.write("\n" + strings.Repeat(es.indent, depth))
}

func (es *EncState) encode(node *ir.Node, depth int) {
	switch node.Type {
	case ir.ObjectType:
		es.encodeObject(node, depth)
	case ir.ArrayType:
		es.encodeArray(node, depth)
	case ir.StringType:
		es.write(es.color(node.Type, ValueColor, quote(node.String)))
	case ir.BoolType:
		es.write(es.color(node.Type, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		es.write(es.color(node.Type, ValueColor, numberString(node)))
	case ir.NullType:
		es.write(es.color(node.Type, ValueColor, "null"))
	}
}

func (es *EncState) encodeObject(node *ir.Node, depth int) {
	if len(node.Fields) == 0 {
		es.write("{}")
		return
	}
	es.write(es.color(node.Type, SepColor, "{"))
	for i := range node.Fields {
		if i > 0 {
			es.write(es.color(node.Type, SepColor, ","))
		}
		es.newlineIndent(depth + 1)
		es.write(es.color(node.Type, FieldColor, quote(node.Fields[i].String)))
		es.write(es.color(node.Type, SepColor, ":"))
		if es.indent != "" {
			es.write(" ")
		}
		es.encode(node.Values[i], depth+1)
	}
	es.newlineIndent(depth)
	es.write(es.color(node.Type, SepColor, "}"))
}

func (es *EncState) encodeArray(node *ir.Node, depth int) {
	if len(node.Values) == 0 {
		es.write("[]")
		return
	}
	es.write(es.color(node.Type, SepColor, "["))
	for i, v := range node.Values {
		if i > 0 {
			es.write(es.color(node.Type, SepColor, ","))
		}
		es.newlineIndent(depth + 1)
		es.encode(v, depth+1)
	}
	es.newlineIndent(depth)
	es.write(es.color(node.Type, SepColor, "]"))
}

func quote(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(d)
}

func numberString(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}
