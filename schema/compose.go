package schema

import (
	"github.com/dual/daplug-base/ir"
)

// Compose flattens a schema node's allOf chain into a single effective
// object node: the union of all composed nodes' properties, later allOf
// entries overriding earlier ones on key collision, and the node's own
// properties applied last. Entries may themselves carry allOf chains.
//
// Composing a node without allOf returns it unchanged, so Compose is
// idempotent. The input is never mutated.
func Compose(schema *ir.Node) *ir.Node {
	if schema == nil || schema.Type != ir.ObjectType {
		return schema
	}
	allOf := ir.Get(schema, "allOf")
	if allOf == nil || allOf.Type != ir.ArrayType {
		return schema
	}
	props := make(map[string]*ir.Node)
	for _, entry := range allOf.Values {
		mergeProperties(props, Compose(entry))
	}
	own := &ir.Node{Type: ir.ObjectType}
	for i, f := range schema.Fields {
		if f.String == "allOf" {
			continue
		}
		own.Fields = append(own.Fields, f)
		own.Values = append(own.Values, schema.Values[i])
	}
	mergeProperties(props, own)
	effective := ir.ToMap(own.Clone())
	effective["properties"] = ir.FromMap(props)
	return ir.FromMap(effective)
}

func mergeProperties(dst map[string]*ir.Node, schema *ir.Node) {
	if schema == nil || schema.Type != ir.ObjectType {
		return
	}
	props := ir.Get(schema, "properties")
	if props == nil || props.Type != ir.ObjectType {
		return
	}
	for i, f := range props.Fields {
		dst[f.String] = props.Values[i].Clone()
	}
}
