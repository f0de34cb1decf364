package schema

import (
	"github.com/dual/daplug-base/debug"
	"github.com/dual/daplug-base/ir"
)

// Project reshapes payload to exactly match schema's declared shape.
// Every key in the composed schema's properties appears in the output,
// absent-marked when the payload lacks it; payload keys the schema does
// not declare are dropped. Neither input is mutated and the result
// shares no nodes with either.
//
// Project is total: kind mismatches and malformed schema nodes degrade
// (see the package comment) rather than failing.
func Project(payload, schema *ir.Node) *ir.Node {
	res, ok := project(payload, schema)
	if !ok {
		return Absent()
	}
	return res
}

// project returns the projected node and whether the payload produced a
// value at all. Threading presence explicitly keeps "no value" distinct
// from a payload null all the way up the recursion.
func project(payload, schema *ir.Node) (*ir.Node, bool) {
	kind := Kind(schema)
	if debug.Project() && schema != nil {
		debug.Logf("project %s node at %s\n", kind, schema.Path())
	}
	switch kind {
	case KindObject:
		return projectObject(payload, schema)
	case KindArray:
		return projectArray(payload, schema)
	default:
		if payload == nil {
			return nil, false
		}
		return payload.Clone(), true
	}
}

func projectObject(payload, schema *ir.Node) (*ir.Node, bool) {
	effective := Compose(schema)
	props := ir.Get(effective, "properties")
	if props == nil || props.Type != ir.ObjectType {
		// Composition of allOf entries without properties.
		return &ir.Node{Type: ir.ObjectType}, true
	}
	var payloadMap map[string]*ir.Node
	if payload != nil && payload.Type == ir.ObjectType {
		payloadMap = ir.ToMap(payload)
	}
	out := make(map[string]*ir.Node, len(props.Fields))
	for i, f := range props.Fields {
		sub, ok := project(payloadMap[f.String], props.Values[i])
		if !ok {
			out[f.String] = Absent()
			continue
		}
		out[f.String] = sub
	}
	return ir.FromMap(out), true
}

func projectArray(payload, schema *ir.Node) (*ir.Node, bool) {
	items := ir.Get(schema, "items")
	if payload == nil || payload.Type != ir.ArrayType {
		return ir.FromSlice(nil), true
	}
	out := make([]*ir.Node, 0, len(payload.Values))
	for _, elt := range payload.Values {
		sub, ok := project(elt, items)
		if !ok {
			sub = Absent()
		}
		out = append(out, sub)
	}
	return ir.FromSlice(out), true
}
