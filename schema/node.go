// Package schema implements the schema projector and the schema
// registry/resolver feeding it.
//
// A schema node is an opaque ir object describing one shape constraint:
// an object node carries a "properties" object (and optionally "allOf",
// an array of further schema nodes composed before projection), an array
// node carries an "items" schema node, and anything else is a leaf
// through which payload values pass unchanged.
//
// Projection is best-effort by policy: malformed schema nodes degrade to
// leaves and payload/schema kind mismatches degrade to absent or empty
// output. Project never returns an error.
package schema

import (
	"fmt"

	"github.com/dual/daplug-base/ir"
)

// NodeKind classifies a schema node's shape constraint.
type NodeKind int

const (
	KindLeaf NodeKind = iota
	KindObject
	KindArray
)

func (k NodeKind) String() string {
	v, ok := map[NodeKind]string{
		KindLeaf:   "leaf",
		KindObject: "object",
		KindArray:  "array",
	}[k]
	if ok {
		return v
	}
	return fmt.Sprintf("<unknown kind %d>", int(k))
}

// Kind classifies a schema node. A node is an array schema if it carries
// an "items" field, an object schema if it carries a "properties" object
// or an "allOf" array, and a leaf otherwise. Nodes whose declared
// structure is malformed (e.g. "properties" holding a scalar) fall
// through to leaf, which makes projection pass the payload through.
func Kind(node *ir.Node) NodeKind {
	if node == nil || node.Type != ir.ObjectType {
		return KindLeaf
	}
	if ir.Get(node, "items") != nil {
		return KindArray
	}
	if props := ir.Get(node, "properties"); props != nil && props.Type == ir.ObjectType {
		return KindObject
	}
	if allOf := ir.Get(node, "allOf"); allOf != nil && allOf.Type == ir.ArrayType {
		return KindObject
	}
	return KindLeaf
}

// AbsentTag marks fields the schema requires but the payload lacked.
const AbsentTag = "!absent"

// Absent returns the no-value marker: a null node tagged so consumers
// can tell it apart from a present null. It encodes to JSON as null.
func Absent() *ir.Node {
	return ir.Null().WithTag(AbsentTag)
}

// IsAbsent reports whether n is the projector's no-value marker.
func IsAbsent(n *ir.Node) bool {
	return n != nil && n.Type == ir.NullType && n.Tag == AbsentTag
}
