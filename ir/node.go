// Package ir defines the structured value representation shared by the
// merge engine and the schema projector.
//
// A Node is a recursive tagged union: null, bool, number, string, array
// or object. For ObjectType nodes, Fields[i] is the key for the value at
// Values[i], so there are always as many fields as values. Fields are
// string typed. Nodes maintain parent links so that any node can report
// its path within a document, which merge and projection trace logging
// relies on.
//
// Nodes are not thread-safe; clone before sharing across goroutines.
package ir

import (
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	// Tag carries out-of-band markers, e.g. the projector's absent marker.
	Tag string

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (n *Node) WithTag(tag string) *Node {
	n.Tag = tag
	return n
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.ParentField = n.ParentField
	dst.Type = n.Type
	dst.Tag = n.Tag
	dst.Values = make([]*Node, len(n.Values))
	dst.Fields = make([]*Node, len(n.Fields))
	for i, nv := range n.Values {
		dstI := &Node{}
		nv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = nv.ParentField
		dst.Values[i] = dstI
	}
	for i, nf := range n.Fields {
		dstI := &Node{}
		nf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = nf.String
		dst.Fields[i] = dstI
	}
	dst.String = n.String
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	dst.Bool = n.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// ToMap returns the fields of an object node keyed by name.
// It returns nil for non-object nodes.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap builds an object node from a field map. Keys are sorted so the
// resulting node has a deterministic field order.
func FromMap(nMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(nMap))
	res.Values = make([]*Node, len(nMap))
	keys := slices.Sorted(maps.Keys(nMap))
	for i, key := range keys {
		v := nMap[key]
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = key
		nField := &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = nField
		res.Values[i] = v
	}
	return res
}

func FromSlice(nSlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(nSlice)),
	}
	for i, v := range nSlice {
		res.Values[i] = v
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

// Get returns the value of field in an object node, or nil if absent.
func Get(n *Node, field string) *Node {
	for i := range n.Fields {
		if n.Fields[i].String == field {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, nn := range n.Values {
			if err := nn.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Path returns a JSONPath-style path of this node's position in its tree,
// e.g. "$.spec.containers[0].name".
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	switch n.Parent.Type {
	case ObjectType:
		return n.Parent.Path() + "." + n.ParentField
	case ArrayType:
		return n.Parent.Path() + "[" + strconv.Itoa(n.ParentIndex) + "]"
	default:
		return n.Parent.Path()
	}
}
