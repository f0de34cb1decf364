package ir

import (
	"encoding/json"
	"fmt"
	"math"
)

// FromJSON decodes a JSON document into a node tree.
func FromJSON(d []byte) (*Node, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return FromJSONAny(v)
}

// ToJSON encodes a node tree as a JSON document. The projector's absent
// markers encode as null.
func ToJSON(node *Node) ([]byte, error) {
	return json.Marshal(ToJSONAny(node))
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return ToJSON(n)
}

func (n *Node) UnmarshalJSON(d []byte) error {
	parsed, err := FromJSON(d)
	if err != nil {
		return err
	}
	parsed.CloneTo(n)
	return nil
}

// FromJSONAny converts a decoded JSON value (or a value assembled
// programmatically from maps, slices and scalars) into a node tree.
func FromJSONAny(v any) (*Node, error) {
	switch vv := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return vv.Clone(), nil
	case bool:
		return FromBool(vv), nil
	case string:
		return FromString(vv), nil
	case int:
		return FromInt(int64(vv)), nil
	case int64:
		return FromInt(vv), nil
	case uint64:
		if vv > math.MaxInt64 {
			return nil, fmt.Errorf("number %d overflows int64", vv)
		}
		return FromInt(int64(vv)), nil
	case float64:
		// encoding/json decodes all numbers as float64; keep exact
		// integers as Int64 so round-trips stay stable.
		if vv == math.Trunc(vv) && math.Abs(vv) < 1<<53 {
			return FromInt(int64(vv)), nil
		}
		return FromFloat(vv), nil
	case json.Number:
		if i, err := vv.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := vv.Float64()
		if err != nil {
			return nil, fmt.Errorf("unrepresentable number %q", vv.String())
		}
		return FromFloat(f), nil
	case []any:
		values := make([]*Node, len(vv))
		for i, elt := range vv {
			n, err := FromJSONAny(elt)
			if err != nil {
				return nil, err
			}
			values[i] = n
		}
		return FromSlice(values), nil
	case map[string]any:
		nMap := make(map[string]*Node, len(vv))
		for k, elt := range vv {
			n, err := FromJSONAny(elt)
			if err != nil {
				return nil, err
			}
			nMap[k] = n
		}
		return FromMap(nMap), nil
	case map[any]any:
		// YAML decoders may produce interface-keyed maps.
		nMap := make(map[string]*Node, len(vv))
		for k, elt := range vv {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string object key %v", k)
			}
			n, err := FromJSONAny(elt)
			if err != nil {
				return nil, err
			}
			nMap[ks] = n
		}
		return FromMap(nMap), nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a structured value", v)
	}
}

// ToJSONAny converts a node tree to plain Go values suitable for
// encoding/json. Object keys come out in field order.
func ToJSONAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i].String] = ToJSONAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToJSONAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return 0
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
