package ir

import "fmt"

// Type discriminates the node union.
type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

var typeNames = map[Type]string{
	NullType:   "null",
	BoolType:   "bool",
	NumberType: "number",
	StringType: "string",
	ArrayType:  "array",
	ObjectType: "object",
}

func (t Type) String() string {
	v, ok := typeNames[t]
	if ok {
		return v
	}
	return fmt.Sprintf("<unknown type %d>", int(t))
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for k, v := range typeNames {
		if v == string(d) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

// Types returns all node types.
func Types() []Type {
	return []Type{NullType, BoolType, NumberType, StringType, ArrayType, ObjectType}
}

// IsLeaf reports whether t is an atomic type.
func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	}
	return true
}
