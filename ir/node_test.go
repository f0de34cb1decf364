package ir

import (
	"testing"
)

func TestCloneNoAliasing(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"a": FromInt(1),
		"b": FromSlice([]*Node{FromString("x"), FromBool(true)}),
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatalf("clone not equal to original")
	}
	cp.Values[0].Int64 = ptrInt(42)
	cp.Values[1].Values[0].String = "mutated"
	if v := Get(orig, "a"); *v.Int64 != 1 {
		t.Errorf("mutating clone changed original: got %d", *v.Int64)
	}
	if v := Get(orig, "b"); v.Values[0].String != "x" {
		t.Errorf("mutating clone changed original: got %q", v.Values[0].String)
	}
}

func ptrInt(v int64) *int64 { return &v }

func TestGet(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"x": FromInt(1),
		"y": Null(),
	})
	if v := Get(obj, "x"); v == nil || *v.Int64 != 1 {
		t.Errorf("Get(x) = %v", v)
	}
	if v := Get(obj, "y"); v == nil || v.Type != NullType {
		t.Errorf("Get(y) = %v", v)
	}
	if v := Get(obj, "z"); v != nil {
		t.Errorf("Get(z) = %v, want nil", v)
	}
}

func TestFromMapDeterministicOrder(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"c": FromInt(3),
		"a": FromInt(1),
		"b": FromInt(2),
	})
	want := []string{"a", "b", "c"}
	for i, f := range obj.Fields {
		if f.String != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.String, want[i])
		}
	}
}

func TestPath(t *testing.T) {
	root := FromMap(map[string]*Node{
		"spec": FromMap(map[string]*Node{
			"items": FromSlice([]*Node{
				FromMap(map[string]*Node{"name": FromString("x")}),
			}),
		}),
	})
	if got := root.Path(); got != "$" {
		t.Errorf("root path = %q", got)
	}
	leaf := Get(Get(Get(root, "spec"), "items").Values[0], "name")
	if got := leaf.Path(); got != "$.spec.items[0].name" {
		t.Errorf("leaf path = %q", got)
	}
}
