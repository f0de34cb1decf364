package schema

import (
	"testing"

	"github.com/dual/daplug-base/ir"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := ir.FromJSON([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return n
}

func TestComposeAllOfOverrideOrder(t *testing.T) {
	s := mustParse(t, `{
		"allOf": [
			{"properties": {"a": {"type": "string"}}},
			{"properties": {"a": {"type": "number"}, "b": {}}}
		]
	}`)
	composed := Compose(s)
	props := ir.Get(composed, "properties")
	if props == nil {
		t.Fatal("composed node has no properties")
	}
	if !ir.Equal(ir.Get(props, "a"), mustParse(t, `{"type":"number"}`)) {
		t.Errorf("later allOf entry should win on collision")
	}
	if ir.Get(props, "b") == nil {
		t.Errorf("union should keep non-colliding properties")
	}
}

func TestComposeOwnPropertiesWin(t *testing.T) {
	s := mustParse(t, `{
		"allOf": [{"properties": {"a": {"type": "string"}}}],
		"properties": {"a": {"type": "bool"}}
	}`)
	props := ir.Get(Compose(s), "properties")
	if !ir.Equal(ir.Get(props, "a"), mustParse(t, `{"type":"bool"}`)) {
		t.Errorf("node's own properties should apply last")
	}
}

func TestComposeIdempotent(t *testing.T) {
	s := mustParse(t, `{
		"allOf": [
			{"properties": {"a": {}}},
			{"allOf": [{"properties": {"b": {}}}]}
		]
	}`)
	once := Compose(s)
	twice := Compose(once)
	if !ir.Equal(once, twice) {
		t.Errorf("composing a composed node should be a no-op")
	}
}

func TestComposeSelfRepetition(t *testing.T) {
	entry := `{"properties": {"a": {}, "b": {"type": "number"}}}`
	single := Compose(mustParse(t, `{"allOf": [`+entry+`]}`))
	repeated := Compose(mustParse(t, `{"allOf": [`+entry+`,`+entry+`]}`))
	if !ir.Equal(ir.Get(single, "properties"), ir.Get(repeated, "properties")) {
		t.Errorf("repeating an entry in allOf should not change the effective node")
	}
}

func TestComposeNoAllOfPassesThrough(t *testing.T) {
	s := mustParse(t, `{"properties": {"a": {}}}`)
	if Compose(s) != s {
		t.Errorf("node without allOf should be returned unchanged")
	}
}

func TestComposeDoesNotMutateInput(t *testing.T) {
	s := mustParse(t, `{"allOf": [{"properties": {"a": {}}}]}`)
	before := s.Clone()
	Compose(s)
	if !ir.Equal(s, before) {
		t.Errorf("compose mutated its input")
	}
}
