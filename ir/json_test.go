package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJSONRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`42`,
		`2.5`,
		`"hello"`,
		`[]`,
		`[1,2.5,"s",true,null]`,
		`{"a":{"b":[1,{"c":null}]}}`,
	}
	for _, doc := range docs {
		n, err := FromJSON([]byte(doc))
		if err != nil {
			t.Fatalf("FromJSON(%s): %v", doc, err)
		}
		out, err := ToJSON(n)
		if err != nil {
			t.Fatalf("ToJSON(%s): %v", doc, err)
		}
		back, err := FromJSON(out)
		if err != nil {
			t.Fatalf("FromJSON(round %s): %v", doc, err)
		}
		if !Equal(n, back) {
			t.Errorf("round trip of %s changed value: %s", doc, out)
		}
	}
}

func TestFromJSONIntegersStayIntegers(t *testing.T) {
	n, err := FromJSON([]byte(`{"count": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	v := Get(n, "count")
	if v.Int64 == nil || *v.Int64 != 3 {
		t.Errorf("integer decoded as %+v, want Int64=3", v)
	}
	out, err := ToJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"count":3}` {
		t.Errorf("encoded %s, want {\"count\":3}", out)
	}
}

func TestToJSONAny(t *testing.T) {
	n, err := FromJSON([]byte(`{"b": [1, 2.5, null], "a": {"ok": true}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": map[string]any{"ok": true},
		"b": []any{int64(1), 2.5, nil},
	}
	if d := cmp.Diff(want, ToJSONAny(n)); d != "" {
		t.Errorf("ToJSONAny mismatch (-want +got):\n%s", d)
	}
}

func TestFromJSONAnyRejectsOpaque(t *testing.T) {
	type opaque struct{ X int }
	if _, err := FromJSONAny(opaque{X: 1}); err == nil {
		t.Error("expected error for unsupported type")
	}
}
