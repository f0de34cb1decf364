package merge

import (
	"testing"

	"github.com/dual/daplug-base/ir"
)

func TestMergePatchJSON(t *testing.T) {
	doc := []byte(`{"a":1,"b":{"x":1},"c":3}`)
	patch := []byte(`{"b":{"y":2},"c":null}`)
	got, err := MergePatchJSON(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	gotNode := mustParse(t, string(got))
	want := mustParse(t, `{"a":1,"b":{"x":1,"y":2}}`)
	if !ir.Equal(gotNode, want) {
		t.Errorf("got %s", got)
	}
}
