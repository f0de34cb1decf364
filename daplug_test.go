package daplug

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dual/daplug-base/ir"
	"github.com/dual/daplug-base/merge"
	"github.com/dual/daplug-base/publish"
	"github.com/dual/daplug-base/schema"
)

func TestPipelineRun(t *testing.T) {
	registry := schema.NewRegistry(nil)
	registry.Add("order", mustParse(t, `{
		"definitions": {"item": {"properties": {"sku": {}}}},
		"properties": {
			"id": {},
			"items": {"items": {"$ref": "#/definitions/item"}}
		}
	}`))
	rec := &publish.Recorder{}
	p := &Pipeline{
		Registry: registry,
		Notifier: publish.NewNotifier(rec, nil),
	}

	payload := mustParse(t, `{"id": 5, "items": [{"sku": "a", "junk": 1}], "junk": 2}`)
	overlay := mustParse(t, `{"source": "import"}`)

	out, err := p.Run(context.Background(), "order", payload, overlay)
	require.NoError(t, err)
	require.True(t, ir.Equal(out, mustParse(t, `{"id": 5, "items": [{"sku": "a"}], "source": "import"}`)),
		"projection then merge")

	calls := rec.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "order", calls[0].Subject)
	require.JSONEq(t, `{"id":5,"items":[{"sku":"a"}],"source":"import"}`, string(calls[0].Body))
}

func TestPipelineNoOverlayNoNotifier(t *testing.T) {
	registry := schema.NewRegistry(nil)
	registry.Add("thing", mustParse(t, `{"properties": {"a": {}}}`))
	p := &Pipeline{Registry: registry}

	out, err := p.Run(context.Background(), "thing", mustParse(t, `{"a": 1, "b": 2}`), nil)
	require.NoError(t, err)
	require.True(t, ir.Equal(out, mustParse(t, `{"a": 1}`)))
}

func TestPipelineUnknownSchema(t *testing.T) {
	p := &Pipeline{Registry: schema.NewRegistry(nil)}
	_, err := p.Run(context.Background(), "missing", ir.Null(), nil)
	require.ErrorContains(t, err, "missing")
}

func TestPipelineInvalidMergeConfig(t *testing.T) {
	registry := schema.NewRegistry(nil)
	registry.Add("thing", mustParse(t, `{"properties": {"a": {}}}`))
	p := &Pipeline{
		Registry: registry,
		Merge:    merge.Config{Lists: merge.ListStrategy(99)},
	}
	_, err := p.Run(context.Background(), "thing", ir.Null(), mustParse(t, `{}`))
	require.ErrorContains(t, err, "list strategy")
}
