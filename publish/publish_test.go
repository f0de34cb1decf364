package publish

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dual/daplug-base/ir"
)

func TestNotifierPublishesJSON(t *testing.T) {
	rec := &Recorder{}
	n := NewNotifier(rec, nil)

	node, err := ir.FromJSON([]byte(`{"id": 1, "name": "x"}`))
	require.NoError(t, err)

	err = n.NotifyNode(context.Background(), "orders.shaped", node, map[string]string{"source": "test"})
	require.NoError(t, err)

	calls := rec.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "orders.shaped", calls[0].Subject)
	require.JSONEq(t, `{"id":1,"name":"x"}`, string(calls[0].Body))
	require.Equal(t, "test", calls[0].Attrs["source"])
}

func TestNotifierPropagatesPublishError(t *testing.T) {
	boom := errors.New("publish boom")
	rec := &Recorder{Err: boom}
	n := NewNotifier(rec, nil)

	err := n.NotifyNode(context.Background(), "s", ir.Null(), nil)
	require.ErrorIs(t, err, boom)
	// the call is still recorded, matching broker behavior of failing
	// after accepting the frame
	require.Len(t, rec.Calls(), 1)
}
