package transport_test

import (
	"context"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/transport"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var editorRequest = &types.EditorRequest{ID: "r1", Request: &types.HTTPRequest{URL: "https://api.example.com", Method: "GET"}}

func TestRequestAndTransport(t *testing.T) {
	target := eventtest.NewTarget()
	ctx := context.Background()
	requested := eventtest.Record(target, eventtypes.TransportRequest)
	transported := eventtest.Record(target, eventtypes.TransportTransport)
	config := &types.TransportConfig{Timeout: 30000, FollowRedirects: true}

	require.NoError(t, transport.Request(ctx, target, editorRequest))
	require.NoError(t, transport.Transport(ctx, target, editorRequest, config))

	e := requested.Last().(*transport.RequestEvent)
	assert.Same(t, editorRequest, e.Request())
	assert.Nil(t, e.Config())
	assert.Same(t, config, transported.Last().(*transport.RequestEvent).Config())
	assert.Equal(t, "https://api.example.com", e.Detail().(map[string]interface{})["url"])

	assert.EqualError(t, transport.Request(ctx, target, nil), "Expected request argument as object.")
	assert.Equal(t, 1, requested.Len())
}

func TestResponseAndAbort(t *testing.T) {
	target := eventtest.NewTarget()
	ctx := context.Background()
	responses := eventtest.Record(target, eventtypes.TransportResponse)
	aborts := eventtest.Record(target, eventtypes.TransportAbort)
	result := &types.TransportResult{ID: "r1", Response: &types.HTTPResponse{Status: 200}}

	require.NoError(t, transport.Response(ctx, target, result))
	assert.Same(t, result, responses.Last().(*transport.ResponseEvent).Value())

	require.NoError(t, transport.Abort(ctx, target, "r1"))
	assert.Equal(t, "r1", aborts.Last().(*transport.AbortEvent).ID())
	assert.EqualError(t, transport.Abort(ctx, target, ""), "Expected id argument as string.")
}
