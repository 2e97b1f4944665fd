package model_test

import (
	"context"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/model"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestEventsCarryKind(t *testing.T) {
	target := eventtest.NewTarget()
	ctx := context.Background()
	req := &types.Request{Name: "ping", HTTPRequest: types.HTTPRequest{URL: "https://example.com", Method: "GET"}}
	update := eventtest.Respond(target, eventtypes.RequestUpdate, events.ChangeRecord[types.Request]{ID: "q1", Rev: "r1", Item: req})
	readBulk := eventtest.Respond(target, eventtypes.RequestReadBulk, []*types.Request{req})

	got, err := model.UpdateRequest(ctx, target, types.RequestSaved, req)
	require.NoError(t, err)
	assert.Equal(t, "q1", got.ID)
	e := update.Last().(*model.RequestUpdateEvent)
	assert.Equal(t, types.RequestSaved, e.Kind())
	assert.Same(t, req, e.Item())
	assert.Equal(t, types.RequestSaved, e.Detail().(map[string]interface{})["type"])

	items, err := model.ReadRequestBulk(ctx, target, types.RequestHistory, []string{"q1"})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, []string{"q1"}, readBulk.Last().(*model.RequestReadBulkEvent).IDs())
}

func TestRequestKindRequired(t *testing.T) {
	target := eventtest.NewTarget()
	ctx := context.Background()

	_, err := model.ReadRequest(ctx, target, "", "q1", "")
	assert.EqualError(t, err, "Expected type argument as string.")
	_, err = model.DeleteRequest(ctx, target, "archive", "q1", "")
	assert.EqualError(t, err, "Expected type argument as string.")
	_, err = model.ListRequests(ctx, target, "", events.ListOptions{})
	assert.EqualError(t, err, "Expected type argument as string.")
	_, err = model.DeleteRequest(ctx, target, types.RequestSaved, "", "")
	assert.EqualError(t, err, "Expected id argument as string.")
}

func TestQueryRequestsAcceptsEmptyKind(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Respond(target, eventtypes.RequestQuery, []*types.Request{})

	_, err := model.QueryRequests(context.Background(), target, "example", "", true)
	require.NoError(t, err)
	e := rec.Last().(*model.RequestQueryEvent)
	assert.Equal(t, "example", e.Term())
	assert.True(t, e.Detailed())
	assert.Empty(t, e.Kind())
}

func TestDeleteAndUndeleteBulk(t *testing.T) {
	target := eventtest.NewTarget()
	ctx := context.Background()
	deleted := []events.DeletedRecord{{ID: "q1", Rev: "r2"}, {ID: "q2", Rev: "r5"}}
	eventtest.Respond(target, eventtypes.RequestDeleteBulk, deleted)
	undo := eventtest.Respond(target, eventtypes.RequestUndeleteBulk, []events.ChangeRecord[types.Request]{{ID: "q1", Rev: "r3"}})

	got, err := model.DeleteRequestBulk(ctx, target, types.RequestHistory, []string{"q1", "q2"})
	require.NoError(t, err)
	assert.Equal(t, deleted, got)

	restored, err := model.UndeleteRequestBulk(ctx, target, types.RequestHistory, got)
	require.NoError(t, err)
	assert.Len(t, restored, 1)
	assert.Equal(t, deleted, undo.Last().(*model.RequestUndeleteBulkEvent).Records())

	_, err = model.UndeleteRequestBulk(ctx, target, types.RequestHistory, []events.DeletedRecord{{Rev: "r1"}})
	assert.EqualError(t, err, "Expected records argument as array.")
}

func TestRequestStateDelete(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Record(target, eventtypes.RequestStateDelete)

	require.NoError(t, model.NotifyRequestDeleted(context.Background(), target, types.RequestSaved, "t1", "r1"))
	e := rec.Last().(*model.RequestStateDeleteEvent)
	assert.Equal(t, "t1", e.ID())
	assert.Equal(t, "r1", e.Rev())
	assert.Equal(t, types.RequestSaved, e.Kind())
}
