package cookies_test

import (
	"context"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/cookies"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sid = &types.Cookie{Name: "sid", Value: "s3cr3t", Domain: "example.com", Path: "/"}

func TestListVariants(t *testing.T) {
	target := eventtest.NewTarget()
	all := eventtest.Respond(target, eventtypes.CookieListAll, []*types.Cookie{sid})
	domain := eventtest.Respond(target, eventtypes.CookieListDomain, []*types.Cookie{sid})
	url := eventtest.Respond(target, eventtypes.CookieListURL, []*types.Cookie{})
	ctx := context.Background()

	got, err := cookies.ListAll(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, []*types.Cookie{sid}, got)
	assert.Equal(t, 1, all.Len())

	got, err = cookies.ListDomain(ctx, target, "example.com")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "example.com", domain.Last().(*cookies.ListEvent).Domain())

	got, err = cookies.ListURL(ctx, target, "https://example.com/a")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "https://example.com/a", url.Last().(*cookies.ListEvent).URL())

	_, err = cookies.ListDomain(ctx, target, "")
	assert.EqualError(t, err, "Expected domain argument as string.")
	_, err = cookies.ListURL(ctx, target, "")
	assert.EqualError(t, err, "Expected url argument as string.")
}

func TestUpdateAndDelete(t *testing.T) {
	target := eventtest.NewTarget()
	update := eventtest.Respond(target, eventtypes.CookieUpdate, events.Void{})
	bulk := eventtest.Respond(target, eventtypes.CookieUpdateBulk, events.Void{})
	del := eventtest.Respond(target, eventtypes.CookieDelete, events.Void{})
	delURL := eventtest.Respond(target, eventtypes.CookieDeleteURL, events.Void{})
	ctx := context.Background()

	require.NoError(t, cookies.Update(ctx, target, sid))
	assert.Same(t, sid, update.Last().(*cookies.UpdateEvent).Cookie())

	require.NoError(t, cookies.UpdateBulk(ctx, target, []*types.Cookie{sid}))
	assert.Len(t, bulk.Last().(*cookies.BulkEvent).Cookies(), 1)

	require.NoError(t, cookies.Delete(ctx, target, []*types.Cookie{}))
	assert.Empty(t, del.Last().(*cookies.BulkEvent).Cookies(), "an empty list is a legal no-op")

	require.NoError(t, cookies.DeleteURL(ctx, target, "https://example.com", "sid"))
	e := delURL.Last().(*cookies.DeleteURLEvent)
	assert.Equal(t, "https://example.com", e.URL())
	assert.Equal(t, "sid", e.Name())

	assert.EqualError(t, cookies.Update(ctx, target, nil), "Expected cookie argument as object.")
	assert.EqualError(t, cookies.UpdateBulk(ctx, target, nil), "Expected cookies argument as array.")
	assert.EqualError(t, cookies.Delete(ctx, target, []*types.Cookie{nil}), "Expected cookies argument as array.")
}

func TestStateNotifications(t *testing.T) {
	target := eventtest.NewTarget()
	updated := eventtest.Record(target, eventtypes.CookieStateUpdate)
	deleted := eventtest.Record(target, eventtypes.CookieStateDelete)
	ctx := context.Background()

	require.NoError(t, cookies.NotifyUpdated(ctx, target, sid))
	require.NoError(t, cookies.NotifyDeleted(ctx, target, sid))

	assert.Same(t, sid, updated.Last().(*cookies.StateEvent).Value())
	assert.Same(t, sid, deleted.Last().(*cookies.StateEvent).Value())
	assert.EqualError(t, cookies.NotifyUpdated(ctx, target, nil), "Expected cookie argument as object.")
}
