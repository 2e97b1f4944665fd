package appconfig_test

import (
	"context"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/appconfig"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	target := eventtest.NewTarget()
	cfg := types.Config{"request": map[string]interface{}{"timeout": 90}}
	eventtest.Respond(target, eventtypes.ConfigReadAll, cfg)

	got, err := appconfig.ReadAll(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestReadAll_Unhandled(t *testing.T) {
	got, err := appconfig.ReadAll(context.Background(), eventtest.NewTarget())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdate(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Respond(target, eventtypes.ConfigUpdate, events.Void{})

	require.NoError(t, appconfig.Update(context.Background(), target, "request.timeout", 30))

	e := rec.Last().(*appconfig.UpdateEvent)
	assert.Equal(t, "request.timeout", e.Key())
	assert.Equal(t, 30, e.Value())

	err := appconfig.Update(context.Background(), target, "", 30)
	assert.EqualError(t, err, "Expected key argument as string.")
	assert.Equal(t, 1, rec.Len())
}

func TestNotifyUpdated(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Record(target, eventtypes.ConfigStateUpdate)

	require.NoError(t, appconfig.NotifyUpdated(context.Background(), target, "ui.theme", "dark"))
	e := rec.Last().(*appconfig.StateUpdateEvent)
	assert.Equal(t, "ui.theme", e.Key())
	assert.Equal(t, "dark", e.Value())
}
