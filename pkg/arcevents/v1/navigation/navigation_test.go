package navigation_test

import (
	"context"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/navigation"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate_DispatchesRouteAndOptions(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Record(target, eventtypes.Navigate)

	opts := map[string]interface{}{"tab": 2}
	require.NoError(t, navigation.Navigate(context.Background(), target, "history", opts))

	require.Equal(t, 1, rec.Len())
	e, ok := rec.Last().(*navigation.NavigateEvent)
	require.True(t, ok)
	assert.Equal(t, "history", e.Route())
	assert.Equal(t, opts, e.Options())
}

func TestNavigate_RequiresRoute(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Record(target, eventtypes.Navigate)

	err := navigation.Navigate(context.Background(), target, "", nil)
	require.Error(t, err)
	assert.EqualError(t, err, "Expected route argument as string.")
	assert.Equal(t, 0, rec.Len(), "nothing is dispatched when construction fails")
}

func TestNewRequestEvent(t *testing.T) {
	e, err := navigation.NewRequestEvent("r1", types.RequestSaved, "")
	require.NoError(t, err)
	assert.Equal(t, eventtypes.NavigateRequest, e.Type())
	assert.Equal(t, "r1", e.RequestID())
	assert.Equal(t, types.RequestSaved, e.RequestType())
	assert.Equal(t, navigation.ActionOpen, e.Action())

	_, err = navigation.NewRequestEvent("", types.RequestSaved, "")
	assert.EqualError(t, err, "Expected requestId argument as string.")
	_, err = navigation.NewRequestEvent("r1", "", "")
	assert.EqualError(t, err, "Expected requestType argument as string.")
}

func TestNavigateProject_Defaults(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Record(target, eventtypes.NavigateProject)

	require.NoError(t, navigation.NavigateProject(context.Background(), target, "p1", "", ""))

	e := rec.Last().(*navigation.ProjectEvent)
	assert.Equal(t, "p1", e.ID())
	assert.Equal(t, navigation.ActionOpen, e.Action())
	assert.Equal(t, navigation.RouteDetail, e.Route())
}

func TestNavigateRestAPI(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Record(target, eventtypes.NavigateRestAPI)

	require.NoError(t, navigation.NavigateRestAPI(context.Background(), target, "api1", "", navigation.ActionDetail))
	e := rec.Last().(*navigation.RestAPIEvent)
	assert.Equal(t, "api1", e.API())
	assert.Equal(t, navigation.VersionLatest, e.Version())
	assert.Equal(t, navigation.ActionDetail, e.Action())

	err := navigation.NavigateRestAPI(context.Background(), target, "api1", "v1", "")
	assert.True(t, arcerrors.IsArgumentError(err))
	assert.Equal(t, 1, rec.Len())
}

func TestNavigateExternalAndHelpTopic(t *testing.T) {
	target := eventtest.NewTarget()
	external := eventtest.Record(target, eventtypes.NavigateExternal)
	help := eventtest.Record(target, eventtypes.NavigateHelp)

	require.NoError(t, navigation.NavigateExternal(context.Background(), target, "https://example.com"))
	require.NoError(t, navigation.HelpTopic(context.Background(), target, "variables"))

	assert.Equal(t, "https://example.com", external.Last().(*navigation.ExternalEvent).URL())
	assert.Equal(t, "variables", help.Last().(*navigation.HelpTopicEvent).Topic())

	assert.EqualError(t, navigation.NavigateExternal(context.Background(), target, ""), "Expected url argument as string.")
	assert.EqualError(t, navigation.HelpTopic(context.Background(), target, ""), "Expected topic argument as string.")
}
