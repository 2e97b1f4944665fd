package telemetry_test

import (
	"context"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelemetryHits(t *testing.T) {
	target := eventtest.NewTarget()
	ctx := context.Background()
	views := eventtest.Record(target, eventtypes.TelemetryView)
	hits := eventtest.Record(target, eventtypes.TelemetryEvent)
	exceptions := eventtest.Record(target, eventtypes.TelemetryException)
	social := eventtest.Record(target, eventtypes.TelemetrySocial)
	timings := eventtest.Record(target, eventtypes.TelemetryTiming)

	custom := &telemetry.Custom{Dimensions: []telemetry.CustomDimension{{Index: 1, Value: "stable"}}}
	require.NoError(t, telemetry.View(ctx, target, "Request editor", custom))
	require.NoError(t, telemetry.Event(ctx, target, telemetry.EventHit{Category: "Request", Action: "send"}))
	require.NoError(t, telemetry.Exception(ctx, target, "TypeError", false))
	require.NoError(t, telemetry.Social(ctx, target, "github", "star", "repo"))
	require.NoError(t, telemetry.Timing(ctx, target, telemetry.TimingHit{Category: "Transport", Variable: "request", Value: 120}))

	v := views.Last().(*telemetry.ViewEvent)
	assert.Equal(t, "Request editor", v.ScreenName())
	assert.Same(t, custom, v.Custom())
	assert.Equal(t, "send", hits.Last().(*telemetry.EventEvent).Hit().Action)
	assert.False(t, exceptions.Last().(*telemetry.ExceptionEvent).Fatal())
	assert.Equal(t, "repo", social.Last().(*telemetry.SocialEvent).Target())
	assert.Equal(t, int64(120), timings.Last().(*telemetry.TimingEvent).Hit().Value)
}

func TestTelemetryArguments(t *testing.T) {
	target := eventtest.NewTarget()
	ctx := context.Background()

	assert.EqualError(t, telemetry.View(ctx, target, "", nil), "Expected screenName argument as string.")
	assert.EqualError(t, telemetry.Event(ctx, target, telemetry.EventHit{Category: "c"}), "Expected action argument as string.")
	assert.EqualError(t, telemetry.Social(ctx, target, "n", "a", ""), "Expected target argument as string.")
	assert.EqualError(t, telemetry.Timing(ctx, target, telemetry.TimingHit{Category: "c", Variable: "v", Value: -1}), "Expected value argument as number.")
}
