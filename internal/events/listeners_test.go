package events_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	relay "github.com/arc-labs/arcevents/internal/events"
	"github.com/arc-labs/arcevents/internal/logger"
	"github.com/arc-labs/arcevents/internal/tracing"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func TestJournalListenerWritesCloudEvents(t *testing.T) {
	var out bytes.Buffer
	journal := relay.NewJournalListener(&out, tracing.KeywordSet(tracing.DefaultRedactedKeywords), logger.NewNopLogger())
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	journal.HandleEnvelope(events.Envelope{
		ID:        "env-1",
		Type:      "modelauthdataupdate",
		Timestamp: ts,
		Listeners: 1,
		Answered:  true,
		Detail: map[string]interface{}{
			"url":  "https://api",
			"item": &credentials{Username: "u", Password: "hunter2"},
		},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	var entry struct {
		SpecVersion string `json:"specversion"`
		ID          string `json:"id"`
		Source      string `json:"source"`
		Type        string `json:"type"`
		Time        string `json:"time"`
		Data        struct {
			Listeners int                    `json:"listeners"`
			Answered  bool                   `json:"answered"`
			Detail    map[string]interface{} `json:"detail"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "1.0", entry.SpecVersion)
	assert.Equal(t, "env-1", entry.ID)
	assert.Equal(t, relay.JournalSource, entry.Source)
	assert.Equal(t, "modelauthdataupdate", entry.Type)
	assert.Equal(t, 1, entry.Data.Listeners)
	assert.True(t, entry.Data.Answered)
	assert.Equal(t, "https://api", entry.Data.Detail["url"])

	item := entry.Data.Detail["item"].(map[string]interface{})
	assert.Equal(t, "u", item["username"])
	assert.Equal(t, "[REDACTED]", item["password"], "nested secrets must be masked")
	assert.NotContains(t, out.String(), "hunter2")
}

func TestToCloudEventAssignsID(t *testing.T) {
	ce, err := relay.ToCloudEvent(events.Envelope{Type: "arcnavigate"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, ce.ID())
	assert.Equal(t, "arcnavigate", ce.Type())
	assert.False(t, ce.Time().IsZero())
}

func TestMetricsEventListener(t *testing.T) {
	reg := prometheus.NewRegistry()
	l, err := relay.NewMetricsEventListener(nil, reg, logger.NewNopLogger())
	require.NoError(t, err)

	l.HandleEnvelope(events.Envelope{Type: "modelprojectread", Listeners: 1, Answered: true})
	l.HandleEnvelope(events.Envelope{Type: "modelprojectread", Listeners: 0})

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "|" + lp.GetValue()
			}
			values[key] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, values["arcevents_relay_envelopes_total|true|modelprojectread"])
	assert.Equal(t, 1.0, values["arcevents_relay_envelopes_total|false|modelprojectread"])
	assert.Equal(t, 1.0, values["arcevents_relay_unobserved_total"])

	again, err := relay.NewMetricsEventListener(nil, reg, logger.NewNopLogger())
	require.NoError(t, err, "a second listener reuses the registered counters")
	assert.NotNil(t, again)
}
