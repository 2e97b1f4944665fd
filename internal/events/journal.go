package events

import (
	"encoding/json"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	arclog "github.com/arc-labs/arcevents/pkg/arcevents/v1/log"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// JournalSource is the CloudEvents source of journal entries.
const JournalSource = "arcevents/target"

// JournalData is the data section of a journal entry.
type JournalData struct {
	// Listeners is the number of listeners the event reached.
	Listeners int `json:"listeners"`
	// Answered is set for request events a listener attached a result to.
	Answered bool `json:"answered,omitempty"`
	// Detail is the redacted payload description.
	Detail interface{} `json:"detail,omitempty"`
}

// JournalListener writes every envelope as one CloudEvents JSON line.
// Detail keys matching a redaction keyword are masked at any depth.
type JournalListener struct {
	// mu serializes writes so lines never interleave.
	mu       sync.Mutex
	w        io.Writer
	log      arclog.Logger
	keywords map[string]struct{}
}

// NewJournalListener writes to w. keywords must be lowercase.
func NewJournalListener(w io.Writer, keywords map[string]struct{}, log arclog.Logger) *JournalListener {
	return &JournalListener{w: w, keywords: keywords, log: log.With("component", "JournalListener")}
}

// ToCloudEvent converts an envelope. Envelopes without an id get a UUIDv7.
func ToCloudEvent(env events.Envelope, keywords map[string]struct{}) (cloudevents.Event, error) {
	ce := cloudevents.NewEvent()
	ce.SetSpecVersion(cloudevents.VersionV1)
	ce.SetID(envelopeID(env))
	ce.SetSource(JournalSource)
	ce.SetType(string(env.Type))
	// The dispatch start time, or now for hand-built envelopes.
	ts := env.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	ce.SetTime(ts)

	data := JournalData{
		Listeners: env.Listeners,
		Answered:  env.Answered,
		Detail:    redactDetail(env.Detail, keywords),
	}
	if err := ce.SetData(cloudevents.ApplicationJSON, data); err != nil {
		return ce, err
	}
	// Validate catches a missing id, source or type before the line is written.
	return ce, ce.Validate()
}

// HandleEnvelope implements Handler. Failures are logged; the journal never
// interrupts the relay.
func (j *JournalListener) HandleEnvelope(env events.Envelope) {
	ce, err := ToCloudEvent(env, j.keywords)
	if err != nil {
		j.log.Errorf("Failed to build journal entry for '%s': %v", env.Type, err)
		return
	}
	// The structured JSON form, one event per line.
	line, err := json.Marshal(ce)
	if err != nil {
		j.log.Errorf("Failed to encode journal entry for '%s': %v", env.Type, err)
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if _, err := j.w.Write(append(line, '\n')); err != nil {
		j.log.Errorf("Failed to write journal entry for '%s': %v", env.Type, err)
	}
}

// envelopeID keeps the dispatcher's id so journal lines can be matched with
// spans and logs.
func envelopeID(env events.Envelope) string {
	if env.ID != "" {
		return env.ID
	}
	return NewEnvelopeID()
}

// NewEnvelopeID returns a time-ordered UUIDv7, or a random UUID if the
// clock source fails.
func NewEnvelopeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

// redactDetail normalizes detail to its JSON form and masks every object
// key, at any depth, that matches a keyword.
func redactDetail(detail interface{}, keywords map[string]struct{}) interface{} {
	if detail == nil || len(keywords) == 0 {
		return detail
	}
	// Round-trip through JSON so typed records and maps redact alike.
	raw, err := json.Marshal(detail)
	if err != nil {
		return detail
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return detail
	}
	return redactValue(generic, keywords)
}

// redactValue masks matching keys in place and recurses into nested
// objects and arrays.
func redactValue(v interface{}, keywords map[string]struct{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if _, redact := keywords[strings.ToLower(k)]; redact {
				val[k] = "[REDACTED]"
				continue
			}
			val[k] = redactValue(inner, keywords)
		}
		return val
	case []interface{}:
		for i, inner := range val {
			val[i] = redactValue(inner, keywords)
		}
		return val
	default:
		return v
	}
}

// Ensure JournalListener implements Handler at compile time.
var _ Handler = (*JournalListener)(nil)
