// Package telemetry holds the usage analytics notifications. Every
// telemetry event is optional to handle; the analytics listener may be
// absent entirely.
package telemetry

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
)

// CustomMetric is a numeric custom dimension attached to a hit.
type CustomMetric struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// CustomDimension is a text custom dimension attached to a hit.
type CustomDimension struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

// Custom carries the custom metrics and dimensions of a hit.
type Custom struct {
	Metrics    []CustomMetric    `json:"customMetrics,omitempty"`
	Dimensions []CustomDimension `json:"customDimensions,omitempty"`
}

// ViewEvent records a screen view.
type ViewEvent struct {
	events.Base
	screenName string
	custom     *Custom
}

func (e *ViewEvent) ScreenName() string { return e.screenName }
func (e *ViewEvent) Custom() *Custom    { return e.custom }

// Detail implements events.Detailer.
func (e *ViewEvent) Detail() interface{} {
	return map[string]interface{}{"screenName": e.screenName}
}

// View records a view of screenName. custom may be nil.
func View(ctx context.Context, target events.Target, screenName string, custom *Custom) error {
	if err := argutil.String("screenName", screenName); err != nil {
		return err
	}
	events.Notify(ctx, target, &ViewEvent{Base: events.NewBase(eventtypes.TelemetryView), screenName: screenName, custom: custom})
	return nil
}

// EventHit describes a user interaction.
type EventHit struct {
	Category string
	Action   string
	Label    string
	Value    int64
	Custom   *Custom
}

// EventEvent records a user interaction.
type EventEvent struct {
	events.Base
	hit EventHit
}

// Hit returns the interaction.
func (e *EventEvent) Hit() EventHit { return e.hit }

// Detail implements events.Detailer.
func (e *EventEvent) Detail() interface{} {
	return map[string]interface{}{"category": e.hit.Category, "action": e.hit.Action, "label": e.hit.Label, "value": e.hit.Value}
}

// Event records hit. Category and action are required.
func Event(ctx context.Context, target events.Target, hit EventHit) error {
	if err := argutil.First(
		argutil.String("category", hit.Category),
		argutil.String("action", hit.Action),
	); err != nil {
		return err
	}
	events.Notify(ctx, target, &EventEvent{Base: events.NewBase(eventtypes.TelemetryEvent), hit: hit})
	return nil
}

// ExceptionEvent records an exception.
type ExceptionEvent struct {
	events.Base
	description string
	fatal       bool
}

func (e *ExceptionEvent) Description() string { return e.description }
func (e *ExceptionEvent) Fatal() bool         { return e.fatal }

// Detail implements events.Detailer.
func (e *ExceptionEvent) Detail() interface{} {
	return map[string]interface{}{"description": e.description, "fatal": e.fatal}
}

// Exception records an exception described by description.
func Exception(ctx context.Context, target events.Target, description string, fatal bool) error {
	if err := argutil.String("description", description); err != nil {
		return err
	}
	events.Notify(ctx, target, &ExceptionEvent{Base: events.NewBase(eventtypes.TelemetryException), description: description, fatal: fatal})
	return nil
}

// SocialEvent records a social interaction.
type SocialEvent struct {
	events.Base
	network string
	action  string
	target  string
}

func (e *SocialEvent) Network() string { return e.network }
func (e *SocialEvent) Action() string  { return e.action }
func (e *SocialEvent) Target() string  { return e.target }

// Detail implements events.Detailer.
func (e *SocialEvent) Detail() interface{} {
	return map[string]interface{}{"network": e.network, "action": e.action, "target": e.target}
}

// Social records action on network for socialTarget.
func Social(ctx context.Context, target events.Target, network, action, socialTarget string) error {
	if err := argutil.First(
		argutil.String("network", network),
		argutil.String("action", action),
		argutil.String("target", socialTarget),
	); err != nil {
		return err
	}
	events.Notify(ctx, target, &SocialEvent{
		Base:    events.NewBase(eventtypes.TelemetrySocial),
		network: network,
		action:  action,
		target:  socialTarget,
	})
	return nil
}

// TimingHit describes a measured duration in milliseconds.
type TimingHit struct {
	Category string
	Variable string
	Value    int64
	Label    string
	Custom   *Custom
}

// TimingEvent records a duration.
type TimingEvent struct {
	events.Base
	hit TimingHit
}

// Hit returns the measurement.
func (e *TimingEvent) Hit() TimingHit { return e.hit }

// Detail implements events.Detailer.
func (e *TimingEvent) Detail() interface{} {
	return map[string]interface{}{"category": e.hit.Category, "variable": e.hit.Variable, "value": e.hit.Value, "label": e.hit.Label}
}

// Timing records hit. Category and variable are required and the value
// must not be negative.
func Timing(ctx context.Context, target events.Target, hit TimingHit) error {
	if err := argutil.First(
		argutil.String("category", hit.Category),
		argutil.String("variable", hit.Variable),
	); err != nil {
		return err
	}
	if hit.Value < 0 {
		return arcerrors.NewArgumentError("value", arcerrors.KindNumber)
	}
	events.Notify(ctx, target, &TimingEvent{Base: events.NewBase(eventtypes.TelemetryTiming), hit: hit})
	return nil
}
