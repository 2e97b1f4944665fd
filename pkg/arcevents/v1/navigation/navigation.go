// Package navigation holds the events that ask the application shell to
// change what it shows. They are notifications: the shell routes them and
// no result is returned.
package navigation

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// Default actions and routes.
const (
	ActionOpen    = "open"
	ActionEdit    = "edit"
	ActionDetail  = "detail"
	RouteDetail   = "detail"
	VersionLatest = "latest"
)

// NavigateEvent opens a top-level route.
type NavigateEvent struct {
	events.Base
	route string
	opts  map[string]interface{}
}

// NewNavigateEvent requires route. opts are route parameters, may be nil.
func NewNavigateEvent(route string, opts map[string]interface{}) (*NavigateEvent, error) {
	if err := argutil.String("route", route); err != nil {
		return nil, err
	}
	return &NavigateEvent{Base: events.NewBase(eventtypes.Navigate), route: route, opts: opts}, nil
}

func (e *NavigateEvent) Route() string                   { return e.route }
func (e *NavigateEvent) Options() map[string]interface{} { return e.opts }

// Detail implements events.Detailer.
func (e *NavigateEvent) Detail() interface{} {
	return map[string]interface{}{"route": e.route, "opts": e.opts}
}

// Navigate dispatches a NavigateEvent.
func Navigate(ctx context.Context, target events.Target, route string, opts map[string]interface{}) error {
	e, err := NewNavigateEvent(route, opts)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// RequestEvent opens a saved or history request.
type RequestEvent struct {
	events.Base
	requestID   string
	requestType types.RequestKind
	action      string
}

// NewRequestEvent requires the request id and kind. An empty action opens
// the request.
func NewRequestEvent(requestID string, requestType types.RequestKind, action string) (*RequestEvent, error) {
	if err := argutil.First(
		argutil.String("requestId", requestID),
		argutil.String("requestType", string(requestType)),
	); err != nil {
		return nil, err
	}
	if action == "" {
		action = ActionOpen
	}
	return &RequestEvent{
		Base:        events.NewBase(eventtypes.NavigateRequest),
		requestID:   requestID,
		requestType: requestType,
		action:      action,
	}, nil
}

func (e *RequestEvent) RequestID() string              { return e.requestID }
func (e *RequestEvent) RequestType() types.RequestKind { return e.requestType }
func (e *RequestEvent) Action() string                 { return e.action }

// Detail implements events.Detailer.
func (e *RequestEvent) Detail() interface{} {
	return map[string]interface{}{"requestId": e.requestID, "requestType": string(e.requestType), "action": e.action}
}

// NavigateRequest dispatches a RequestEvent.
func NavigateRequest(ctx context.Context, target events.Target, requestID string, requestType types.RequestKind, action string) error {
	e, err := NewRequestEvent(requestID, requestType, action)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// ProjectEvent opens a project.
type ProjectEvent struct {
	events.Base
	id     string
	action string
	route  string
}

// NewProjectEvent requires id. Empty action and route default to "open"
// and "detail".
func NewProjectEvent(id, action, route string) (*ProjectEvent, error) {
	if err := argutil.String("id", id); err != nil {
		return nil, err
	}
	if action == "" {
		action = ActionOpen
	}
	if route == "" {
		route = RouteDetail
	}
	return &ProjectEvent{Base: events.NewBase(eventtypes.NavigateProject), id: id, action: action, route: route}, nil
}

func (e *ProjectEvent) ID() string     { return e.id }
func (e *ProjectEvent) Action() string { return e.action }
func (e *ProjectEvent) Route() string  { return e.route }

// Detail implements events.Detailer.
func (e *ProjectEvent) Detail() interface{} {
	return map[string]interface{}{"id": e.id, "action": e.action, "route": e.route}
}

// NavigateProject dispatches a ProjectEvent.
func NavigateProject(ctx context.Context, target events.Target, id, action, route string) error {
	e, err := NewProjectEvent(id, action, route)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// RestAPIEvent opens a REST API definition.
type RestAPIEvent struct {
	events.Base
	api     string
	version string
	action  string
}

// NewRestAPIEvent requires the API id and the action. An empty version
// opens the latest.
func NewRestAPIEvent(api, version, action string) (*RestAPIEvent, error) {
	if err := argutil.First(
		argutil.String("api", api),
		argutil.String("action", action),
	); err != nil {
		return nil, err
	}
	if version == "" {
		version = VersionLatest
	}
	return &RestAPIEvent{Base: events.NewBase(eventtypes.NavigateRestAPI), api: api, version: version, action: action}, nil
}

func (e *RestAPIEvent) API() string     { return e.api }
func (e *RestAPIEvent) Version() string { return e.version }
func (e *RestAPIEvent) Action() string  { return e.action }

// Detail implements events.Detailer.
func (e *RestAPIEvent) Detail() interface{} {
	return map[string]interface{}{"api": e.api, "version": e.version, "action": e.action}
}

// NavigateRestAPI dispatches a RestAPIEvent.
func NavigateRestAPI(ctx context.Context, target events.Target, api, version, action string) error {
	e, err := NewRestAPIEvent(api, version, action)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// ExternalEvent opens a URL outside the application.
type ExternalEvent struct {
	events.Base
	url string
}

// NewExternalEvent requires url.
func NewExternalEvent(url string) (*ExternalEvent, error) {
	if err := argutil.String("url", url); err != nil {
		return nil, err
	}
	return &ExternalEvent{Base: events.NewBase(eventtypes.NavigateExternal), url: url}, nil
}

func (e *ExternalEvent) URL() string { return e.url }

// Detail implements events.Detailer.
func (e *ExternalEvent) Detail() interface{} {
	return map[string]interface{}{"url": e.url}
}

// NavigateExternal dispatches an ExternalEvent.
func NavigateExternal(ctx context.Context, target events.Target, url string) error {
	e, err := NewExternalEvent(url)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// HelpTopicEvent opens a help topic.
type HelpTopicEvent struct {
	events.Base
	topic string
}

// NewHelpTopicEvent requires topic.
func NewHelpTopicEvent(topic string) (*HelpTopicEvent, error) {
	if err := argutil.String("topic", topic); err != nil {
		return nil, err
	}
	return &HelpTopicEvent{Base: events.NewBase(eventtypes.NavigateHelp), topic: topic}, nil
}

func (e *HelpTopicEvent) Topic() string { return e.topic }

// Detail implements events.Detailer.
func (e *HelpTopicEvent) Detail() interface{} {
	return map[string]interface{}{"topic": e.topic}
}

// HelpTopic dispatches a HelpTopicEvent.
func HelpTopic(ctx context.Context, target events.Target, topic string) error {
	e, err := NewHelpTopicEvent(topic)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}
