package model

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// Auth data is keyed by URL and HTTP method rather than by id.

// AuthDataQueryEvent reads the credentials stored for a URL and method.
type AuthDataQueryEvent struct {
	events.Base
	events.Request[*types.AuthData]
	url    string
	method string
}

// NewAuthDataQueryEvent requires url and method.
func NewAuthDataQueryEvent(url, method string) (*AuthDataQueryEvent, error) {
	if err := argutil.First(
		argutil.String("url", url),
		argutil.String("method", method),
	); err != nil {
		return nil, err
	}
	return &AuthDataQueryEvent{Base: events.NewBase(eventtypes.AuthDataQuery), url: url, method: method}, nil
}

func (e *AuthDataQueryEvent) URL() string    { return e.url }
func (e *AuthDataQueryEvent) Method() string { return e.method }

// Detail implements events.Detailer.
func (e *AuthDataQueryEvent) Detail() interface{} {
	return map[string]interface{}{"url": e.url, "method": e.method}
}

// QueryAuthData returns the credentials for url and method, nil when none
// are stored.
func QueryAuthData(ctx context.Context, target events.Target, url, method string) (*types.AuthData, error) {
	e, err := NewAuthDataQueryEvent(url, method)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.AuthData](ctx, target, e)
}

// AuthDataUpdateEvent stores credentials for a URL and method.
type AuthDataUpdateEvent struct {
	events.Base
	events.Request[events.ChangeRecord[types.AuthData]]
	url      string
	method   string
	authData *types.AuthData
}

// NewAuthDataUpdateEvent requires url, method and authData.
func NewAuthDataUpdateEvent(url, method string, authData *types.AuthData) (*AuthDataUpdateEvent, error) {
	if err := argutil.First(
		argutil.String("url", url),
		argutil.String("method", method),
		argutil.Object("authData", authData),
	); err != nil {
		return nil, err
	}
	return &AuthDataUpdateEvent{
		Base:     events.NewBase(eventtypes.AuthDataUpdate),
		url:      url,
		method:   method,
		authData: authData,
	}, nil
}

func (e *AuthDataUpdateEvent) URL() string               { return e.url }
func (e *AuthDataUpdateEvent) Method() string            { return e.method }
func (e *AuthDataUpdateEvent) AuthData() *types.AuthData { return e.authData }

// Detail implements events.Detailer.
func (e *AuthDataUpdateEvent) Detail() interface{} {
	return map[string]interface{}{
		"url":      e.url,
		"method":   e.method,
		"username": e.authData.Username,
		"password": e.authData.Password,
	}
}

// UpdateAuthData stores authData for url and method.
func UpdateAuthData(ctx context.Context, target events.Target, url, method string, authData *types.AuthData) (events.ChangeRecord[types.AuthData], error) {
	e, err := NewAuthDataUpdateEvent(url, method, authData)
	if err != nil {
		return events.ChangeRecord[types.AuthData]{}, err
	}
	return events.Call[events.ChangeRecord[types.AuthData]](ctx, target, e)
}

// NotifyAuthDataUpdated announces stored credentials.
func NotifyAuthDataUpdated(ctx context.Context, target events.Target, record *events.ChangeRecord[types.AuthData]) error {
	return notifyChanged(ctx, target, eventtypes.AuthDataStateUpdate, record)
}
