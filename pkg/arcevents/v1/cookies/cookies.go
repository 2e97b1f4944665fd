// Package cookies holds the session cookie events. The session store
// answers list requests and applies updates and deletions.
package cookies

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// ListEvent lists cookies: all of them, those of a domain or those sent to
// a URL, depending on its type.
type ListEvent struct {
	events.Base
	events.Request[[]*types.Cookie]
	domain string
	url    string
}

// NewListAllEvent lists every cookie.
func NewListAllEvent() *ListEvent {
	return &ListEvent{Base: events.NewBase(eventtypes.CookieListAll)}
}

// NewListDomainEvent requires domain.
func NewListDomainEvent(domain string) (*ListEvent, error) {
	if err := argutil.String("domain", domain); err != nil {
		return nil, err
	}
	return &ListEvent{Base: events.NewBase(eventtypes.CookieListDomain), domain: domain}, nil
}

// NewListURLEvent requires url.
func NewListURLEvent(url string) (*ListEvent, error) {
	if err := argutil.String("url", url); err != nil {
		return nil, err
	}
	return &ListEvent{Base: events.NewBase(eventtypes.CookieListURL), url: url}, nil
}

func (e *ListEvent) Domain() string { return e.domain }
func (e *ListEvent) URL() string    { return e.url }

// Detail implements events.Detailer.
func (e *ListEvent) Detail() interface{} {
	return map[string]interface{}{"domain": e.domain, "url": e.url}
}

// ListAll returns every stored cookie.
func ListAll(ctx context.Context, target events.Target) ([]*types.Cookie, error) {
	return events.Call[[]*types.Cookie](ctx, target, NewListAllEvent())
}

// ListDomain returns the cookies stored for domain.
func ListDomain(ctx context.Context, target events.Target, domain string) ([]*types.Cookie, error) {
	e, err := NewListDomainEvent(domain)
	if err != nil {
		return nil, err
	}
	return events.Call[[]*types.Cookie](ctx, target, e)
}

// ListURL returns the cookies a request to url would carry.
func ListURL(ctx context.Context, target events.Target, url string) ([]*types.Cookie, error) {
	e, err := NewListURLEvent(url)
	if err != nil {
		return nil, err
	}
	return events.Call[[]*types.Cookie](ctx, target, e)
}

// UpdateEvent creates or updates one cookie.
type UpdateEvent struct {
	events.Base
	events.Request[events.Void]
	cookie *types.Cookie
}

// NewUpdateEvent requires cookie.
func NewUpdateEvent(cookie *types.Cookie) (*UpdateEvent, error) {
	if err := argutil.Object("cookie", cookie); err != nil {
		return nil, err
	}
	return &UpdateEvent{Base: events.NewBase(eventtypes.CookieUpdate), cookie: cookie}, nil
}

// Cookie returns the cookie to store.
func (e *UpdateEvent) Cookie() *types.Cookie { return e.cookie }

// Detail implements events.Detailer.
func (e *UpdateEvent) Detail() interface{} { return cookieDetail(e.cookie) }

// Update stores cookie.
func Update(ctx context.Context, target events.Target, cookie *types.Cookie) error {
	e, err := NewUpdateEvent(cookie)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// BulkEvent carries a list of cookies to update or delete.
type BulkEvent struct {
	events.Base
	events.Request[events.Void]
	cookies []*types.Cookie
}

func newBulkEvent(t events.EventType, cookies []*types.Cookie) (*BulkEvent, error) {
	if err := argutil.Objects("cookies", cookies); err != nil {
		return nil, err
	}
	return &BulkEvent{Base: events.NewBase(t), cookies: cookies}, nil
}

// NewUpdateBulkEvent requires a list without nil entries.
func NewUpdateBulkEvent(cookies []*types.Cookie) (*BulkEvent, error) {
	return newBulkEvent(eventtypes.CookieUpdateBulk, cookies)
}

// NewDeleteEvent requires a list without nil entries.
func NewDeleteEvent(cookies []*types.Cookie) (*BulkEvent, error) {
	return newBulkEvent(eventtypes.CookieDelete, cookies)
}

// Cookies returns the affected cookies.
func (e *BulkEvent) Cookies() []*types.Cookie { return e.cookies }

// Detail implements events.Detailer.
func (e *BulkEvent) Detail() interface{} {
	return map[string]interface{}{"count": len(e.cookies)}
}

// UpdateBulk stores every cookie in cookies.
func UpdateBulk(ctx context.Context, target events.Target, cookies []*types.Cookie) error {
	e, err := NewUpdateBulkEvent(cookies)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// Delete removes every cookie in cookies.
func Delete(ctx context.Context, target events.Target, cookies []*types.Cookie) error {
	e, err := NewDeleteEvent(cookies)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// DeleteURLEvent removes the cookies a request to url would carry,
// optionally only the one called name.
type DeleteURLEvent struct {
	events.Base
	events.Request[events.Void]
	url  string
	name string
}

// NewDeleteURLEvent requires url.
func NewDeleteURLEvent(url, name string) (*DeleteURLEvent, error) {
	if err := argutil.String("url", url); err != nil {
		return nil, err
	}
	return &DeleteURLEvent{Base: events.NewBase(eventtypes.CookieDeleteURL), url: url, name: name}, nil
}

func (e *DeleteURLEvent) URL() string  { return e.url }
func (e *DeleteURLEvent) Name() string { return e.name }

// Detail implements events.Detailer.
func (e *DeleteURLEvent) Detail() interface{} {
	return map[string]interface{}{"url": e.url, "name": e.name}
}

// DeleteURL removes the cookies of url.
func DeleteURL(ctx context.Context, target events.Target, url, name string) error {
	e, err := NewDeleteURLEvent(url, name)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// StateEvent announces a stored or removed cookie.
type StateEvent = events.ValueEvent[types.Cookie]

// NotifyUpdated announces that cookie was stored.
func NotifyUpdated(ctx context.Context, target events.Target, cookie *types.Cookie) error {
	e, err := events.NewValueEvent(eventtypes.CookieStateUpdate, "cookie", cookie)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// NotifyDeleted announces that cookie was removed.
func NotifyDeleted(ctx context.Context, target events.Target, cookie *types.Cookie) error {
	e, err := events.NewValueEvent(eventtypes.CookieStateDelete, "cookie", cookie)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

func cookieDetail(c *types.Cookie) map[string]interface{} {
	return map[string]interface{}{"name": c.Name, "domain": c.Domain, "path": c.Path, "value": c.Value}
}
