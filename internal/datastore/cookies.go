package datastore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/cookies"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// cookieJar stores session cookies by domain, path and name.
type cookieJar struct {
	mu      sync.RWMutex
	cookies map[string]*types.Cookie
	order   []string
	now     func() time.Time
}

func newCookieJar() *cookieJar {
	return &cookieJar{cookies: make(map[string]*types.Cookie), now: time.Now}
}

func (j *cookieJar) put(c *types.Cookie) *types.Cookie {
	stored := deepCopy(c)
	stored.Domain = strings.ToLower(stored.Domain)
	if stored.Path == "" {
		stored.Path = "/"
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	key := stored.Key()
	if _, ok := j.cookies[key]; !ok {
		j.order = append(j.order, key)
	}
	j.cookies[key] = stored
	return deepCopy(stored)
}

// remove deletes the cookie with c's key and returns the removed cookie.
func (j *cookieJar) remove(c *types.Cookie) (*types.Cookie, bool) {
	norm := *c
	norm.Domain = strings.ToLower(norm.Domain)
	if norm.Path == "" {
		norm.Path = "/"
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	key := norm.Key()
	stored, ok := j.cookies[key]
	if !ok {
		return nil, false
	}
	delete(j.cookies, key)
	j.order = without(j.order, key)
	return stored, true
}

// filter returns copies of the unexpired cookies matching keep.
func (j *cookieJar) filter(keep func(*types.Cookie) bool) []*types.Cookie {
	now := j.now().UnixMilli()
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]*types.Cookie, 0)
	for _, key := range j.order {
		c := j.cookies[key]
		if !c.Session && c.Expires > 0 && c.Expires <= now {
			continue
		}
		if keep == nil || keep(c) {
			out = append(out, deepCopy(c))
		}
	}
	return out
}

func (j *cookieJar) clear() []*types.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]*types.Cookie, 0, len(j.order))
	for _, key := range j.order {
		out = append(out, j.cookies[key])
	}
	j.cookies = make(map[string]*types.Cookie)
	j.order = nil
	return out
}

// domainMatch reports whether a cookie stored for c.Domain is sent to host.
// Host-only cookies require an exact match.
func domainMatch(c *types.Cookie, host string) bool {
	host = strings.ToLower(host)
	domain := strings.TrimPrefix(c.Domain, ".")
	if host == domain {
		return true
	}
	return !c.HostOnly && strings.HasSuffix(host, "."+domain)
}

func pathMatch(cookiePath, requestPath string) bool {
	if requestPath == "" {
		requestPath = "/"
	}
	if cookiePath == requestPath {
		return true
	}
	if !strings.HasPrefix(requestPath, cookiePath) {
		return false
	}
	return strings.HasSuffix(cookiePath, "/") || requestPath[len(cookiePath)] == '/'
}

// urlMatcher selects the cookies a request to rawURL carries.
func urlMatcher(rawURL string) (func(*types.Cookie) bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid cookie url '%s'", rawURL)
	}
	secure := u.Scheme == "https" || u.Scheme == "wss"
	return func(c *types.Cookie) bool {
		if c.Secure && !secure {
			return false
		}
		return domainMatch(c, u.Hostname()) && pathMatch(c.Path, u.EscapedPath())
	}, nil
}

func (s *Store) attachCookies(on listen) {
	on(eventtypes.CookieListAll, events.Handle(func(_ context.Context, e *cookies.ListEvent) {
		e.Resolve(s.cookies.filter(nil))
	}))

	on(eventtypes.CookieListDomain, events.Handle(func(_ context.Context, e *cookies.ListEvent) {
		domain := strings.TrimPrefix(e.Domain(), ".")
		e.Resolve(s.cookies.filter(func(c *types.Cookie) bool { return domainMatch(c, domain) }))
	}))

	on(eventtypes.CookieListURL, events.Handle(func(_ context.Context, e *cookies.ListEvent) {
		match, err := urlMatcher(e.URL())
		if err != nil {
			e.Reject(err)
			return
		}
		e.Resolve(s.cookies.filter(match))
	}))

	on(eventtypes.CookieUpdate, events.Handle(func(ctx context.Context, e *cookies.UpdateEvent) {
		stored := s.cookies.put(e.Cookie())
		e.Resolve(events.Void{})
		s.reported(cookies.NotifyUpdated(ctx, s.notifier(), stored))
	}))

	on(eventtypes.CookieUpdateBulk, events.Handle(func(ctx context.Context, e *cookies.BulkEvent) {
		stored := make([]*types.Cookie, 0, len(e.Cookies()))
		for _, c := range e.Cookies() {
			stored = append(stored, s.cookies.put(c))
		}
		e.Resolve(events.Void{})
		for _, c := range stored {
			s.reported(cookies.NotifyUpdated(ctx, s.notifier(), c))
		}
	}))

	on(eventtypes.CookieDelete, events.Handle(func(ctx context.Context, e *cookies.BulkEvent) {
		for _, c := range e.Cookies() {
			if removed, ok := s.cookies.remove(c); ok {
				s.reported(cookies.NotifyDeleted(ctx, s.notifier(), removed))
			}
		}
		e.Resolve(events.Void{})
	}))

	// Without a name every cookie the URL carries is removed.
	on(eventtypes.CookieDeleteURL, events.Handle(func(ctx context.Context, e *cookies.DeleteURLEvent) {
		match, err := urlMatcher(e.URL())
		if err != nil {
			e.Reject(err)
			return
		}
		for _, c := range s.cookies.filter(match) {
			if e.Name() != "" && c.Name != e.Name() {
				continue
			}
			if removed, ok := s.cookies.remove(c); ok {
				s.reported(cookies.NotifyDeleted(ctx, s.notifier(), removed))
			}
		}
		e.Resolve(events.Void{})
	}))
}
