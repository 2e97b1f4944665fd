package datastore

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/model"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// authDataKey is the document id of the credentials for method and rawURL:
// the lower-cased method and the URL without query and fragment.
func authDataKey(method, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid auth data url '%s': %w", rawURL, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""
	return strings.ToLower(method) + "/" + u.String(), nil
}

func (s *Store) attachAuthData(on listen) {
	// A miss resolves nil.
	on(eventtypes.AuthDataQuery, events.Handle(func(_ context.Context, e *model.AuthDataQueryEvent) {
		key, err := authDataKey(e.Method(), e.URL())
		if err != nil {
			e.Reject(err)
			return
		}
		item, _ := s.authData.get(key, "")
		e.Resolve(item)
	}))

	// Updates replace whatever is stored for the key.
	on(eventtypes.AuthDataUpdate, events.Handle(func(ctx context.Context, e *model.AuthDataUpdateEvent) {
		key, err := authDataKey(e.Method(), e.URL())
		if err != nil {
			e.Reject(err)
			return
		}
		data := *e.AuthData()
		data.ID = key
		data.Rev = ""
		rec, err := s.authData.put(&data)
		if answer[events.ChangeRecord[types.AuthData]](e, rec, err) {
			s.reported(model.NotifyAuthDataUpdated(ctx, s.notifier(), &rec))
		}
	}))
}
