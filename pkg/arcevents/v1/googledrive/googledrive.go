// Package googledrive holds the events served by the Google Drive
// integration.
package googledrive

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// ReadEvent reads the contents of a Drive file.
type ReadEvent struct {
	events.Base
	events.Request[string]
	id string
}

// NewReadEvent requires id.
func NewReadEvent(id string) (*ReadEvent, error) {
	if err := argutil.String("id", id); err != nil {
		return nil, err
	}
	return &ReadEvent{Base: events.NewBase(eventtypes.GoogleDriveRead), id: id}, nil
}

// ID returns the Drive file id.
func (e *ReadEvent) ID() string { return e.id }

// Detail implements events.Detailer.
func (e *ReadEvent) Detail() interface{} {
	return map[string]interface{}{"id": e.id}
}

// Read returns the contents of the Drive file id.
func Read(ctx context.Context, target events.Target, id string) (string, error) {
	e, err := NewReadEvent(id)
	if err != nil {
		return "", err
	}
	return events.Call[string](ctx, target, e)
}

// ListAppFoldersEvent lists the folders the application created.
type ListAppFoldersEvent struct {
	events.Base
	events.Request[[]*types.AppFolder]
}

// NewListAppFoldersEvent takes no arguments.
func NewListAppFoldersEvent() *ListAppFoldersEvent {
	return &ListAppFoldersEvent{Base: events.NewBase(eventtypes.GoogleDriveListAppFolders)}
}

// ListAppFolders returns the application folders.
func ListAppFolders(ctx context.Context, target events.Target) ([]*types.AppFolder, error) {
	return events.Call[[]*types.AppFolder](ctx, target, NewListAppFoldersEvent())
}

// SaveEvent uploads contents to Drive.
type SaveEvent struct {
	events.Base
	events.Request[*types.ExportResult]
	contents string
	opts     *types.ProviderOptions
}

// NewSaveEvent requires contents and opts.
func NewSaveEvent(contents string, opts *types.ProviderOptions) (*SaveEvent, error) {
	if err := argutil.First(
		argutil.String("contents", contents),
		argutil.Object("options", opts),
	); err != nil {
		return nil, err
	}
	return &SaveEvent{Base: events.NewBase(eventtypes.GoogleDriveSave), contents: contents, opts: opts}, nil
}

func (e *SaveEvent) Contents() string { return e.contents }

func (e *SaveEvent) Options() *types.ProviderOptions { return e.opts }

// Detail implements events.Detailer.
func (e *SaveEvent) Detail() interface{} {
	return map[string]interface{}{"file": e.opts.File, "parent": e.opts.Parent, "size": len(e.contents)}
}

// Save uploads contents as described by opts.
func Save(ctx context.Context, target events.Target, contents string, opts *types.ProviderOptions) (*types.ExportResult, error) {
	e, err := NewSaveEvent(contents, opts)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.ExportResult](ctx, target, e)
}
