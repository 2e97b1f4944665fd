// Package workspace holds the events that persist the request editor
// workspace and append to it.
package workspace

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// ReadEvent reads the stored workspace.
type ReadEvent struct {
	events.Base
	events.Request[*types.Workspace]
}

// NewReadEvent takes no arguments.
func NewReadEvent() *ReadEvent {
	return &ReadEvent{Base: events.NewBase(eventtypes.WorkspaceRead)}
}

// Read returns the stored workspace.
func Read(ctx context.Context, target events.Target) (*types.Workspace, error) {
	return events.Call[*types.Workspace](ctx, target, NewReadEvent())
}

// WriteEvent stores the workspace.
type WriteEvent struct {
	events.Base
	events.Request[events.Void]
	contents *types.Workspace
}

// NewWriteEvent requires contents.
func NewWriteEvent(contents *types.Workspace) (*WriteEvent, error) {
	if err := argutil.Object("contents", contents); err != nil {
		return nil, err
	}
	return &WriteEvent{Base: events.NewBase(eventtypes.WorkspaceWrite), contents: contents}, nil
}

// Contents returns the workspace to store.
func (e *WriteEvent) Contents() *types.Workspace { return e.contents }

// Detail implements events.Detailer.
func (e *WriteEvent) Detail() interface{} {
	return map[string]interface{}{"requests": len(e.contents.Requests), "selected": e.contents.SelectedIndex}
}

// Write stores contents.
func Write(ctx context.Context, target events.Target, contents *types.Workspace) error {
	e, err := NewWriteEvent(contents)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// AppendRequestEvent opens a request in the workspace.
type AppendRequestEvent = events.ValueEvent[types.EditorRequest]

// AppendRequest opens request in a new editor tab.
func AppendRequest(ctx context.Context, target events.Target, request *types.EditorRequest) error {
	e, err := events.NewValueEvent(eventtypes.WorkspaceAppendRequest, "request", request)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// AppendExportEvent opens the requests of an export document.
type AppendExportEvent = events.ValueEvent[types.ExportObject]

// AppendExport opens the requests of data in new editor tabs.
func AppendExport(ctx context.Context, target events.Target, data *types.ExportObject) error {
	e, err := events.NewValueEvent(eventtypes.WorkspaceAppendExport, "data", data)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}
