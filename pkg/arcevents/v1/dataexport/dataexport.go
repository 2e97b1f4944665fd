// Package dataexport holds the events that export application data to a
// file or to cloud storage.
package dataexport

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// Export providers.
const (
	ProviderFile  = "file"
	ProviderDrive = "drive"
)

// CustomDataEvent exports an already assembled export document.
type CustomDataEvent struct {
	events.Base
	events.Request[*types.ExportResult]
	data *types.ExportObject
	opts *types.ExportOptions
}

// NewCustomDataEvent requires data and opts.
func NewCustomDataEvent(data *types.ExportObject, opts *types.ExportOptions) (*CustomDataEvent, error) {
	if err := argutil.First(
		argutil.Object("data", data),
		argutil.Object("exportOptions", opts),
	); err != nil {
		return nil, err
	}
	return &CustomDataEvent{Base: events.NewBase(eventtypes.ExportCustomData), data: data, opts: opts}, nil
}

func (e *CustomDataEvent) Data() *types.ExportObject     { return e.data }
func (e *CustomDataEvent) Options() *types.ExportOptions { return e.opts }

// Detail implements events.Detailer.
func (e *CustomDataEvent) Detail() interface{} {
	return map[string]interface{}{"provider": e.opts.Provider, "file": e.opts.File, "kind": e.data.Kind}
}

// CustomData exports data as configured by opts.
func CustomData(ctx context.Context, target events.Target, data *types.ExportObject, opts *types.ExportOptions) (*types.ExportResult, error) {
	e, err := NewCustomDataEvent(data, opts)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.ExportResult](ctx, target, e)
}

// NativeDataEvent exports the selected data stores.
type NativeDataEvent struct {
	events.Base
	events.Request[*types.ExportResult]
	data *types.NativeDataExport
	opts *types.ExportOptions
}

// NewNativeDataEvent requires data and opts.
func NewNativeDataEvent(data *types.NativeDataExport, opts *types.ExportOptions) (*NativeDataEvent, error) {
	if err := argutil.First(
		argutil.Object("data", data),
		argutil.Object("exportOptions", opts),
	); err != nil {
		return nil, err
	}
	return &NativeDataEvent{Base: events.NewBase(eventtypes.ExportNativeData), data: data, opts: opts}, nil
}

func (e *NativeDataEvent) Data() *types.NativeDataExport { return e.data }
func (e *NativeDataEvent) Options() *types.ExportOptions { return e.opts }

// Detail implements events.Detailer.
func (e *NativeDataEvent) Detail() interface{} {
	return map[string]interface{}{"provider": e.opts.Provider, "file": e.opts.File}
}

// NativeData exports the stores selected in data.
func NativeData(ctx context.Context, target events.Target, data *types.NativeDataExport, opts *types.ExportOptions) (*types.ExportResult, error) {
	e, err := NewNativeDataEvent(data, opts)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.ExportResult](ctx, target, e)
}

// SaveEvent stores serialized export content through a provider: the
// local file system (fileSave) or Google Drive (googleDriveSave).
type SaveEvent struct {
	events.Base
	events.Request[*types.ExportResult]
	data string
	opts *types.ProviderOptions
}

func newSaveEvent(t events.EventType, data string, opts *types.ProviderOptions) (*SaveEvent, error) {
	if err := argutil.First(
		argutil.String("data", data),
		argutil.Object("providerOptions", opts),
	); err != nil {
		return nil, err
	}
	return &SaveEvent{Base: events.NewBase(t), data: data, opts: opts}, nil
}

// NewFileSaveEvent requires data and opts.
func NewFileSaveEvent(data string, opts *types.ProviderOptions) (*SaveEvent, error) {
	return newSaveEvent(eventtypes.ExportFileSave, data, opts)
}

// NewGoogleDriveSaveEvent requires data and opts.
func NewGoogleDriveSaveEvent(data string, opts *types.ProviderOptions) (*SaveEvent, error) {
	return newSaveEvent(eventtypes.ExportGoogleDriveSave, data, opts)
}

func (e *SaveEvent) Data() string                    { return e.data }
func (e *SaveEvent) Options() *types.ProviderOptions { return e.opts }

// Detail implements events.Detailer.
func (e *SaveEvent) Detail() interface{} {
	return map[string]interface{}{"file": e.opts.File, "parent": e.opts.Parent, "size": len(e.data)}
}

// FileSave writes data to a local file.
func FileSave(ctx context.Context, target events.Target, data string, opts *types.ProviderOptions) (*types.ExportResult, error) {
	e, err := NewFileSaveEvent(data, opts)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.ExportResult](ctx, target, e)
}

// GoogleDriveSave uploads data to Google Drive.
func GoogleDriveSave(ctx context.Context, target events.Target, data string, opts *types.ProviderOptions) (*types.ExportResult, error) {
	e, err := NewGoogleDriveSaveEvent(data, opts)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.ExportResult](ctx, target, e)
}
