// Package dataimport holds the events of the import pipeline: a file or a
// decoded document is processed, normalized into an export document and
// stored, after which dataImported is announced.
package dataimport

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// ProcessFileEvent asks the importer to read and import a file.
type ProcessFileEvent struct {
	events.Base
	events.Request[events.Void]
	file *types.File
	opts *types.ImportOptions
}

// NewProcessFileEvent requires file. opts may be nil.
func NewProcessFileEvent(file *types.File, opts *types.ImportOptions) (*ProcessFileEvent, error) {
	if err := argutil.Object("file", file); err != nil {
		return nil, err
	}
	return &ProcessFileEvent{Base: events.NewBase(eventtypes.ImportProcessFile), file: file, opts: opts}, nil
}

func (e *ProcessFileEvent) File() *types.File             { return e.file }
func (e *ProcessFileEvent) Options() *types.ImportOptions { return e.opts }

// Detail implements events.Detailer.
func (e *ProcessFileEvent) Detail() interface{} {
	return map[string]interface{}{"name": e.file.Name, "type": e.file.Type, "size": len(e.file.Data)}
}

// ProcessFile imports file.
func ProcessFile(ctx context.Context, target events.Target, file *types.File, opts *types.ImportOptions) error {
	e, err := NewProcessFileEvent(file, opts)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// ProcessDataEvent asks the importer to store an already decoded document.
type ProcessDataEvent struct {
	events.Base
	events.Request[events.Void]
	data *types.ExportObject
}

// NewProcessDataEvent requires data.
func NewProcessDataEvent(data *types.ExportObject) (*ProcessDataEvent, error) {
	if err := argutil.Object("data", data); err != nil {
		return nil, err
	}
	return &ProcessDataEvent{Base: events.NewBase(eventtypes.ImportProcessData), data: data}, nil
}

// Data returns the document to import.
func (e *ProcessDataEvent) Data() *types.ExportObject { return e.data }

// Detail implements events.Detailer.
func (e *ProcessDataEvent) Detail() interface{} {
	return map[string]interface{}{"kind": e.data.Kind, "version": e.data.Version}
}

// ProcessData imports data.
func ProcessData(ctx context.Context, target events.Target, data *types.ExportObject) error {
	e, err := NewProcessDataEvent(data)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// NormalizeEvent converts serialized data of any supported format into the
// current export document.
type NormalizeEvent struct {
	events.Base
	events.Request[*types.ExportObject]
	data string
}

// NewNormalizeEvent requires data.
func NewNormalizeEvent(data string) (*NormalizeEvent, error) {
	if err := argutil.String("data", data); err != nil {
		return nil, err
	}
	return &NormalizeEvent{Base: events.NewBase(eventtypes.ImportNormalize), data: data}, nil
}

// Data returns the serialized input.
func (e *NormalizeEvent) Data() string { return e.data }

// Detail implements events.Detailer.
func (e *NormalizeEvent) Detail() interface{} {
	return map[string]interface{}{"size": len(e.data)}
}

// Normalize returns data as an export document.
func Normalize(ctx context.Context, target events.Target, data string) (*types.ExportObject, error) {
	e, err := NewNormalizeEvent(data)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.ExportObject](ctx, target, e)
}

// NotifyDataImported announces that an import finished and stores changed.
func NotifyDataImported(ctx context.Context, target events.Target) {
	events.Notify(ctx, target, events.NewSignalEvent(eventtypes.ImportDataImported))
}
