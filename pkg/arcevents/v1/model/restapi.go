package model

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// ListRestAPIs returns one page of the REST API index.
func ListRestAPIs(ctx context.Context, target events.Target, opts events.ListOptions) (events.ListResult[types.RestAPIIndex], error) {
	return list[types.RestAPIIndex](ctx, target, eventtypes.RestAPIList, opts)
}

// ReadRestAPI returns the index entry id.
func ReadRestAPI(ctx context.Context, target events.Target, id, rev string) (*types.RestAPIIndex, error) {
	return read[types.RestAPIIndex](ctx, target, eventtypes.RestAPIRead, id, rev)
}

// UpdateRestAPI creates or updates an index entry.
func UpdateRestAPI(ctx context.Context, target events.Target, index *types.RestAPIIndex) (events.ChangeRecord[types.RestAPIIndex], error) {
	return update(ctx, target, eventtypes.RestAPIUpdate, index)
}

// UpdateRestAPIBulk creates or updates several index entries.
func UpdateRestAPIBulk(ctx context.Context, target events.Target, indexes []*types.RestAPIIndex) ([]events.ChangeRecord[types.RestAPIIndex], error) {
	return updateBulk(ctx, target, eventtypes.RestAPIUpdateBulk, indexes)
}

// DeleteRestAPI removes the index entry id with every version's data.
func DeleteRestAPI(ctx context.Context, target events.Target, id, rev string) (events.DeletedRecord, error) {
	return remove(ctx, target, eventtypes.RestAPIDelete, id, rev)
}

// ReadRestAPIData returns the API model stored under id.
func ReadRestAPIData(ctx context.Context, target events.Target, id, rev string) (*types.RestAPIData, error) {
	return read[types.RestAPIData](ctx, target, eventtypes.RestAPIDataRead, id, rev)
}

// UpdateRestAPIData stores an API model.
func UpdateRestAPIData(ctx context.Context, target events.Target, data *types.RestAPIData) (events.ChangeRecord[types.RestAPIData], error) {
	return update(ctx, target, eventtypes.RestAPIDataUpdate, data)
}

// RestAPIVersionEvent addresses one version of an API. Its type decides
// whether the version is read or deleted.
type RestAPIVersionEvent[R any] struct {
	events.Base
	events.Request[R]
	id      string
	version string
	rev     string
}

func newRestAPIVersionEvent[R any](t events.EventType, id, version, rev string) (*RestAPIVersionEvent[R], error) {
	if err := argutil.First(
		argutil.String("id", id),
		argutil.String("version", version),
	); err != nil {
		return nil, err
	}
	return &RestAPIVersionEvent[R]{Base: events.NewBase(t), id: id, version: version, rev: rev}, nil
}

// NewRestAPIVersionReadEvent requires id and version.
func NewRestAPIVersionReadEvent(id, version, rev string) (*RestAPIVersionEvent[*types.RestAPIData], error) {
	return newRestAPIVersionEvent[*types.RestAPIData](eventtypes.RestAPIVersionRead, id, version, rev)
}

// NewRestAPIVersionDeleteEvent requires id and version.
func NewRestAPIVersionDeleteEvent(id, version string) (*RestAPIVersionEvent[events.DeletedRecord], error) {
	return newRestAPIVersionEvent[events.DeletedRecord](eventtypes.RestAPIVersionDelete, id, version, "")
}

func (e *RestAPIVersionEvent[R]) ID() string      { return e.id }
func (e *RestAPIVersionEvent[R]) Version() string { return e.version }
func (e *RestAPIVersionEvent[R]) Rev() string     { return e.rev }

// Detail implements events.Detailer.
func (e *RestAPIVersionEvent[R]) Detail() interface{} {
	return map[string]interface{}{"id": e.id, "version": e.version, "rev": e.rev}
}

// ReadRestAPIVersion returns the model of version of the API id.
func ReadRestAPIVersion(ctx context.Context, target events.Target, id, version, rev string) (*types.RestAPIData, error) {
	e, err := NewRestAPIVersionReadEvent(id, version, rev)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.RestAPIData](ctx, target, e)
}

// DeleteRestAPIVersion removes version from the API id.
func DeleteRestAPIVersion(ctx context.Context, target events.Target, id, version string) (events.DeletedRecord, error) {
	e, err := NewRestAPIVersionDeleteEvent(id, version)
	if err != nil {
		return events.DeletedRecord{}, err
	}
	return events.Call[events.DeletedRecord](ctx, target, e)
}

// RestAPIProcessFileEvent turns an API definition file into a model.
type RestAPIProcessFileEvent struct {
	events.Base
	events.Request[*types.RestAPIProcessResult]
	file *types.File
}

// NewRestAPIProcessFileEvent requires file.
func NewRestAPIProcessFileEvent(file *types.File) (*RestAPIProcessFileEvent, error) {
	if err := argutil.Object("file", file); err != nil {
		return nil, err
	}
	return &RestAPIProcessFileEvent{Base: events.NewBase(eventtypes.RestAPIProcessFile), file: file}, nil
}

// File returns the definition file.
func (e *RestAPIProcessFileEvent) File() *types.File { return e.file }

// Detail implements events.Detailer.
func (e *RestAPIProcessFileEvent) Detail() interface{} {
	return map[string]interface{}{"name": e.file.Name, "size": len(e.file.Data)}
}

// ProcessRestAPIFile parses file into an API model.
func ProcessRestAPIFile(ctx context.Context, target events.Target, file *types.File) (*types.RestAPIProcessResult, error) {
	e, err := NewRestAPIProcessFileEvent(file)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.RestAPIProcessResult](ctx, target, e)
}

// NotifyRestAPIUpdated announces a stored index entry.
func NotifyRestAPIUpdated(ctx context.Context, target events.Target, record *events.ChangeRecord[types.RestAPIIndex]) error {
	return notifyChanged(ctx, target, eventtypes.RestAPIStateUpdate, record)
}

// NotifyRestAPIDeleted announces a removed index entry.
func NotifyRestAPIDeleted(ctx context.Context, target events.Target, id, rev string) error {
	return notifyDeleted(ctx, target, eventtypes.RestAPIStateDelete, id, rev)
}

// RestAPIVersionDeletedEvent announces a removed API version.
type RestAPIVersionDeletedEvent struct {
	events.Base
	id      string
	rev     string
	version string
}

func (e *RestAPIVersionDeletedEvent) ID() string      { return e.id }
func (e *RestAPIVersionDeletedEvent) Rev() string     { return e.rev }
func (e *RestAPIVersionDeletedEvent) Version() string { return e.version }

// Detail implements events.Detailer.
func (e *RestAPIVersionDeletedEvent) Detail() interface{} {
	return map[string]interface{}{"id": e.id, "rev": e.rev, "version": e.version}
}

// NotifyRestAPIVersionDeleted announces that version of the API id was
// removed; rev is the index revision after the removal.
func NotifyRestAPIVersionDeleted(ctx context.Context, target events.Target, id, rev, version string) error {
	if err := argutil.First(
		argutil.String("id", id),
		argutil.String("version", version),
	); err != nil {
		return err
	}
	events.Notify(ctx, target, &RestAPIVersionDeletedEvent{
		Base:    events.NewBase(eventtypes.RestAPIStateVersionDelete),
		id:      id,
		rev:     rev,
		version: version,
	})
	return nil
}
