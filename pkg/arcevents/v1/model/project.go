package model

import (
	"context"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// ReadProject returns the project id, at rev when not empty.
func ReadProject(ctx context.Context, target events.Target, id, rev string) (*types.Project, error) {
	return read[types.Project](ctx, target, eventtypes.ProjectRead, id, rev)
}

// UpdateProject creates or updates project.
func UpdateProject(ctx context.Context, target events.Target, project *types.Project) (events.ChangeRecord[types.Project], error) {
	return update(ctx, target, eventtypes.ProjectUpdate, project)
}

// UpdateProjectBulk creates or updates every project in projects.
func UpdateProjectBulk(ctx context.Context, target events.Target, projects []*types.Project) ([]events.ChangeRecord[types.Project], error) {
	return updateBulk(ctx, target, eventtypes.ProjectUpdateBulk, projects)
}

// DeleteProject removes the project id.
func DeleteProject(ctx context.Context, target events.Target, id, rev string) (events.DeletedRecord, error) {
	return remove(ctx, target, eventtypes.ProjectDelete, id, rev)
}

// ListProjects returns one page of projects.
func ListProjects(ctx context.Context, target events.Target, opts events.ListOptions) (events.ListResult[types.Project], error) {
	return list[types.Project](ctx, target, eventtypes.ProjectList, opts)
}

// ListAllProjectsEvent lists every project, or only those with the given
// keys.
type ListAllProjectsEvent struct {
	events.Base
	events.Request[[]*types.Project]
	keys []string
}

// NewListAllProjectsEvent accepts nil keys for all projects.
func NewListAllProjectsEvent(keys []string) *ListAllProjectsEvent {
	return &ListAllProjectsEvent{Base: events.NewBase(eventtypes.ProjectListAll), keys: keys}
}

// Keys returns the requested project ids, nil for all.
func (e *ListAllProjectsEvent) Keys() []string { return e.keys }

// Detail implements events.Detailer.
func (e *ListAllProjectsEvent) Detail() interface{} {
	return map[string]interface{}{"keys": e.keys}
}

// ListAllProjects returns every project, or those listed in keys.
func ListAllProjects(ctx context.Context, target events.Target, keys []string) ([]*types.Project, error) {
	return events.Call[[]*types.Project](ctx, target, NewListAllProjectsEvent(keys))
}

// NotifyProjectUpdated announces a stored project.
func NotifyProjectUpdated(ctx context.Context, target events.Target, record *events.ChangeRecord[types.Project]) error {
	return notifyChanged(ctx, target, eventtypes.ProjectStateUpdate, record)
}

// NotifyProjectDeleted announces a removed project.
func NotifyProjectDeleted(ctx context.Context, target events.Target, id, rev string) error {
	return notifyDeleted(ctx, target, eventtypes.ProjectStateDelete, id, rev)
}
