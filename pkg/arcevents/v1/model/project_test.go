package model_test

import (
	"context"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/model"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProjectReturnsListenerRecord(t *testing.T) {
	target := eventtest.NewTarget()
	project := &types.Project{Name: "My Project"}
	var seen *types.Project
	target.AddListener(eventtypes.ProjectUpdate, events.Handle(func(_ context.Context, e *events.UpdateEvent[types.Project]) {
		seen = e.Item()
		e.Resolve(events.ChangeRecord[types.Project]{ID: "p1", Rev: "r1", Item: e.Item()})
	}))

	got, err := model.UpdateProject(context.Background(), target, project)
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, "r1", got.Rev)
	assert.Same(t, project, got.Item)
	assert.Same(t, project, seen)
}

func TestProjectActionsDispatchOnce(t *testing.T) {
	target := eventtest.NewTarget()
	ctx := context.Background()
	read := eventtest.Respond(target, eventtypes.ProjectRead, &types.Project{Name: "a"})
	del := eventtest.Respond(target, eventtypes.ProjectDelete, events.DeletedRecord{ID: "p1", Rev: "r2"})
	listAll := eventtest.Respond(target, eventtypes.ProjectListAll, []*types.Project{})

	p, err := model.ReadProject(ctx, target, "p1", "r1")
	require.NoError(t, err)
	assert.Equal(t, "a", p.Name)
	require.Equal(t, 1, read.Len())
	e := read.Last().(*events.ReadEvent[types.Project])
	assert.Equal(t, "p1", e.ID())
	assert.Equal(t, "r1", e.Rev())

	d, err := model.DeleteProject(ctx, target, "p1", "")
	require.NoError(t, err)
	assert.Equal(t, events.DeletedRecord{ID: "p1", Rev: "r2"}, d)
	assert.Equal(t, 1, del.Len())

	_, err = model.ListAllProjects(ctx, target, nil)
	require.NoError(t, err)
	assert.Nil(t, listAll.Last().(*model.ListAllProjectsEvent).Keys())
}

func TestProjectArgumentErrors(t *testing.T) {
	target := eventtest.NewTarget()
	ctx := context.Background()
	rec := eventtest.Record(target, eventtypes.ProjectUpdate)

	_, err := model.UpdateProject(ctx, target, nil)
	assert.EqualError(t, err, "Expected item argument as object.")
	_, err = model.ReadProject(ctx, target, "", "")
	assert.EqualError(t, err, "Expected id argument as string.")
	_, err = model.UpdateProjectBulk(ctx, target, nil)
	assert.EqualError(t, err, "Expected items argument as array.")
	assert.Zero(t, rec.Len())
}

func TestListProjectsWithoutStore(t *testing.T) {
	page, err := model.ListProjects(context.Background(), eventtest.NewTarget(), events.ListOptions{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestProjectStateNotifications(t *testing.T) {
	target := eventtest.NewTarget()
	ctx := context.Background()
	updated := eventtest.Record(target, eventtypes.ProjectStateUpdate)
	deleted := eventtest.Record(target, eventtypes.ProjectStateDelete)

	record := &events.ChangeRecord[types.Project]{ID: "p1", Rev: "r2", OldRev: "r1", Item: &types.Project{Name: "x"}}
	require.NoError(t, model.NotifyProjectUpdated(ctx, target, record))
	assert.Same(t, record, updated.Last().(*events.StateUpdateEvent[types.Project]).Changed())

	require.NoError(t, model.NotifyProjectDeleted(ctx, target, "t1", "r1"))
	e := deleted.Last().(*events.StateDeleteEvent)
	assert.Equal(t, "t1", e.ID())
	assert.Equal(t, "r1", e.Rev())

	assert.EqualError(t, model.NotifyProjectUpdated(ctx, target, nil), "Expected record argument as object.")
	assert.EqualError(t, model.NotifyProjectDeleted(ctx, target, "", "r1"), "Expected id argument as string.")
}
