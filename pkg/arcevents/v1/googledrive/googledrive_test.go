package googledrive_test

import (
	"context"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/googledrive"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Respond(target, eventtypes.GoogleDriveRead, `{"kind":"ARC#Export"}`)

	got, err := googledrive.Read(context.Background(), target, "drive-file-1")
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"ARC#Export"}`, got)
	assert.Equal(t, "drive-file-1", rec.Last().(*googledrive.ReadEvent).ID())

	_, err = googledrive.Read(context.Background(), target, "")
	assert.EqualError(t, err, "Expected id argument as string.")
}

func TestListAppFolders(t *testing.T) {
	target := eventtest.NewTarget()
	folders := []*types.AppFolder{{ID: "f1", Name: "ARC"}}
	eventtest.Respond(target, eventtypes.GoogleDriveListAppFolders, folders)

	got, err := googledrive.ListAppFolders(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, folders, got)
}

func TestSave(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Respond(target, eventtypes.GoogleDriveSave, &types.ExportResult{Success: true, FileID: "x"})
	opts := &types.ProviderOptions{File: "arc.json", ContentType: "application/json"}

	got, err := googledrive.Save(context.Background(), target, "{}", opts)
	require.NoError(t, err)
	assert.Equal(t, "x", got.FileID)
	e := rec.Last().(*googledrive.SaveEvent)
	assert.Equal(t, "{}", e.Contents())
	assert.Same(t, opts, e.Options())

	_, err = googledrive.Save(context.Background(), target, "", opts)
	assert.EqualError(t, err, "Expected contents argument as string.")
	_, err = googledrive.Save(context.Background(), target, "{}", nil)
	assert.EqualError(t, err, "Expected options argument as object.")
}
