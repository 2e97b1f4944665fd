package dataexport_test

import (
	"context"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/dataexport"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomData(t *testing.T) {
	target := eventtest.NewTarget()
	result := &types.ExportResult{Success: true, FileID: "f1"}
	rec := eventtest.Respond(target, eventtypes.ExportCustomData, result)

	data := &types.ExportObject{Kind: "ARC#AllDataExport"}
	opts := &types.ExportOptions{Provider: dataexport.ProviderFile, File: "arc.json"}
	got, err := dataexport.CustomData(context.Background(), target, data, opts)
	require.NoError(t, err)
	assert.Same(t, result, got)

	e := rec.Last().(*dataexport.CustomDataEvent)
	assert.Same(t, data, e.Data())
	assert.Same(t, opts, e.Options())

	_, err = dataexport.CustomData(context.Background(), target, nil, opts)
	assert.EqualError(t, err, "Expected data argument as object.")
	_, err = dataexport.CustomData(context.Background(), target, data, nil)
	assert.EqualError(t, err, "Expected exportOptions argument as object.")
}

func TestNativeData(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Respond(target, eventtypes.ExportNativeData, &types.ExportResult{Success: true})

	selection := &types.NativeDataExport{Projects: true, Requests: true}
	got, err := dataexport.NativeData(context.Background(), target, selection, &types.ExportOptions{Provider: dataexport.ProviderDrive})
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.True(t, rec.Last().(*dataexport.NativeDataEvent).Data().Projects)
}

func TestSaveEvents(t *testing.T) {
	target := eventtest.NewTarget()
	file := eventtest.Respond(target, eventtypes.ExportFileSave, &types.ExportResult{Success: true})
	drive := eventtest.Respond(target, eventtypes.ExportGoogleDriveSave, &types.ExportResult{Success: true, ParentID: "root"})
	opts := &types.ProviderOptions{File: "export.json"}
	ctx := context.Background()

	_, err := dataexport.FileSave(ctx, target, "{}", opts)
	require.NoError(t, err)
	got, err := dataexport.GoogleDriveSave(ctx, target, "{}", opts)
	require.NoError(t, err)
	assert.Equal(t, "root", got.ParentID)

	assert.Equal(t, "{}", file.Last().(*dataexport.SaveEvent).Data())
	assert.Same(t, opts, drive.Last().(*dataexport.SaveEvent).Options())

	_, err = dataexport.FileSave(ctx, target, "", opts)
	assert.EqualError(t, err, "Expected data argument as string.")
	_, err = dataexport.GoogleDriveSave(ctx, target, "{}", nil)
	assert.EqualError(t, err, "Expected providerOptions argument as object.")
}
