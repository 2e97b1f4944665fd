package dataimport_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/dataimport"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessFile(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Respond(target, eventtypes.ImportProcessFile, events.Void{})
	file := &types.File{Name: "arc.json", Type: "application/json", Data: []byte("{}")}

	require.NoError(t, dataimport.ProcessFile(context.Background(), target, file, nil))
	e := rec.Last().(*dataimport.ProcessFileEvent)
	assert.Same(t, file, e.File())
	assert.Nil(t, e.Options())

	err := dataimport.ProcessFile(context.Background(), target, nil, nil)
	assert.EqualError(t, err, "Expected file argument as object.")
	assert.Equal(t, 1, rec.Len(), "invalid arguments must not dispatch")
}

func TestProcessDataPropagatesHandlerError(t *testing.T) {
	target := eventtest.NewTarget()
	failure := errors.New("store unavailable")
	eventtest.Fail(target, eventtypes.ImportProcessData, failure)

	err := dataimport.ProcessData(context.Background(), target, &types.ExportObject{Kind: "ARC#Import"})
	assert.Same(t, failure, err)

	err = dataimport.ProcessData(context.Background(), target, nil)
	assert.EqualError(t, err, "Expected data argument as object.")
}

func TestNormalize(t *testing.T) {
	target := eventtest.NewTarget()
	doc := &types.ExportObject{Kind: "ARC#Import", Version: "15.0.0"}
	rec := eventtest.Respond(target, eventtypes.ImportNormalize, doc)

	got, err := dataimport.Normalize(context.Background(), target, `{"kind":"ARC#Import"}`)
	require.NoError(t, err)
	assert.Same(t, doc, got)
	assert.Equal(t, `{"kind":"ARC#Import"}`, rec.Last().(*dataimport.NormalizeEvent).Data())

	_, err = dataimport.Normalize(context.Background(), target, "")
	assert.EqualError(t, err, "Expected data argument as string.")
}

func TestNormalizeWithoutHandler(t *testing.T) {
	got, err := dataimport.Normalize(context.Background(), eventtest.NewTarget(), "{}")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestNotifyDataImported(t *testing.T) {
	target := eventtest.NewTarget()
	rec := eventtest.Record(target, eventtypes.ImportDataImported)

	dataimport.NotifyDataImported(context.Background(), target)
	require.Equal(t, 1, rec.Len())
	assert.Equal(t, eventtypes.ImportDataImported, rec.Last().Type())
}
