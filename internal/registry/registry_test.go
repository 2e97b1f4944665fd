package registry_test

import (
	"testing"

	"github.com/arc-labs/arcevents/internal/registry"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	r := registry.NewStaticRegistry()
	require.NoError(t, r.Register("Model.Project.update", "modelprojectchange"))
	require.NoError(t, r.Register("Model.Project.delete", "modelprojectdelete"))

	got, err := r.Get("Model.Project.update")
	require.NoError(t, err)
	assert.Equal(t, "modelprojectchange", string(got))

	path, ok := r.PathOf("modelprojectdelete")
	assert.True(t, ok)
	assert.Equal(t, "Model.Project.delete", path)

	assert.Equal(t, []registry.Entry{
		{Path: "Model.Project.delete", Type: "modelprojectdelete"},
		{Path: "Model.Project.update", Type: "modelprojectchange"},
	}, r.List())
	assert.Equal(t, 2, r.Len())
}

func TestRegisterRejectsCollisions(t *testing.T) {
	r := registry.NewStaticRegistry()
	require.NoError(t, r.Register("A.update", "aupdate"))

	var cfgErr *arcerrors.ConfigError
	err := r.Register("A.update", "other")
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "duplicate path")

	err = r.Register("B.update", "aupdate")
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "collides with 'A.update'")

	assert.Error(t, r.Register("", "x"))
	assert.Error(t, r.Register("C.x", ""))
	assert.Equal(t, 1, r.Len())
}

func TestGetMissing(t *testing.T) {
	_, err := registry.NewStaticRegistry().Get("Nope.nothing")
	var nf *arcerrors.TypeNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Nope.nothing", nf.Path)
}

func TestCloneIsIndependent(t *testing.T) {
	r := registry.NewStaticRegistry()
	require.NoError(t, r.Register("A.x", "ax"))
	c := r.Clone()
	require.NoError(t, c.Register("B.x", "bx"))

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 2, c.Len())
	assert.Error(t, c.Register("C.x", "ax"), "clone keeps the uniqueness index")
}

func TestCheckUnique(t *testing.T) {
	assert.NoError(t, registry.CheckUnique([]registry.Entry{{Path: "A.x", Type: "ax"}, {Path: "B.x", Type: "bx"}}))

	err := registry.CheckUnique([]registry.Entry{
		{Path: "A.x", Type: "ax"},
		{Path: "B.x", Type: "ax"},
		{Path: "A.x", Type: "zz"},
	})
	var ve *arcerrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, err.Error(), "2 event type collision(s)")
	assert.Contains(t, err.Error(), "'A.x' and 'B.x' share type 'ax'")
	assert.Contains(t, err.Error(), "duplicate path 'A.x'")
}
