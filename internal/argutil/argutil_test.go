package argutil_test

import (
	"testing"

	"github.com/arc-labs/arcevents/internal/argutil"
	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/stretchr/testify/assert"
)

type item struct{}

func TestChecks(t *testing.T) {
	assert.NoError(t, argutil.String("id", "p1"))
	assert.EqualError(t, argutil.String("id", ""), "Expected id argument as string.")

	assert.NoError(t, argutil.Object("item", &item{}))
	assert.EqualError(t, argutil.Object[item]("item", nil), "Expected item argument as object.")

	assert.NoError(t, argutil.Slice("ids", []int{}), "an empty list is legal")
	assert.EqualError(t, argutil.Slice[int]("ids", nil), "Expected ids argument as array.")

	assert.NoError(t, argutil.Strings("ids", []string{"a"}))
	assert.EqualError(t, argutil.Strings("ids", []string{"a", ""}), "Expected ids argument as array.")

	assert.NoError(t, argutil.Objects("items", []*item{{}}))
	assert.EqualError(t, argutil.Objects("items", []*item{nil}), "Expected items argument as array.")
}

func TestValueRejectsTypedNil(t *testing.T) {
	var p *item
	var m map[string]string

	assert.Error(t, argutil.Value("data", nil))
	assert.Error(t, argutil.Value("data", p), "a typed nil pointer is still nil")
	assert.Error(t, argutil.Value("data", m))
	assert.NoError(t, argutil.Value("data", 0))
	assert.NoError(t, argutil.Value("data", map[string]string{}))
	assert.True(t, arcerrors.IsArgumentError(argutil.Value("data", nil)))
}

func TestFirst(t *testing.T) {
	assert.NoError(t, argutil.First())
	assert.NoError(t, argutil.First(nil, nil))
	assert.EqualError(t, argutil.First(
		nil,
		argutil.String("url", ""),
		argutil.String("method", ""),
	), "Expected url argument as string.")
}
