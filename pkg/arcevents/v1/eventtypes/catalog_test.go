package eventtypes_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	arcerrors "github.com/arc-labs/arcevents/pkg/arcevents/v1/errors"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsUnique(t *testing.T) {
	all := eventtypes.All()
	require.NotEmpty(t, all)
	assert.NoError(t, eventtypes.EnsureUnique(all))

	seen := make(map[string]string, len(all))
	for _, e := range all {
		if owner, dup := seen[string(e.Type)]; dup {
			t.Errorf("%s and %s share type %q", owner, e.Path, e.Type)
		}
		seen[string(e.Type)] = e.Path
	}
}

func TestAllIsSortedByPath(t *testing.T) {
	all := eventtypes.All()
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Path, all[i].Path)
	}
}

func TestLookup(t *testing.T) {
	typ, err := eventtypes.Lookup("Model.Project.update")
	require.NoError(t, err)
	assert.Equal(t, eventtypes.ProjectUpdate, typ)

	path, ok := eventtypes.PathOf(eventtypes.AuthDataUpdate)
	assert.True(t, ok)
	assert.Equal(t, "Model.AuthData.update", path)

	_, err = eventtypes.Lookup("Model.Project.nothing")
	var nf *arcerrors.TypeNotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestNamespace(t *testing.T) {
	entries, err := eventtypes.Namespace("Model.Project")
	require.NoError(t, err)
	assert.Len(t, entries, 8)
	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.Path, "Model.Project."), e.Path)
	}

	_, err = eventtypes.Namespace("Model.Proj")
	assert.Error(t, err, "prefixes match whole path segments only")
}

func TestEnsureUniqueDetectsCollision(t *testing.T) {
	entries := append(eventtypes.All(), eventtypes.Entry{Path: "Extension.project.update", Type: eventtypes.ProjectUpdate})
	err := eventtypes.EnsureUnique(entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'Model.Project.update' and 'Extension.project.update' share type 'modelprojectchange'")
}

// Every constant declared in eventtypes.go must appear in the catalog, so a
// type added without a path cannot escape the uniqueness check.
func TestEveryConstantIsCataloged(t *testing.T) {
	registered := make(map[string]bool)
	for _, e := range eventtypes.All() {
		registered[string(e.Type)] = true
	}

	file, err := parser.ParseFile(token.NewFileSet(), "eventtypes.go", nil, 0)
	require.NoError(t, err)
	var constants []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, s := range gen.Specs {
			for _, value := range s.(*ast.ValueSpec).Values {
				lit, ok := value.(*ast.BasicLit)
				require.True(t, ok, "event type constants must be string literals")
				typ, err := strconv.Unquote(lit.Value)
				require.NoError(t, err)
				constants = append(constants, typ)
			}
		}
	}

	require.NotEmpty(t, constants)
	for _, c := range constants {
		assert.True(t, registered[c], "%s is not cataloged", c)
	}
	assert.Len(t, registered, len(constants), "every catalog entry has a constant")
}
