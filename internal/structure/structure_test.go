package structure

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/vitesetup/internal/variant"
)

func vueTS(t *testing.T) variant.Config {
	t.Helper()
	cfg, err := variant.Lookup(variant.Vue, variant.TypeScript)
	require.NoError(t, err)
	return cfg
}

func TestMaterialize_Vue(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "assets"), 0755))
	marker := filepath.Join(root, "src", "assets", "vue.svg")
	require.NoError(t, os.WriteFile(marker, []byte("<svg/>"), 0644))

	created, err := Materialize(vueTS(t), root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"src/components", "src/views", "src/composables", "src/stores", "src/utils", "src/router",
	}, created)

	for _, dir := range []string{"components", "views", "composables", "stores", "assets", "utils", "router"} {
		assert.DirExists(t, filepath.Join(root, "src", dir))
	}
	// Pre-existing content survives.
	assert.FileExists(t, marker)
}

func TestMaterialize_SecondRun(t *testing.T) {
	root := t.TempDir()
	cfg := vueTS(t)

	_, err := Materialize(cfg, root)
	require.NoError(t, err)

	created, err := Materialize(cfg, root)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestMaterialize_FileInTheWay(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "components"), []byte("x"), 0644))

	_, err := Materialize(vueTS(t), root)
	require.Error(t, err)

	var serr *Error
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "src/components", serr.Path)
	assert.True(t, errors.Is(err, fs.ErrExist))
}
