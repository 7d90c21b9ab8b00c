package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/vitesetup/internal/inject"
	"github.com/tacogips/vitesetup/internal/patch"
	"github.com/tacogips/vitesetup/internal/variant"
)

func TestWire_AfterCreateChangesNothing(t *testing.T) {
	parent := t.TempDir()
	tc := &fakeToolchain{}

	created, err := Create(context.Background(), CreateOptions{
		Name: "app", Stack: "react-ts", ParentDir: parent, Toolchain: tc, FolderReadmes: true,
	})
	require.NoError(t, err)
	before := snapshot(t, created.ProjectRoot)

	result, err := Wire(context.Background(), WireOptions{Dir: created.ProjectRoot, Toolchain: tc, FolderReadmes: true})
	require.NoError(t, err)

	assert.Equal(t, variant.React, result.Variant.Framework)
	assert.Equal(t, variant.TypeScript, result.Variant.Language)
	assert.Empty(t, result.Warnings())
	assert.False(t, result.Styling.Changed())
	assert.False(t, result.Routing.Changed())
	for _, s := range append(result.Styling.Steps, result.Routing.Steps...) {
		assert.Equal(t, patch.AlreadyApplied, s.Result, s.Label)
	}
	assert.Empty(t, result.CreatedDirs)
	assert.Empty(t, result.Files)
	assert.Equal(t, before, snapshot(t, created.ProjectRoot))
}

func TestWire_FreshTemplateWithoutInstall(t *testing.T) {
	root := filepath.Join(t.TempDir(), "shop")
	require.NoError(t, writeSkeleton(root, "shop", "vue-ts"))

	result, err := Wire(context.Background(), WireOptions{Dir: root, SkipInstall: true})
	require.NoError(t, err)

	assert.Equal(t, "vue-ts", result.Variant.TemplateID)
	assert.Equal(t, inject.Succeeded, result.Styling.Status)
	assert.Empty(t, result.Styling.Installed)
	assert.Contains(t, readFile(t, root, "src", "main.ts"), "createApp(App).use(router)")
	assert.DirExists(t, filepath.Join(root, "src", "composables"))
	// The generator README is kept.
	assert.Equal(t, "# Vite template\n", readFile(t, root, "README.md"))
	// Starter files are never written by Wire.
	assert.Equal(t, "<template><div /></template>\n", readFile(t, root, "src", "App.vue"))
}

func TestWire_DoubleQuotedProjectIsNotPatchedTwice(t *testing.T) {
	root := filepath.Join(t.TempDir(), "app")
	require.NoError(t, writeSkeleton(root, "app", "react-ts"))

	viteConfig := "import { defineConfig } from \"vite\";\nimport react from \"@vitejs/plugin-react\";\nimport tailwindcss from \"@tailwindcss/vite\";\n\nexport default defineConfig({\n  plugins: [tailwindcss(), react()],\n});\n"
	main := "import { StrictMode } from \"react\";\nimport { createRoot } from \"react-dom/client\";\nimport \"./index.css\";\nimport { RouterProvider } from \"react-router-dom\";\nimport { router } from \"./router\";\n\ncreateRoot(document.getElementById(\"root\")!).render(\n  <StrictMode>\n    <RouterProvider router={router} />\n  </StrictMode>,\n);\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "vite.config.ts"), []byte(viteConfig), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.tsx"), []byte(main), 0644))

	result, err := Wire(context.Background(), WireOptions{Dir: root, SkipInstall: true})
	require.NoError(t, err)

	assert.Equal(t, inject.Succeeded, result.Styling.Status)
	got := readFile(t, root, "vite.config.ts")
	assert.Equal(t, viteConfig, got)
	assert.Equal(t, 1, strings.Count(got, "import tailwindcss"))
	assert.Equal(t, main, readFile(t, root, "src", "main.tsx"))
}

func TestWire_ReadsProjectThroughInjectedFS(t *testing.T) {
	root := filepath.Join(t.TempDir(), "p")
	require.NoError(t, writeSkeleton(root, "p", "vue-ts"))
	fsys := newRecordingFS()

	_, err := Wire(context.Background(), WireOptions{Dir: root, SkipInstall: true, FS: fsys})
	require.NoError(t, err)
	assert.Contains(t, fsys.reads, filepath.Join(root, "package.json"))
}

func TestWire_ExplicitStack(t *testing.T) {
	root := filepath.Join(t.TempDir(), "p")
	require.NoError(t, writeSkeleton(root, "p", "svelte"))

	result, err := Wire(context.Background(), WireOptions{Dir: root, Stack: "svelte-js", SkipInstall: true})
	require.NoError(t, err)
	assert.Equal(t, variant.Svelte, result.Variant.Framework)
	assert.Equal(t, variant.JavaScript, result.Variant.Language)
}

func TestWire_NotAProject(t *testing.T) {
	_, err := Wire(context.Background(), WireOptions{Dir: t.TempDir(), SkipInstall: true})

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ValidationFailed, appErr.Type)
}

func TestWire_RequiresToolchainToInstall(t *testing.T) {
	root := filepath.Join(t.TempDir(), "p")
	require.NoError(t, writeSkeleton(root, "p", "react"))

	_, err := Wire(context.Background(), WireOptions{Dir: root})

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ValidationFailed, appErr.Type)
}
