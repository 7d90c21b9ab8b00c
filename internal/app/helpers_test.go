package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tacogips/vitesetup/internal/fsutil"
	"github.com/tacogips/vitesetup/internal/runner"
)

// recordingFS wraps the OS filesystem, records reads and can claim every
// directory is occupied.
type recordingFS struct {
	fsutil.FS
	mu       sync.Mutex
	reads    []string
	occupied bool
}

func newRecordingFS() *recordingFS {
	return &recordingFS{FS: fsutil.NewOSFS()}
}

func (f *recordingFS) ReadFile(path string) ([]byte, error) {
	f.mu.Lock()
	f.reads = append(f.reads, path)
	f.mu.Unlock()
	return f.FS.ReadFile(path)
}

func (f *recordingFS) IsEmptyDir(path string) (bool, error) {
	if f.occupied {
		return false, nil
	}
	return f.FS.IsEmptyDir(path)
}

// fakeToolchain records calls and lays out a Vite-like project on Generate.
type fakeToolchain struct {
	mu          sync.Mutex
	calls       []string
	generateErr error
	installErr  error
	addErr      error
}

func (f *fakeToolchain) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeToolchain) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeToolchain) Generate(ctx context.Context, parentDir, name, templateID string) error {
	f.record("generate " + templateID)
	if f.generateErr != nil {
		return f.generateErr
	}
	return writeSkeleton(filepath.Join(parentDir, name), name, templateID)
}

func (f *fakeToolchain) Install(ctx context.Context, projectRoot string) error {
	f.record("install")
	return f.installErr
}

func (f *fakeToolchain) AddPackages(ctx context.Context, projectRoot string, packages []string, dev bool) error {
	call := "add " + strings.Join(packages, " ")
	if dev {
		call += " -D"
	}
	f.record(call)
	return f.addErr
}

func (f *fakeToolchain) PackageManager() runner.PackageManager {
	return runner.NPM
}

// writeSkeleton mimics the files of the standard Vite templates that the
// injection steps touch.
func writeSkeleton(root, name, templateID string) error {
	fw, _, _ := strings.Cut(templateID, "-")
	ts := strings.HasSuffix(templateID, "-ts")
	ext := "js"
	if ts {
		ext = "ts"
	}

	deps := map[string]string{
		"react":  `"react": "^19.0.0", "react-dom": "^19.0.0"`,
		"vue":    `"vue": "^3.5.0"`,
		"svelte": `"svelte": "^5.0.0"`,
	}[fw]
	devDeps := `"vite": "^6.0.0"`
	if ts {
		devDeps += `, "typescript": "~5.7.0"`
	}

	files := map[string]string{
		"package.json": `{"name": "` + name + `", "dependencies": {` + deps + `}, "devDependencies": {` + devDeps + `}}`,
		"README.md":    "# Vite template\n",
	}

	plugin := map[string]string{
		"react":  "import react from '@vitejs/plugin-react'\n",
		"vue":    "import vue from '@vitejs/plugin-vue'\n",
		"svelte": "import { svelte } from '@sveltejs/vite-plugin-svelte'\n",
	}[fw]
	call := map[string]string{"react": "react()", "vue": "vue()", "svelte": "svelte()"}[fw]
	files["vite.config."+ext] = "import { defineConfig } from 'vite'\n" + plugin +
		"\n// https://vite.dev/config/\nexport default defineConfig({\n  plugins: [" + call + "],\n})\n"

	switch fw {
	case "react":
		jsx := "jsx"
		if ts {
			jsx = "tsx"
		}
		files["src/main."+jsx] = "import { StrictMode } from 'react'\nimport { createRoot } from 'react-dom/client'\nimport './index.css'\nimport App from './App." + jsx + "'\n\ncreateRoot(document.getElementById('root')).render(\n  <StrictMode>\n    <App />\n  </StrictMode>,\n)\n"
		files["src/App."+jsx] = "export default function App() { return null }\n"
		files["src/index.css"] = ":root { font-family: system-ui; }\n"
	case "vue":
		files["src/main."+ext] = "import { createApp } from 'vue'\nimport './style.css'\nimport App from './App.vue'\n\ncreateApp(App).mount('#app')\n"
		files["src/App.vue"] = "<template><div /></template>\n"
		files["src/style.css"] = ":root { font-family: system-ui; }\n"
	case "svelte":
		files["src/main."+ext] = "import { mount } from 'svelte'\nimport './app.css'\nimport App from './App.svelte'\n\nconst app = mount(App, {\n  target: document.getElementById('app'),\n})\n\nexport default app\n"
		files["src/App.svelte"] = "<main></main>\n"
		files["src/app.css"] = ":root { font-family: system-ui; }\n"
	}
	files["src/assets/logo.svg"] = "<svg/>"

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

func readFile(t *testing.T, path ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(path...))
	require.NoError(t, err)
	return string(data)
}

// snapshot returns every file under root keyed by relative path.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}

type recordingReporter struct {
	started  []Stage
	finished []StageResult
}

func (r *recordingReporter) StageStarted(s Stage)          { r.started = append(r.started, s) }
func (r *recordingReporter) StageFinished(res StageResult) { r.finished = append(r.finished, res) }
