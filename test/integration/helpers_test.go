package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/tacogips/vitesetup/internal/runner"
)

// fixtureRunner stands in for the package manager. "create" copies a fixture
// template into place; every other command succeeds unless listed in fail.
type fixtureRunner struct {
	t    *testing.T
	mu   sync.Mutex
	cmds []string
	fail map[string]runner.Result
}

func newFixtureRunner(t *testing.T) *fixtureRunner {
	return &fixtureRunner{t: t, fail: map[string]runner.Result{}}
}

func (r *fixtureRunner) Run(ctx context.Context, name string, args []string, opts runner.Opts) (runner.Result, error) {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.mu.Lock()
	r.cmds = append(r.cmds, line)
	r.mu.Unlock()

	if res, ok := r.fail[line]; ok {
		return res, nil
	}
	if len(args) > 1 && args[0] == "create" {
		templateID := args[len(args)-1]
		copyFixture(r.t, templateID, filepath.Join(opts.Dir, args[2]))
	}
	return runner.Result{}, nil
}

func (r *fixtureRunner) commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.cmds...)
}

// copyFixture copies a fixture template directory to dest.
func copyFixture(t *testing.T, fixtureName, dest string) {
	t.Helper()

	fixtureDir, err := filepath.Abs(filepath.Join("../fixtures/templates", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}

	err = filepath.Walk(fixtureDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(fixtureDir, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(dest, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(destPath, data, 0644)
	})
	if err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}
}

func readFixture(t *testing.T, fixtureName, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("../fixtures/templates", fixtureName, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	return string(data)
}

func readProjectFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

// snapshotTree maps every file under root to its content.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", root, err)
	}
	return files
}
