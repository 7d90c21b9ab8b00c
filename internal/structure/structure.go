// Package structure creates the folder layout of a variant under src/.
package structure

import (
	"path/filepath"

	"github.com/tacogips/vitesetup/internal/debug"
	"github.com/tacogips/vitesetup/internal/fsutil"
	"github.com/tacogips/vitesetup/internal/variant"
)

// Materializer creates variant folders. Existing directories are left alone.
type Materializer struct {
	fs fsutil.FS
}

// New creates a Materializer; a nil fs uses the OS filesystem.
func New(fs fsutil.FS) *Materializer {
	if fs == nil {
		fs = fsutil.NewOSFS()
	}
	return &Materializer{fs: fs}
}

// Materialize creates projectRoot/src/<folder> for every folder of cfg and
// returns the project-relative directories it created, in registry order.
func (m *Materializer) Materialize(cfg variant.Config, projectRoot string) ([]string, error) {
	debug.DebugSection("[structure] Materialize")

	var created []string
	for _, folder := range cfg.Folders {
		rel := filepath.ToSlash(filepath.Join("src", filepath.FromSlash(folder.RelativePath)))
		abs := filepath.Join(projectRoot, filepath.FromSlash(rel))

		ok, err := m.fs.CreateDir(abs)
		if err != nil {
			return created, &Error{Path: rel, Cause: err}
		}
		if ok {
			created = append(created, rel)
			debug.Debug("[structure] created %s", rel)
		} else {
			debug.Debug("[structure] %s already exists", rel)
		}
	}
	return created, nil
}

// Materialize creates the folders of cfg on the OS filesystem.
func Materialize(cfg variant.Config, projectRoot string) ([]string, error) {
	return New(nil).Materialize(cfg, projectRoot)
}
