package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/tacogips/vitesetup/internal/fsutil"
	"github.com/tacogips/vitesetup/internal/variant"
)

type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func (p packageJSON) has(name string) bool {
	_, dep := p.Dependencies[name]
	_, dev := p.DevDependencies[name]
	return dep || dev
}

func readPackageJSON(fsys fsutil.FS, projectRoot string) (*packageJSON, error) {
	data, err := fsys.ReadFile(filepath.Join(projectRoot, "package.json"))
	if err != nil {
		return nil, err
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("invalid package.json: %w", err)
	}
	return &pkg, nil
}

// DetectStack infers the framework from package.json dependencies and the
// language from a typescript dependency or a tsconfig.json.
func DetectStack(projectRoot string) (variant.Framework, variant.Language, error) {
	fsys := fsutil.NewOSFS()
	pkg, err := readPackageJSON(fsys, projectRoot)
	if err != nil {
		return "", "", err
	}
	return detectStack(fsys, pkg, projectRoot)
}

func detectStack(fsys fsutil.FS, pkg *packageJSON, projectRoot string) (variant.Framework, variant.Language, error) {
	var fw variant.Framework
	switch {
	case pkg.has("react"):
		fw = variant.React
	case pkg.has("vue"):
		fw = variant.Vue
	case pkg.has("svelte"):
		fw = variant.Svelte
	default:
		return "", "", fmt.Errorf("no react, vue or svelte dependency in package.json")
	}

	lang := variant.JavaScript
	if pkg.has("typescript") {
		lang = variant.TypeScript
	} else if fsys.IsFile(filepath.Join(projectRoot, "tsconfig.json")) {
		lang = variant.TypeScript
	}
	return fw, lang, nil
}
