// Package starter renders the files written after the project is wired: the
// starter root component, the starter stylesheet, the project README and one
// README per generated folder.
package starter

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/tacogips/vitesetup/internal/debug"
	"github.com/tacogips/vitesetup/internal/fsutil"
	"github.com/tacogips/vitesetup/internal/variant"
)

//go:embed templates/*
var templatesFS embed.FS

var templates = template.Must(
	template.New("starter").
		Funcs(template.FuncMap{
			"last": func(i int, folders []variant.FolderSpec) bool { return i == len(folders)-1 },
		}).
		ParseFS(templatesFS, "templates/*.tmpl"),
)

var rootTemplates = map[variant.Framework]string{
	variant.React:  "react.tmpl",
	variant.Vue:    "vue.tmpl",
	variant.Svelte: "svelte.tmpl",
}

var badges = map[variant.Framework]string{
	variant.React:  "⚛️",
	variant.Vue:    "💚",
	variant.Svelte: "🔺",
}

var routerURLs = map[string]string{
	"react-router-dom":  "https://reactrouter.com",
	"vue-router":        "https://router.vuejs.org",
	"svelte-spa-router": "https://github.com/ItalyPaleAle/svelte-spa-router",
}

// Data is the template context shared by every starter file.
type Data struct {
	ProjectName   string
	FrameworkName string
	LanguageName  string
	TypeScript    bool
	Badge         string
	RootComponent string
	EntryHint     string
	RouterPackage string
	RouterURL     string
	DocsURL       string
	Folders       []variant.FolderSpec
	RunCommand    string
	SnippetLang   string
	ClassAttr     string
}

// NewData builds the template context for a project. runCommand is the
// script runner prefix ("npm run", "pnpm", ...).
func NewData(cfg variant.Config, projectName, runCommand string) Data {
	if runCommand == "" {
		runCommand = "npm run"
	}
	frameworkName, languageName, _ := strings.Cut(cfg.DisplayName, " + ")

	d := Data{
		ProjectName:   projectName,
		FrameworkName: frameworkName,
		LanguageName:  languageName,
		TypeScript:    cfg.IsTypeScript(),
		Badge:         badges[cfg.Framework],
		RootComponent: cfg.RootComponent,
		EntryHint:     "src/main." + cfg.FileExtension,
		RouterPackage: cfg.RouterPackage,
		RouterURL:     routerURLs[cfg.RouterPackage],
		DocsURL:       cfg.DocsURL,
		Folders:       cfg.Folders,
		RunCommand:    runCommand,
		SnippetLang:   string(cfg.Framework),
		ClassAttr:     "class",
	}
	if cfg.Framework == variant.React {
		d.SnippetLang = "jsx"
		d.ClassAttr = "className"
	}
	return d
}

// Writer writes starter files into a project.
type Writer struct {
	fs fsutil.FS
}

// New creates a Writer; a nil fs uses the OS filesystem.
func New(fs fsutil.FS) *Writer {
	if fs == nil {
		fs = fsutil.NewOSFS()
	}
	return &Writer{fs: fs}
}

// RenderRootComponent renders the starter root component for the variant.
func RenderRootComponent(cfg variant.Config, data Data) (string, error) {
	name, ok := rootTemplates[cfg.Framework]
	if !ok {
		return "", fmt.Errorf("no starter component for framework %q", cfg.Framework)
	}
	return render(name, data)
}

// RenderStylesheet renders the starter stylesheet.
func RenderStylesheet(data Data) (string, error) {
	return render("stylesheet.css.tmpl", data)
}

// RenderReadme renders the project README.
func RenderReadme(data Data) (string, error) {
	return render("readme.md.tmpl", data)
}

// WriteStarter overwrites the variant's root component and stylesheet and
// returns the project-relative paths written.
func (w *Writer) WriteStarter(cfg variant.Config, projectRoot string, data Data) ([]string, error) {
	debug.DebugSection("[starter] WriteStarter")

	component, err := RenderRootComponent(cfg, data)
	if err != nil {
		return nil, err
	}
	css, err := RenderStylesheet(data)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, f := range []variant.GeneratedFile{
		{Path: cfg.RootComponent, Content: component},
		{Path: cfg.Stylesheet, Content: css},
	} {
		if err := w.write(projectRoot, f.Path, f.Content); err != nil {
			return written, err
		}
		written = append(written, f.Path)
	}
	return written, nil
}

// DocsOptions controls WriteDocs.
type DocsOptions struct {
	// OverwriteReadme replaces an existing README.md (the generator ships one).
	OverwriteReadme bool
	// FolderReadmes writes src/<folder>/README.md for folders that lack one.
	FolderReadmes bool
}

// WriteDocs writes README.md and, optionally, per-folder READMEs. Folder
// READMEs are never overwritten. It returns the project-relative paths written.
func (w *Writer) WriteDocs(cfg variant.Config, projectRoot string, data Data, opts DocsOptions) ([]string, error) {
	debug.DebugSection("[starter] WriteDocs")

	var written []string
	readmePath := filepath.Join(projectRoot, "README.md")
	if opts.OverwriteReadme || !w.fs.Exists(readmePath) {
		readme, err := RenderReadme(data)
		if err != nil {
			return nil, err
		}
		if err := w.write(projectRoot, "README.md", readme); err != nil {
			return nil, err
		}
		written = append(written, "README.md")
	}

	if !opts.FolderReadmes {
		return written, nil
	}
	for _, folder := range cfg.Folders {
		if folder.Description == "" {
			continue
		}
		rel := "src/" + folder.RelativePath + "/README.md"
		if w.fs.Exists(filepath.Join(projectRoot, filepath.FromSlash(rel))) {
			debug.Debug("[starter] %s exists, skipping", rel)
			continue
		}
		content, err := render("folder_readme.md.tmpl", struct{ Name, Description string }{
			Name:        folder.RelativePath,
			Description: folder.Description,
		})
		if err != nil {
			return written, err
		}
		if err := w.write(projectRoot, rel, content); err != nil {
			return written, err
		}
		written = append(written, rel)
	}
	return written, nil
}

func (w *Writer) write(projectRoot, rel, content string) error {
	debug.Debug("[starter] writing %s", rel)
	return w.fs.WriteFile(filepath.Join(projectRoot, filepath.FromSlash(rel)), []byte(content), 0644)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
