package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tacogips/vitesetup/internal/debug"
	"github.com/tacogips/vitesetup/internal/fsutil"
	"github.com/tacogips/vitesetup/internal/inject"
	"github.com/tacogips/vitesetup/internal/runner"
	"github.com/tacogips/vitesetup/internal/starter"
	"github.com/tacogips/vitesetup/internal/variant"
)

// WireOptions contains options for wiring an existing project.
type WireOptions struct {
	// Dir is the project directory (must contain package.json).
	Dir string
	// Stack, Framework and Language select the variant; detected when empty.
	Stack     string
	Framework variant.Framework
	Language  variant.Language
	// Toolchain installs packages. Required unless SkipInstall is set.
	Toolchain Toolchain
	// SkipInstall patches files without installing packages.
	SkipInstall bool
	// FS is the filesystem (default OS).
	FS fsutil.FS
	// FolderReadmes writes a README.md into each generated folder.
	FolderReadmes bool
	// Reporter receives stage progress.
	Reporter Reporter
}

// WireResult contains the results of wiring a project.
type WireResult struct {
	ProjectRoot string
	Variant     variant.Config
	Stages      []StageResult
	Styling     inject.Outcome
	Routing     inject.Outcome
	CreatedDirs []string
	Files       []string
}

// Warnings returns every non-fatal problem encountered.
func (r *WireResult) Warnings() []string {
	var out []string
	for _, s := range r.Stages {
		out = append(out, s.Warnings...)
	}
	return out
}

// Wire re-runs the re-entrant stages (styling, routing, folders, docs) against
// an existing project. It never runs the generator and never replaces the
// starter files or an existing README.md, so running it twice changes nothing.
func Wire(ctx context.Context, opts WireOptions) (*WireResult, error) {
	debug.DebugSection("[app] Wire workflow start")
	debug.DebugValue("[app] Dir", opts.Dir)

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, NewValidationError("failed to resolve project directory", err)
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = fsutil.NewOSFS()
	}

	pkg, err := readPackageJSON(fsys, root)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("%s is not a Vite project", root), err)
	}

	fw, lang, stack := opts.Framework, opts.Language, opts.Stack
	if fw == "" && lang == "" && stack == "" {
		fw, lang, err = detectStack(fsys, pkg, root)
		if err != nil {
			return nil, NewValidationError("cannot detect the stack (pass --stack)", err)
		}
		debug.DebugValue("[app] Detected stack", string(fw)+"-"+string(lang))
	}
	cfg, err := resolveVariant(stack, fw, lang)
	if err != nil {
		return nil, err
	}

	var installer inject.Installer
	pm := runner.NPM
	if opts.Toolchain != nil {
		pm = opts.Toolchain.PackageManager()
		if !opts.SkipInstall {
			installer = opts.Toolchain
		}
	} else if !opts.SkipInstall {
		return nil, NewValidationError("no toolchain configured", nil)
	}

	name := pkg.Name
	if name == "" {
		name = filepath.Base(root)
	}

	log := newStageLog(opts.Reporter)
	result := &WireResult{ProjectRoot: root, Variant: cfg}
	p := newPipeline(cfg, root, name, fsys, installer, pm, log)

	err = runWire(ctx, p, opts, result)
	result.Stages = log.results
	return result, err
}

func runWire(ctx context.Context, p *pipeline, opts WireOptions, result *WireResult) error {
	if err := p.checkCanceled(ctx); err != nil {
		return err
	}
	result.Styling = p.styling(ctx)

	if err := p.checkCanceled(ctx); err != nil {
		return err
	}
	result.Routing = p.routing(ctx)

	dirs, err := p.materialize()
	result.CreatedDirs = dirs
	if err != nil {
		return err
	}

	result.Files = p.writeDocs(starter.DocsOptions{FolderReadmes: opts.FolderReadmes})
	return nil
}
