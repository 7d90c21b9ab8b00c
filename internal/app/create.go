package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tacogips/vitesetup/internal/debug"
	"github.com/tacogips/vitesetup/internal/fsutil"
	"github.com/tacogips/vitesetup/internal/inject"
	"github.com/tacogips/vitesetup/internal/runner"
	"github.com/tacogips/vitesetup/internal/starter"
	"github.com/tacogips/vitesetup/internal/variant"
)

// CreateOptions contains options for creating a project.
type CreateOptions struct {
	// Name is the project name and directory name.
	Name string
	// Stack is "<framework>-<language>" (e.g. "react-ts"). Ignored when
	// Framework or Language is set.
	Stack string
	// Framework and Language select the variant explicitly.
	Framework variant.Framework
	Language  variant.Language
	// ParentDir is where the project directory is created (default ".").
	ParentDir string
	// Toolchain runs the generator and package manager.
	Toolchain Toolchain
	// FS is the filesystem (default OS).
	FS fsutil.FS
	// FolderReadmes writes a README.md into each generated folder.
	FolderReadmes bool
	// DryRun reports the planned stages without running anything.
	DryRun bool
	// Reporter receives stage progress.
	Reporter Reporter
}

// CreateResult contains the results of project creation.
type CreateResult struct {
	// ProjectRoot is the absolute project directory.
	ProjectRoot string
	// Variant is the selected registry entry.
	Variant variant.Config
	// Stages are the stage results in execution order.
	Stages []StageResult
	// Styling and Routing are the injection outcomes.
	Styling inject.Outcome
	Routing inject.Outcome
	// CreatedDirs are the folders created under src/.
	CreatedDirs []string
	// Files are the starter and documentation files written.
	Files []string
	// DryRun is set when nothing was executed.
	DryRun bool
}

// Warnings returns every non-fatal problem encountered.
func (r *CreateResult) Warnings() []string {
	var out []string
	for _, s := range r.Stages {
		out = append(out, s.Warnings...)
	}
	return out
}

// Create scaffolds a new project: generate, install, wire Tailwind CSS and the
// router, create folders, then write the starter page and docs.
// Generation, installation, folder creation and starter files are fatal;
// injection and documentation problems are reported as warnings.
func Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	debug.DebugSection("[app] Create workflow start")
	debug.DebugValue("[app] Name", opts.Name)
	debug.DebugValue("[app] Stack", opts.Stack)
	debug.DebugValue("[app] DryRun", opts.DryRun)

	if err := ValidateProjectName(opts.Name); err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid project name %q", opts.Name), err)
	}

	// Unknown variants fail before any process runs or any file is written.
	cfg, err := resolveVariant(opts.Stack, opts.Framework, opts.Language)
	if err != nil {
		return nil, err
	}
	debug.DebugJSON("[app] Variant", cfg.Variant)

	if opts.Toolchain == nil && !opts.DryRun {
		return nil, NewValidationError("no toolchain configured", nil)
	}

	parent := opts.ParentDir
	if parent == "" {
		parent = "."
	}
	absParent, err := filepath.Abs(parent)
	if err != nil {
		return nil, NewValidationError("failed to resolve parent directory", err)
	}
	root := filepath.Join(absParent, opts.Name)

	fsys := opts.FS
	if fsys == nil {
		fsys = fsutil.NewOSFS()
	}
	empty, err := fsys.IsEmptyDir(root)
	if err != nil {
		return nil, NewValidationError("failed to inspect project directory", err)
	}
	if !empty {
		return nil, NewValidationError(fmt.Sprintf("directory %s already exists and is not empty", root), nil)
	}

	pm := runner.NPM
	if opts.Toolchain != nil {
		pm = opts.Toolchain.PackageManager()
	}

	log := newStageLog(opts.Reporter)
	result := &CreateResult{ProjectRoot: root, Variant: cfg, DryRun: opts.DryRun}

	if opts.DryRun {
		plan(log, cfg, root, pm, opts.FolderReadmes)
		result.Stages = log.results
		return result, nil
	}

	err = runCreate(ctx, opts, cfg, absParent, root, pm, log, result)
	result.Stages = log.results
	if err != nil {
		return result, err
	}

	debug.Debug("[app] Create workflow completed with %d warnings", len(result.Warnings()))
	return result, nil
}

func runCreate(ctx context.Context, opts CreateOptions, cfg variant.Config, parent, root string, pm runner.PackageManager, log *stageLog, result *CreateResult) error {
	p := newPipeline(cfg, root, opts.Name, opts.FS, opts.Toolchain, pm, log)

	if err := p.checkCanceled(ctx); err != nil {
		return err
	}
	log.start(StageGenerate)
	if err := opts.Toolchain.Generate(ctx, parent, opts.Name, cfg.TemplateID); err != nil {
		log.fail(StageGenerate, err)
		return NewGenerateError(fmt.Sprintf("failed to create %s project", cfg.DisplayName), err)
	}
	log.done(StageGenerate, cfg.TemplateID)

	if err := p.checkCanceled(ctx); err != nil {
		return err
	}
	log.start(StageInstall)
	if err := opts.Toolchain.Install(ctx, root); err != nil {
		log.fail(StageInstall, err)
		return NewInstallError("failed to install dependencies", err)
	}
	log.done(StageInstall, string(pm)+" install")

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

	files, err := p.writeStarter()
	result.Files = append(result.Files, files...)
	if err != nil {
		return err
	}

	result.Files = append(result.Files, p.writeDocs(starter.DocsOptions{
		OverwriteReadme: true,
		FolderReadmes:   opts.FolderReadmes,
	})...)
	return nil
}

// plan records what Create would do without doing it.
func plan(log *stageLog, cfg variant.Config, root string, pm runner.PackageManager, folderReadmes bool) {
	planned := func(s Stage, detail string) {
		log.finish(StageResult{Stage: s, Status: StagePlanned, Detail: detail})
	}

	planned(StageGenerate, fmt.Sprintf("template %s into %s", cfg.TemplateID, root))
	planned(StageInstall, string(pm)+" install")
	planned(StageStyling, "install "+strings.Join(cfg.Styling.Packages, " ")+" and register the Vite plugin")
	routing := "install " + cfg.RouterPackage
	for i, f := range cfg.Routing.Setup {
		if i == 0 {
			routing += " and create "
		} else {
			routing += ", "
		}
		routing += f.Path
	}
	planned(StageRouting, routing)

	folders := make([]string, 0, len(cfg.Folders))
	for _, f := range cfg.FolderPaths() {
		folders = append(folders, "src/"+f)
	}
	planned(StageStructure, strings.Join(folders, ", "))
	planned(StageStarter, cfg.RootComponent+", "+cfg.Stylesheet)

	docs := "README.md"
	if folderReadmes {
		docs += " and folder READMEs"
	}
	planned(StageDocs, docs)
}
