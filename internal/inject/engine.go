// Package inject wires capabilities (Tailwind CSS, a router) into a generated
// Vite project by patching well-known files in place.
//
// Every call is best-effort: failures are reported in the returned Outcome and
// never abort the caller. Files are only written when a patch was applied, and
// a file whose primary patches cannot all be applied is left untouched.
package inject

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/tacogips/vitesetup/internal/debug"
	"github.com/tacogips/vitesetup/internal/fsutil"
	"github.com/tacogips/vitesetup/internal/patch"
	"github.com/tacogips/vitesetup/internal/variant"
)

// Installer adds packages to a project.
type Installer interface {
	AddPackages(ctx context.Context, projectRoot string, packages []string, dev bool) error
}

// Options configures an Engine.
type Options struct {
	// FS is the filesystem; defaults to the OS filesystem.
	FS fsutil.FS
	// Installer installs capability packages; nil skips installation.
	Installer Installer
	// Logger receives warnings; defaults to the "inject" component logger.
	Logger *zerolog.Logger
}

// Engine applies a variant's injections to a project directory.
type Engine struct {
	fs        fsutil.FS
	installer Installer
	logger    zerolog.Logger
}

// New creates a new Engine.
func New(opts Options) *Engine {
	fsys := opts.FS
	if fsys == nil {
		fsys = fsutil.NewOSFS()
	}
	logger := debug.Logger("inject")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Engine{fs: fsys, installer: opts.Installer, logger: logger}
}

// InjectStyling installs Tailwind CSS and registers its Vite plugin.
func (e *Engine) InjectStyling(ctx context.Context, cfg variant.Config, projectRoot string) Outcome {
	return e.inject(ctx, cfg.Styling, projectRoot)
}

// InjectRouting installs the framework router, creates the router setup files
// and points the entry point at them.
func (e *Engine) InjectRouting(ctx context.Context, cfg variant.Config, projectRoot string) Outcome {
	return e.inject(ctx, cfg.Routing, projectRoot)
}

func (e *Engine) inject(ctx context.Context, inj variant.Injection, root string) Outcome {
	debug.DebugSection("[inject] " + inj.Name)
	out := Outcome{Name: inj.Name}

	if e.installer != nil && len(inj.Packages) > 0 {
		if err := e.installer.AddPackages(ctx, root, inj.Packages, inj.Dev); err != nil {
			out.Err = err
			out.settle()
			e.logger.Warn().Err(err).Str("capability", inj.Name).Msg("package installation failed, skipping file wiring")
			return out
		}
		out.Installed = append([]string(nil), inj.Packages...)
	}

	for _, f := range inj.Setup {
		step, err := e.ensureFile(root, f)
		out.Steps = append(out.Steps, step)
		if err != nil {
			// The entry point would reference a file that does not exist.
			out.Err = err
			out.settle()
			e.logger.Warn().Err(err).Str("file", f.Path).Msg("could not create setup file")
			return out
		}
	}

	steps, err := e.applySteps(root, inj.Steps)
	out.Steps = append(out.Steps, steps...)
	out.Err = err
	out.settle()

	if !out.Succeeded() {
		for _, w := range out.Warnings() {
			e.logger.Warn().Str("capability", inj.Name).Msg(w)
		}
	}
	return out
}

// ensureFile creates a generated file unless it already exists.
func (e *Engine) ensureFile(root string, f variant.GeneratedFile) (StepResult, error) {
	step := StepResult{Label: "create", Candidates: []string{f.Path}, File: f.Path, Primary: true}
	abs := filepath.Join(root, filepath.FromSlash(f.Path))

	if e.fs.Exists(abs) {
		step.Result = patch.AlreadyApplied
		debug.Debug("[inject] %s exists, leaving it alone", f.Path)
		return step, nil
	}
	if err := e.fs.WriteFile(abs, []byte(f.Content), 0644); err != nil {
		step.Result = patch.FileNotFound
		return step, err
	}
	step.Result = patch.Applied
	debug.Debug("[inject] created %s", f.Path)
	return step, nil
}

// applySteps resolves each step's target, then patches each file once with all
// of its steps so a file is either fully wired or untouched.
func (e *Engine) applySteps(root string, steps []variant.Step) ([]StepResult, error) {
	results := make([]StepResult, len(steps))
	byFile := make(map[string][]int)
	var files []string

	for i, s := range steps {
		results[i] = StepResult{
			Label:      s.Descriptor.Rule.String(),
			Candidates: s.Descriptor.TargetFileCandidates,
			Primary:    s.Primary,
		}
		rel, ok := e.resolve(root, s.Descriptor.TargetFileCandidates)
		if !ok {
			results[i].Result = patch.FileNotFound
			continue
		}
		results[i].File = rel
		if _, seen := byFile[rel]; !seen {
			files = append(files, rel)
		}
		byFile[rel] = append(byFile[rel], i)
	}

	var firstErr error
	for _, rel := range files {
		if err := e.patchFile(root, rel, steps, byFile[rel], results); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return results, firstErr
}

func (e *Engine) patchFile(root, rel string, steps []variant.Step, idx []int, results []StepResult) error {
	abs := filepath.Join(root, filepath.FromSlash(rel))

	data, err := e.fs.ReadFile(abs)
	if err != nil {
		for _, i := range idx {
			results[i].Result = patch.FileNotFound
		}
		return err
	}

	text := string(data)
	changed := false
	complete := true
	for _, i := range idx {
		var r patch.Result
		text, r = patch.Apply(text, steps[i].Descriptor)
		results[i].Result = r
		debug.Debug("[inject] %s: %s -> %s", rel, results[i].Label, r)
		if r == patch.Applied {
			changed = true
		}
		if steps[i].Primary && !r.Done() {
			complete = false
		}
	}

	if !complete {
		discard(idx, results)
		return nil
	}
	if !changed {
		return nil
	}
	if err := e.fs.WriteFile(abs, []byte(text), 0644); err != nil {
		discard(idx, results)
		return err
	}
	return nil
}

func discard(idx []int, results []StepResult) {
	for _, i := range idx {
		if results[i].Result == patch.Applied {
			results[i].Discarded = true
		}
	}
}

func (e *Engine) resolve(root string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if e.fs.IsFile(filepath.Join(root, filepath.FromSlash(c))) {
			return c, true
		}
	}
	return "", false
}
