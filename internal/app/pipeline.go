package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/tacogips/vitesetup/internal/fsutil"
	"github.com/tacogips/vitesetup/internal/inject"
	"github.com/tacogips/vitesetup/internal/runner"
	"github.com/tacogips/vitesetup/internal/starter"
	"github.com/tacogips/vitesetup/internal/structure"
	"github.com/tacogips/vitesetup/internal/variant"
)

// Toolchain runs the external generator and the package manager.
type Toolchain interface {
	Generate(ctx context.Context, parentDir, name, templateID string) error
	Install(ctx context.Context, projectRoot string) error
	AddPackages(ctx context.Context, projectRoot string, packages []string, dev bool) error
	PackageManager() runner.PackageManager
}

// pipeline runs the re-entrant stages shared by Create and Wire.
type pipeline struct {
	cfg       variant.Config
	root      string
	engine    *inject.Engine
	structure *structure.Materializer
	starter   *starter.Writer
	data      starter.Data
	log       *stageLog
}

func newPipeline(cfg variant.Config, root, projectName string, fs fsutil.FS, installer inject.Installer, pm runner.PackageManager, log *stageLog) *pipeline {
	if fs == nil {
		fs = fsutil.NewOSFS()
	}
	return &pipeline{
		cfg:       cfg,
		root:      root,
		engine:    inject.New(inject.Options{FS: fs, Installer: installer}),
		structure: structure.New(fs),
		starter:   starter.New(fs),
		data:      starter.NewData(cfg, projectName, pm.RunScript()),
		log:       log,
	}
}

func (p *pipeline) checkCanceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return NewAppError(Canceled, "interrupted", err)
	}
	return nil
}

func (p *pipeline) styling(ctx context.Context) inject.Outcome {
	return p.inject(ctx, StageStyling, p.engine.InjectStyling)
}

func (p *pipeline) routing(ctx context.Context) inject.Outcome {
	return p.inject(ctx, StageRouting, p.engine.InjectRouting)
}

func (p *pipeline) inject(ctx context.Context, stage Stage, fn func(context.Context, variant.Config, string) inject.Outcome) inject.Outcome {
	p.log.start(stage)
	out := fn(ctx, p.cfg, p.root)

	res := StageResult{Stage: stage, Status: StageDone, Detail: out.Name}
	if !out.Succeeded() {
		res.Status = StageWarning
		for _, w := range out.Warnings() {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %s", out.Name, w))
		}
	}
	p.log.finish(res)
	return out
}

func (p *pipeline) materialize() ([]string, error) {
	p.log.start(StageStructure)
	created, err := p.structure.Materialize(p.cfg, p.root)
	if err != nil {
		p.log.fail(StageStructure, err)
		return created, NewMaterializeError("failed to create folder structure", err)
	}
	p.log.done(StageStructure, fmt.Sprintf("%d folders created", len(created)))
	return created, nil
}

func (p *pipeline) writeStarter() ([]string, error) {
	p.log.start(StageStarter)
	files, err := p.starter.WriteStarter(p.cfg, p.root, p.data)
	if err != nil {
		p.log.fail(StageStarter, err)
		return files, NewStarterWriteError("failed to write starter files", err)
	}
	p.log.done(StageStarter, strings.Join(files, ", "))
	return files, nil
}

// writeDocs never fails the run; errors become warnings.
func (p *pipeline) writeDocs(opts starter.DocsOptions) []string {
	p.log.start(StageDocs)
	files, err := p.starter.WriteDocs(p.cfg, p.root, p.data, opts)
	if err != nil {
		p.log.finish(StageResult{
			Stage:    StageDocs,
			Status:   StageWarning,
			Detail:   err.Error(),
			Warnings: []string{"documentation: " + err.Error()},
		})
		return files
	}
	p.log.done(StageDocs, fmt.Sprintf("%d files written", len(files)))
	return files
}
