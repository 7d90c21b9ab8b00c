package runner

import (
	"context"
	"fmt"
	"strings"
)

// PackageManager names a supported JavaScript package manager.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

// PackageManagers lists the supported package managers.
func PackageManagers() []PackageManager {
	return []PackageManager{NPM, PNPM, Yarn, Bun}
}

// ParsePackageManager validates a package manager name.
func ParsePackageManager(name string) (PackageManager, error) {
	for _, pm := range PackageManagers() {
		if string(pm) == strings.ToLower(strings.TrimSpace(name)) {
			return pm, nil
		}
	}
	return "", fmt.Errorf("unsupported package manager %q (supported: %v)", name, PackageManagers())
}

// RunScript returns the prefix used to run a package.json script ("npm run").
func (pm PackageManager) RunScript() string {
	switch pm {
	case NPM, Bun:
		return string(pm) + " run"
	default:
		return string(pm)
	}
}

// Toolchain drives the external generator and the package manager.
type Toolchain struct {
	runner        Runner
	pm            PackageManager
	createPackage string
}

// NewToolchain creates a Toolchain. createPackage is the generator package
// passed to "<pm> create" (e.g. "vite@latest").
func NewToolchain(r Runner, pm PackageManager, createPackage string) *Toolchain {
	if pm == "" {
		pm = NPM
	}
	if createPackage == "" {
		createPackage = "vite@latest"
	}
	return &Toolchain{runner: r, pm: pm, createPackage: createPackage}
}

// PackageManager returns the package manager in use.
func (t *Toolchain) PackageManager() PackageManager {
	return t.pm
}

// GenerateArgs returns the generator command line for a project.
func (t *Toolchain) GenerateArgs(name, templateID string) []string {
	switch t.pm {
	case NPM:
		return []string{"npm", "create", t.createPackage, name, "--", "--template", templateID}
	default:
		pkg := t.createPackage
		if i := strings.LastIndex(pkg, "@"); i > 0 {
			pkg = pkg[:i]
		}
		return []string{string(t.pm), "create", pkg, name, "--template", templateID}
	}
}

// InstallArgs returns the base dependency install command line.
func (t *Toolchain) InstallArgs() []string {
	return []string{string(t.pm), "install"}
}

// AddArgs returns the command line that adds packages to the project.
func (t *Toolchain) AddArgs(packages []string, dev bool) []string {
	var args []string
	switch t.pm {
	case NPM:
		args = []string{"npm", "install"}
		if dev {
			args = append(args, "-D")
		}
	case Bun:
		args = []string{"bun", "add"}
		if dev {
			args = append(args, "-d")
		}
	default:
		args = []string{string(t.pm), "add"}
		if dev {
			args = append(args, "-D")
		}
	}
	return append(args, packages...)
}

// Generate runs the external generator in parentDir, producing parentDir/name.
func (t *Toolchain) Generate(ctx context.Context, parentDir, name, templateID string) error {
	return t.run(ctx, parentDir, t.GenerateArgs(name, templateID))
}

// Install installs the dependencies declared in projectRoot/package.json.
func (t *Toolchain) Install(ctx context.Context, projectRoot string) error {
	return t.run(ctx, projectRoot, t.InstallArgs())
}

// AddPackages installs packages into the project.
func (t *Toolchain) AddPackages(ctx context.Context, projectRoot string, packages []string, dev bool) error {
	if len(packages) == 0 {
		return nil
	}
	return t.run(ctx, projectRoot, t.AddArgs(packages, dev))
}

func (t *Toolchain) run(ctx context.Context, dir string, argv []string) error {
	commandLine := strings.Join(argv, " ")
	result, err := t.runner.Run(ctx, argv[0], argv[1:], Opts{Dir: dir})
	if err != nil {
		return &Error{Command: commandLine, Stderr: tail(result.Stderr), Cause: err}
	}
	if result.ExitCode != 0 {
		return &Error{Command: commandLine, ExitCode: result.ExitCode, Stderr: tail(result.Stderr)}
	}
	return nil
}
