package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/vitesetup/internal/app"
	"github.com/tacogips/vitesetup/internal/config"
	"github.com/tacogips/vitesetup/internal/runner"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create [project-name]",
	Short: "Create a new Vite project with everything wired in",
	Long: `Create a new Vite project in <dir>/<project-name>.

Missing values are prompted for when running in a terminal. The project name
must start with a letter and contain only letters, numbers, dashes and
underscores (max 50 characters).

Examples:
  vitesetup create my-app --stack react-ts
  vitesetup create shop -s vue-ts --package-manager pnpm
  vitesetup create site --stack svelte-js --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

// Create command flags
var (
	createStack          string
	createPackageManager string
	createDir            string
	createDryRun         bool
	createNoFolderDocs   bool
)

func init() {
	addCreateFlags(createCmd)
}

// addCreateFlags registers the create flags; the root command shares them.
func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&createStack, FlagStack, "s", "", DescStack)
	cmd.Flags().StringVarP(&createPackageManager, FlagPackageManager, "p", "", DescPackageManager)
	cmd.Flags().StringVarP(&createDir, FlagDir, "d", ".", DescDir)
	cmd.Flags().BoolVar(&createDryRun, FlagDryRun, false, DescDryRun)
	cmd.Flags().BoolVar(&createNoFolderDocs, FlagNoFolderDocs, false, DescNoFolderDocs)
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadedConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	printBanner(out)

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	stack := createStack
	if stack == "" {
		stack = cfg.Generator.DefaultStack
	}

	if name == "" || createStack == "" {
		if !isInteractive() {
			if name == "" {
				return app.NewValidationError("project name is required (pass it as an argument)", nil)
			}
			if stack == "" {
				return app.NewValidationError("stack is required (pass --stack)", nil)
			}
		} else {
			if name == "" {
				if name, err = PromptProjectName("my-app"); err != nil {
					return err
				}
			}
			if createStack == "" {
				if stack, err = PromptStack(stack); err != nil {
					return err
				}
			}
			fmt.Fprintln(out)
		}
	}

	toolchain, err := newToolchain(cfg, createPackageManager)
	if err != nil {
		return err
	}

	result, err := app.Create(cmd.Context(), app.CreateOptions{
		Name:          name,
		Stack:         stack,
		ParentDir:     createDir,
		Toolchain:     toolchain,
		FolderReadmes: cfg.Docs.FolderReadmes && !createNoFolderDocs,
		DryRun:        createDryRun,
		Reporter:      newStageReporter(out, isTerminalWriter(out)),
	})
	if err != nil {
		return err
	}

	if result.DryRun {
		printInfo(out, "")
		printInfo(out, fmt.Sprintf("Dry run: nothing was written. Project would be created at %s", result.ProjectRoot))
		return nil
	}

	printCreateSummary(out, result, toolchain.PackageManager().RunScript())
	return nil
}

// newToolchain builds the process-backed toolchain from config and an
// optional package manager override.
func newToolchain(cfg *config.Config, pmOverride string) (*runner.Toolchain, error) {
	pmName := cfg.Installer.PackageManager
	if pmOverride != "" {
		pmName = pmOverride
	}
	pm, err := runner.ParsePackageManager(pmName)
	if err != nil {
		return nil, app.NewValidationError("invalid --package-manager", err)
	}
	exec := runner.NewExecRunner(cfg.Runner.Timeout.Std())
	return runner.NewToolchain(exec, pm, cfg.Generator.CreatePackage), nil
}
