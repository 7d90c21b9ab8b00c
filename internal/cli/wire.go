package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/vitesetup/internal/app"
)

// wireCmd represents the wire command
var wireCmd = &cobra.Command{
	Use:   "wire [dir]",
	Short: "Wire Tailwind CSS, the router and folders into an existing Vite project",
	Long: `Re-run the wiring stages against an existing Vite project.

The stack is detected from package.json unless --stack is given. Files that are
already wired are left alone, so running wire twice changes nothing. The
generator is never run and the starter page is never replaced.

Examples:
  vitesetup wire
  vitesetup wire ./my-app --stack vue-ts
  vitesetup wire ./my-app --skip-install`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWire,
}

// Wire command flags
var (
	wireStack          string
	wirePackageManager string
	wireSkipInstall    bool
	wireNoFolderDocs   bool
)

func init() {
	wireCmd.Flags().StringVarP(&wireStack, FlagStack, "s", "", DescStack)
	wireCmd.Flags().StringVarP(&wirePackageManager, FlagPackageManager, "p", "", DescPackageManager)
	wireCmd.Flags().BoolVar(&wireSkipInstall, FlagSkipInstall, false, DescSkipInstall)
	wireCmd.Flags().BoolVar(&wireNoFolderDocs, FlagNoFolderDocs, false, DescNoFolderDocs)
}

func runWire(cmd *cobra.Command, args []string) error {
	cfg, err := loadedConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	toolchain, err := newToolchain(cfg, wirePackageManager)
	if err != nil {
		return err
	}

	result, err := app.Wire(cmd.Context(), app.WireOptions{
		Dir:           dir,
		Stack:         wireStack,
		Toolchain:     toolchain,
		SkipInstall:   wireSkipInstall,
		FolderReadmes: cfg.Docs.FolderReadmes && !wireNoFolderDocs,
		Reporter:      newStageReporter(out, isTerminalWriter(out)),
	})
	if err != nil {
		return err
	}

	printInfo(out, "")
	if warnings := result.Warnings(); len(warnings) > 0 {
		printWarning(out, fmt.Sprintf("%s wired with %d warning(s)", result.Variant.DisplayName, len(warnings)))
		return nil
	}
	printSuccess(out, fmt.Sprintf("%s project at %s is wired", result.Variant.DisplayName, result.ProjectRoot))
	return nil
}
