package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tacogips/vitesetup/internal/app"
	"github.com/tacogips/vitesetup/internal/config"
	"github.com/tacogips/vitesetup/internal/debug"
)

// Build information, set by main from ldflags.
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
	globalConfigPath string
)

// Resolved global state
var (
	globalColor     bool
	globalConfig    *config.Config
	globalConfigErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vitesetup [project-name]",
	Short: "Scaffold a Vite project with Tailwind CSS, routing and folders wired in",
	Long: `vitesetup creates a Vite project for React, Vue or Svelte and wires it up:

  1. Runs the Vite generator and installs dependencies
  2. Installs Tailwind CSS v4 and registers its Vite plugin
  3. Installs the framework router and connects it to the entry point
  4. Creates an organized folder structure under src/
  5. Writes a starter page, stylesheet and README

Running vitesetup without a subcommand is the same as "vitesetup create".
Re-run the wiring on an existing project with "vitesetup wire".`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// runRoot runs create, unless the argument looks like a mistyped subcommand.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
			return app.NewValidationError(fmt.Sprintf(
				"unknown command %q (did you mean %q? use \"vitesetup create %s\" to create a project with that name)",
				args[0], suggestions[0], args[0]), nil)
		}
	}
	return runCreate(cmd, args)
}

// setupGlobals loads the configuration and applies output settings. A broken
// configuration file does not stop commands that do not need it.
func setupGlobals(cmd *cobra.Command) {
	debug.SetDebug(globalDebug)
	debug.SetNoColor(globalNoColor)

	globalConfig, globalConfigErr = config.Load(globalConfigPath)
	cfg := globalConfig
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if !cmd.Flags().Changed(FlagQuiet) {
		globalQuiet = cfg.Output.Quiet
	}
	globalColor = colorEnabled(os.Stdout, globalNoColor || !cfg.Output.Color)
	configureOutput(globalColor)
}

// loadedConfig returns the configuration or the error that prevented loading it.
func loadedConfig() (*config.Config, error) {
	if globalConfigErr != nil {
		return nil, globalConfigErr
	}
	return globalConfig, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printFailure(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupGlobals(cmd)
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVarP(&globalConfigPath, FlagConfig, "c", "", DescConfig)

	addCreateFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(wireCmd)
	rootCmd.AddCommand(stacksCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
