package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig         = "config"
	FlagStack          = "stack"
	FlagPackageManager = "package-manager"
	FlagDir            = "dir"
	FlagDryRun         = "dry-run"
	FlagForce          = "force"
	FlagOutput         = "output"
	FlagSkipInstall    = "skip-install"
	FlagNoFolderDocs   = "no-folder-readmes"
	FlagNoColor        = "no-color"
	FlagQuiet          = "quiet"
	FlagDebug          = "debug"

	// Flag descriptions
	DescConfig         = "Path to config file (default $XDG_CONFIG_HOME/vitesetup/config.toml)"
	DescStack          = "Stack to use: react-js, react-ts, vue-ts, vue-js, svelte-ts, svelte-js"
	DescPackageManager = "Package manager: npm, pnpm, yarn, bun (overrides config)"
	DescDir            = "Parent directory for the new project"
	DescDryRun         = "Show actions without execution"
	DescForce          = "Force overwrite"
	DescOutput         = "Output format: text, json, yaml"
	DescSkipInstall    = "Patch files without installing packages"
	DescNoFolderDocs   = "Do not write a README.md into each generated folder"
	DescNoColor        = "Disable colored output"
	DescQuiet          = "Suppress non-error output"
	DescDebug          = "Enable debug logging"
)
