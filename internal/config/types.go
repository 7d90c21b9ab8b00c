package config

import "time"

// Config represents the global vitesetup configuration.
type Config struct {
	// Generator configures the external project generator.
	Generator GeneratorConfig `koanf:"generator" toml:"generator"`
	// Installer configures the package manager.
	Installer InstallerConfig `koanf:"installer" toml:"installer"`
	// Runner configures external process execution.
	Runner RunnerConfig `koanf:"runner" toml:"runner"`
	// Output configuration for display and logging.
	Output OutputConfig `koanf:"output" toml:"output"`
	// Docs configures generated documentation.
	Docs DocsConfig `koanf:"docs" toml:"docs"`
}

// GeneratorConfig represents generator settings.
type GeneratorConfig struct {
	// CreatePackage is the package passed to "<pm> create".
	CreatePackage string `koanf:"create_package" toml:"create_package"`
	// DefaultStack preselects a stack in the prompt ("react-ts"). Empty means none.
	DefaultStack string `koanf:"default_stack" toml:"default_stack"`
}

// InstallerConfig represents package manager settings.
type InstallerConfig struct {
	// PackageManager is one of npm, pnpm, yarn, bun.
	PackageManager string `koanf:"package_manager" toml:"package_manager"`
}

// RunnerConfig represents process execution settings.
type RunnerConfig struct {
	// Timeout bounds each external command (0 = no timeout).
	Timeout Duration `koanf:"timeout" toml:"timeout"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `koanf:"color" toml:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `koanf:"quiet" toml:"quiet"`
}

// DocsConfig represents documentation settings.
type DocsConfig struct {
	// FolderReadmes writes a README.md describing each generated folder.
	FolderReadmes bool `koanf:"folder_readmes" toml:"folder_readmes"`
}

// Duration is a time.Duration written as "30s" in TOML.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
