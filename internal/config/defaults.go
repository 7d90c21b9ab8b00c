package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			CreatePackage: "vite@latest",
		},
		Installer: InstallerConfig{
			PackageManager: "npm",
		},
		Output: OutputConfig{
			Color: true,
		},
		Docs: DocsConfig{
			FolderReadmes: true,
		},
	}
}

// defaultsMap mirrors DefaultConfig for the koanf confmap provider.
func defaultsMap() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"generator.create_package":  d.Generator.CreatePackage,
		"generator.default_stack":   d.Generator.DefaultStack,
		"installer.package_manager": d.Installer.PackageManager,
		"runner.timeout":            d.Runner.Timeout.Std().String(),
		"output.color":              d.Output.Color,
		"output.quiet":              d.Output.Quiet,
		"docs.folder_readmes":       d.Docs.FolderReadmes,
	}
}

// DefaultConfigPath returns the default configuration file path
// ($XDG_CONFIG_HOME/vitesetup/config.toml).
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "vitesetup", "config.toml")
}
