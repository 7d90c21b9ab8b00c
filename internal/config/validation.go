package config

import (
	"github.com/tacogips/vitesetup/internal/runner"
	"github.com/tacogips/vitesetup/internal/variant"
)

// Validate validates the global configuration.
func Validate(cfg *Config) error {
	if cfg.Generator.CreatePackage == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "generator.create_package", "generator package is required")
	}
	if cfg.Generator.DefaultStack != "" {
		if _, err := variant.ParseStack(cfg.Generator.DefaultStack); err != nil {
			e := NewConfigErrorWithField(ConfigValidationFailed, "", "generator.default_stack", "unknown stack")
			e.Cause = err
			return e
		}
	}
	if _, err := runner.ParsePackageManager(cfg.Installer.PackageManager); err != nil {
		e := NewConfigErrorWithField(ConfigValidationFailed, "", "installer.package_manager", "unsupported package manager")
		e.Cause = err
		return e
	}
	if cfg.Runner.Timeout < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "runner.timeout", "timeout cannot be negative")
	}
	return nil
}
