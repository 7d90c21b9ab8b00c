package app

import (
	"github.com/tacogips/vitesetup/internal/config"
	"github.com/tacogips/vitesetup/internal/debug"
)

// ConfigInitOptions contains options for configuration initialization.
type ConfigInitOptions struct {
	// Path is the configuration file path (default: XDG config location).
	Path string
	// Force overwrites an existing file.
	Force bool
}

// InitConfig writes the default configuration and returns the path written.
func InitConfig(opts ConfigInitOptions) (string, error) {
	path := opts.Path
	if path == "" {
		path = config.DefaultConfigPath()
	}

	debug.DebugSection("[app] InitConfig workflow start")
	debug.DebugValue("[app] Path", path)
	debug.DebugValue("[app] Force", opts.Force)

	if err := config.Save(path, config.DefaultConfig(), opts.Force); err != nil {
		return "", NewAppError(ConfigInitFailed, "failed to write configuration", err)
	}
	return path, nil
}
