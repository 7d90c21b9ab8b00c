package config

import (
	"fmt"
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"
)

// Marshal encodes the configuration as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, "", "failed to encode configuration", err)
	}
	return data, nil
}

// Save writes cfg to path. An existing file is only replaced when force is set.
func Save(path string, cfg *Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return NewConfigError(ConfigAlreadyExists, path, "configuration file already exists (use --force to overwrite)")
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path,
			fmt.Sprintf("failed to create directory %s", filepath.Dir(path)), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewConfigErrorWithCause(ConfigInvalid, path, "failed to write configuration file", err)
	}
	return nil
}
