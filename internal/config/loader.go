package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tacogips/vitesetup/internal/debug"
)

// EnvPrefix prefixes every environment override (VITESETUP_RUNNER_TIMEOUT=2m).
const EnvPrefix = "VITESETUP_"

// Load builds the effective configuration: defaults, then the TOML file at path
// (skipped when missing), then VITESETUP_* environment variables. An empty path
// uses DefaultConfigPath. The result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	debug.DebugValue("[config] path", path)

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to load defaults", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid TOML syntax", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to load environment", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to decode configuration", err)
	}

	if err := Validate(&cfg); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.File == "" {
			cfgErr.File = path
		}
		return nil, err
	}
	return &cfg, nil
}

// envKey maps VITESETUP_INSTALLER_PACKAGE_MANAGER to installer.package_manager.
// Only the first underscore separates the section from the key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}
