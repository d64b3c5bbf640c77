package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/rojojun/hello-time-man/internal/messages"
)

var readFile = os.ReadFile

// Load builds the configuration for a package root. A missing htm.toml is not
// an error; getenv supplies HTM_* overrides and may be nil.
func Load(root string, getenv func(string) string) (*Config, error) {
	cfg := Default()
	path := Path(root)
	data, err := readFile(path)
	switch {
	case err == nil:
		parsed, err := Parse(data, path)
		if err != nil {
			return nil, err
		}
		cfg = *parsed
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return nil, err
	}
	if err := expandPaths(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse decodes TOML data over the defaults. Keys missing from data keep their
// default values; unknown keys are rejected. source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf(messages.ConfigUnrecognizedKeysFmt, source, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes data rejecting keys that Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	if v := strings.TrimSpace(getenv(EnvJava)); v != "" {
		cfg.Runtime.Command = v
	}
	if v := strings.TrimSpace(getenv(EnvNPM)); v != "" {
		cfg.PackageManager.Command = v
	}
	if v := strings.TrimSpace(getenv(EnvTimeoutSeconds)); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf(messages.ConfigInvalidEnvIntFmt, EnvTimeoutSeconds, err)
		}
		cfg.Harness.TimeoutSeconds = seconds
	}
	return nil
}

// expandPaths resolves a leading ~ in path-valued settings.
func expandPaths(cfg *Config) error {
	expanded, err := homedir.Expand(cfg.Runtime.Command)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandPathFmt, "runtime.command", err)
	}
	cfg.Runtime.Command = expanded

	expanded, err = homedir.Expand(cfg.PackageManager.GlobalRoot)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandPathFmt, "package_manager.global_root", err)
	}
	cfg.PackageManager.GlobalRoot = expanded
	return nil
}
