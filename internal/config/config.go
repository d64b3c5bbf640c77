// Package config loads htm settings: built-in defaults, an optional htm.toml at
// the package root, and HTM_* environment overrides, in that order.
package config

import "time"

// Environment keys that override file and default settings.
const (
	EnvJava           = "HTM_JAVA"
	EnvNPM            = "HTM_NPM"
	EnvTimeoutSeconds = "HTM_TIMEOUT_SECONDS"
)

// Config is the full htm configuration.
type Config struct {
	Package        PackageConfig        `toml:"package"`
	Payload        PayloadConfig        `toml:"payload"`
	Launcher       LauncherConfig       `toml:"launcher"`
	Runtime        RuntimeConfig        `toml:"runtime"`
	PackageManager PackageManagerConfig `toml:"package_manager"`
	Harness        HarnessConfig        `toml:"harness"`
}

// PackageConfig identifies the npm package that ships the archive.
type PackageConfig struct {
	Name      string `toml:"name"`
	IssuesURL string `toml:"issues_url"`
}

// PayloadConfig names the archive under lib/.
type PayloadConfig struct {
	File string `toml:"file"`
}

// LauncherConfig lists the launcher names written to bin/. The first is primary.
type LauncherConfig struct {
	Names []string `toml:"names"`
}

// RuntimeConfig describes how to invoke the Java runtime.
type RuntimeConfig struct {
	Command    string `toml:"command"`
	VersionArg string `toml:"version_arg"`
}

// PackageManagerConfig describes how to query the global module root.
// GlobalRoot, when set, replaces the per-platform fallback.
type PackageManagerConfig struct {
	Command        string   `toml:"command"`
	GlobalRootArgs []string `toml:"global_root_args"`
	GlobalRoot     string   `toml:"global_root"`
}

// HarnessConfig tunes the smoke-test harness.
type HarnessConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Package: PackageConfig{
			Name:      "hello-time-man",
			IssuesURL: "https://github.com/rojojun/hello-time-man/issues",
		},
		Payload: PayloadConfig{File: "hello-time-man.jar"},
		Launcher: LauncherConfig{
			Names: []string{"hello", "hello-time-man"},
		},
		Runtime: RuntimeConfig{
			Command:    "java",
			VersionArg: "-version",
		},
		PackageManager: PackageManagerConfig{
			Command:        "npm",
			GlobalRootArgs: []string{"root", "-g"},
		},
		Harness: HarnessConfig{TimeoutSeconds: 10},
	}
}

// PrimaryLauncher returns the first configured launcher name.
func (c *Config) PrimaryLauncher() string {
	if len(c.Launcher.Names) == 0 {
		return ""
	}
	return c.Launcher.Names[0]
}

// Timeout returns the per-command harness timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Harness.TimeoutSeconds) * time.Second
}
