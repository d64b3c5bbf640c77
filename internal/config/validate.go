package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rojojun/hello-time-man/internal/messages"
)

// Validate checks that every setting needed by install, launch, and test is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Package.Name) == "" {
		return errors.New(messages.ConfigPackageNameRequired)
	}
	if err := checkUnsafe(c); err != nil {
		return err
	}
	if strings.TrimSpace(c.Payload.File) == "" {
		return errors.New(messages.ConfigPayloadFileRequired)
	}
	if !isPlainName(c.Payload.File) {
		return fmt.Errorf(messages.ConfigPayloadFileNotBase, c.Payload.File)
	}
	if len(c.Launcher.Names) == 0 {
		return errors.New(messages.ConfigLauncherNameRequired)
	}
	for _, name := range c.Launcher.Names {
		if !isPlainName(name) {
			return fmt.Errorf(messages.ConfigLauncherNameInvalid, name)
		}
	}
	if strings.TrimSpace(c.Runtime.Command) == "" {
		return errors.New(messages.ConfigRuntimeRequired)
	}
	if strings.TrimSpace(c.PackageManager.Command) == "" {
		return errors.New(messages.ConfigPackageManagerRequired)
	}
	if c.Harness.TimeoutSeconds <= 0 {
		return fmt.Errorf(messages.ConfigTimeoutInvalidFmt, c.Harness.TimeoutSeconds)
	}
	return nil
}

// checkUnsafe rejects values that cannot be written literally into a launcher
// script: control characters end comments and quoted strings, and a double
// quote cannot be escaped inside a cmd.exe set statement.
func checkUnsafe(c *Config) error {
	check := func(key, value string) error {
		if hasUnsafeChars(value) {
			return fmt.Errorf(messages.ConfigUnsafeValueFmt, key, value)
		}
		return nil
	}
	fields := [][2]string{
		{"package.name", c.Package.Name},
		{"payload.file", c.Payload.File},
		{"runtime.command", c.Runtime.Command},
		{"runtime.version_arg", c.Runtime.VersionArg},
		{"package_manager.command", c.PackageManager.Command},
		{"package_manager.global_root", c.PackageManager.GlobalRoot},
	}
	for _, name := range c.Launcher.Names {
		fields = append(fields, [2]string{"launcher.names", name})
	}
	for _, arg := range c.PackageManager.GlobalRootArgs {
		fields = append(fields, [2]string{"package_manager.global_root_args", arg})
	}
	for _, f := range fields {
		if err := check(f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

func hasUnsafeChars(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r == '"' || unicode.IsControl(r)
	})
}

func isPlainName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed != name || name == "." || name == ".." || hasUnsafeChars(name) {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
