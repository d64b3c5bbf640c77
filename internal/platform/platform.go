// Package platform describes a target operating system as a value.
//
// Everything that differs between Windows and Unix-likes (launcher flavor, file
// names, permission handling, package-manager fallbacks, and runtime
// remediation) is derived from a Descriptor, so callers never consult
// runtime.GOOS directly and tests can target any platform from any host.
package platform

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rojojun/hello-time-man/internal/messages"
)

// Operating system identifiers with platform-specific behavior.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// LauncherKind identifies the flavor of generated launcher script.
type LauncherKind string

// Launcher flavors.
const (
	LauncherShell LauncherKind = "shell"
	LauncherBatch LauncherKind = "batch"
)

const (
	shellTemplatePath = "launchers/launcher.sh.tmpl"
	batchTemplatePath = "launchers/launcher.cmd.tmpl"

	unixGlobalRoot         = "/usr/local/lib/node_modules"
	windowsGlobalRootShell = `%APPDATA%\npm\node_modules`
)

// Descriptor identifies a target platform.
type Descriptor struct {
	OS   string
	Arch string
}

// Current returns the descriptor of the running host.
func Current() Descriptor {
	return Descriptor{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// Parse builds a descriptor from user input, defaulting arch to the host's.
func Parse(goos string, goarch string) (Descriptor, error) {
	goos = strings.ToLower(strings.TrimSpace(goos))
	if goos == "" {
		return Descriptor{}, errors.New(messages.PlatformOSRequired)
	}
	goarch = strings.ToLower(strings.TrimSpace(goarch))
	if goarch == "" {
		goarch = runtime.GOARCH
	}
	return Descriptor{OS: goos, Arch: goarch}, nil
}

// String renders the descriptor as os/arch.
func (d Descriptor) String() string {
	if d.Arch == "" {
		return d.OS
	}
	return d.OS + "/" + d.Arch
}

// IsWindows reports whether d targets Windows.
func (d Descriptor) IsWindows() bool {
	return d.OS == Windows
}

// LauncherKind returns the launcher flavor for d.
func (d Descriptor) LauncherKind() LauncherKind {
	if d.IsWindows() {
		return LauncherBatch
	}
	return LauncherShell
}

// TemplatePath returns the embedded template path for d's launcher flavor.
func (d Descriptor) TemplatePath() string {
	if d.LauncherKind() == LauncherBatch {
		return batchTemplatePath
	}
	return shellTemplatePath
}

// LauncherFileName returns the on-disk file name for a launcher called name.
func (d Descriptor) LauncherFileName(name string) string {
	if d.IsWindows() {
		return name + ".cmd"
	}
	return name
}

// NeedsChmod reports whether written launchers must be marked executable.
func (d Descriptor) NeedsChmod() bool {
	return !d.IsWindows()
}

// FallbackGlobalRoot returns the global module root used when the package
// manager cannot be queried. On Windows it expands APPDATA via getenv.
func (d Descriptor) FallbackGlobalRoot(getenv func(string) string) string {
	if !d.IsWindows() {
		return unixGlobalRoot
	}
	appData := ""
	if getenv != nil {
		appData = getenv("APPDATA")
	}
	if appData == "" {
		return windowsGlobalRootShell
	}
	return filepath.Join(appData, "npm", "node_modules")
}

// ScriptGlobalRoot returns the fallback global root as written into a launcher
// script, where environment references are expanded by the script itself.
func (d Descriptor) ScriptGlobalRoot() string {
	if d.IsWindows() {
		return windowsGlobalRootShell
	}
	return unixGlobalRoot
}

// RuntimeRemediation returns install instructions for the Java runtime.
func (d Descriptor) RuntimeRemediation() string {
	switch d.OS {
	case Darwin:
		return messages.RemediationDarwin
	case Linux:
		return messages.RemediationLinux
	case Windows:
		return messages.RemediationWindows
	default:
		return messages.RemediationOther
	}
}
