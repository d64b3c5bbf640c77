// Package root locates the package root that holds bin/ and lib/.
package root

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rojojun/hello-time-man/internal/config"
	"github.com/rojojun/hello-time-man/internal/layout"
	"github.com/rojojun/hello-time-man/internal/messages"
)

// Markers identify a package root when walking up from a directory.
var Markers = []string{config.FileName, "package.json"}

// FindPackageRoot walks up from start and returns the first directory that
// holds one of Markers as a regular file.
func FindPackageRoot(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	for {
		for _, marker := range Markers {
			path := filepath.Join(dir, marker)
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.IsDir() {
				return "", false, fmt.Errorf(messages.RootMarkerIsDirFmt, path)
			}
			return dir, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Resolve picks the package root: explicit when given, otherwise the parent
// of the executable's bin/ directory when that parent looks like a package,
// otherwise the nearest marked ancestor of cwd, otherwise cwd itself.
func Resolve(explicit string, executable string, cwd string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if executable != "" {
		if resolved, err := filepath.EvalSymlinks(executable); err == nil {
			executable = resolved
		}
		dir := filepath.Dir(executable)
		if filepath.Base(dir) == layout.BinDirName && isPackageRoot(filepath.Dir(dir)) {
			return filepath.Dir(dir), nil
		}
	}
	found, ok, err := FindPackageRoot(cwd)
	if err != nil {
		return "", err
	}
	if ok {
		return found, nil
	}
	return filepath.Abs(cwd)
}

// isPackageRoot reports whether dir carries a marker file or the default
// payload under lib/. Shared prefixes such as /usr/local or ~/go have neither.
func isPackageRoot(dir string) bool {
	for _, marker := range Markers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	payload := filepath.Join(dir, layout.LibDirName, config.Default().Payload.File)
	info, err := os.Stat(payload)
	return err == nil && info.Mode().IsRegular()
}
