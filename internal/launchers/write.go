// Package launchers renders launcher scripts for a platform and writes them
// into an installation's bin directory.
package launchers

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"

	"github.com/rojojun/hello-time-man/internal/config"
	"github.com/rojojun/hello-time-man/internal/fsutil"
	"github.com/rojojun/hello-time-man/internal/messages"
	"github.com/rojojun/hello-time-man/internal/platform"
)

// System is the minimal interface needed for launcher operations.
type System interface {
	ReadFile(name string) ([]byte, error)
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Chmod(name string, mode os.FileMode) error
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// ReadFile reads the named file.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFileAtomic writes data to path atomically.
func (RealSystem) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(path, data, perm)
}

// Chmod changes the mode of the named file.
func (RealSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

// Permissions for written launchers: written readable, then marked executable.
const (
	writePerm = 0o644
	execPerm  = 0o755
)

// Written describes one launcher after Write.
type Written struct {
	Name string
	Path string
	// Replaced is true when a launcher with different content existed.
	Replaced bool
	// Unchanged is true when the existing launcher already matched.
	Unchanged bool
	// Diff is a unified diff from the previous launcher when Replaced.
	Diff string
	// ChmodErr is set when marking the launcher executable failed.
	ChmodErr error
}

// Write renders every configured launcher for desc into binDir. Chmod failures
// do not fail the write; they are reported per launcher in Written.ChmodErr.
func Write(sys System, desc platform.Descriptor, cfg *config.Config, binDir string) ([]Written, error) {
	written := make([]Written, 0, len(cfg.Launcher.Names))
	for _, name := range cfg.Launcher.Names {
		data, err := Render(desc, cfg, name)
		if err != nil {
			return written, err
		}
		w, err := writeLauncher(sys, desc, filepath.Join(binDir, desc.LauncherFileName(name)), data)
		if err != nil {
			return written, err
		}
		w.Name = name
		written = append(written, w)
	}
	return written, nil
}

func writeLauncher(sys System, desc platform.Descriptor, path string, data []byte) (Written, error) {
	w := Written{Path: path}
	previous, err := sys.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(previous, data) {
			w.Unchanged = true
		} else {
			w.Replaced = true
			w.Diff = udiff.Unified(path+" (installed)", path+" (new)", string(previous), string(data))
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return w, fmt.Errorf(messages.LaunchersReadExistingFailedFmt, path, err)
	}

	if err := sys.WriteFileAtomic(path, data, writePerm); err != nil {
		return w, fmt.Errorf(messages.LaunchersWriteFileFailedFmt, path, err)
	}
	if desc.NeedsChmod() {
		w.ChmodErr = sys.Chmod(path, execPerm)
	}
	return w, nil
}
