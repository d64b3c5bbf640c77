package install

import (
	"os"

	"github.com/rojojun/hello-time-man/internal/launchers"
)

// System abstracts filesystem operations needed by the installer.
// It extends the launcher writer's System with directory creation and stat.
type System interface {
	launchers.System
	MkdirAll(path string, perm os.FileMode) error
	Stat(name string) (os.FileInfo, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct {
	launchers.RealSystem
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}
