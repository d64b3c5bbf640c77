// Package layout computes where an installation keeps its launchers and its
// payload archive, and resolves the archive from a launcher's location.
package layout

import (
	"path/filepath"

	"github.com/rojojun/hello-time-man/internal/config"
	"github.com/rojojun/hello-time-man/internal/platform"
)

// Directory names under a package root.
const (
	BinDirName = "bin"
	LibDirName = "lib"
)

// Layout is the on-disk shape of one installed package.
type Layout struct {
	Root        string
	BinDir      string
	LibDir      string
	PayloadPath string
	// Launchers holds one path per configured launcher name, primary first.
	Launchers []string
}

// New computes the layout for root using cfg's names and desc's file naming.
func New(root string, cfg *config.Config, desc platform.Descriptor) Layout {
	binDir := filepath.Join(root, BinDirName)
	libDir := filepath.Join(root, LibDirName)
	launchers := make([]string, 0, len(cfg.Launcher.Names))
	for _, name := range cfg.Launcher.Names {
		launchers = append(launchers, filepath.Join(binDir, desc.LauncherFileName(name)))
	}
	return Layout{
		Root:        root,
		BinDir:      binDir,
		LibDir:      libDir,
		PayloadPath: filepath.Join(libDir, cfg.Payload.File),
		Launchers:   launchers,
	}
}

// PrimaryLauncher returns the first launcher path, or "" when none are configured.
func (l Layout) PrimaryLauncher() string {
	if len(l.Launchers) == 0 {
		return ""
	}
	return l.Launchers[0]
}
