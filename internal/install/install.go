// Package install prepares a package root: it creates bin/ and lib/, checks
// that the bundled archive shipped with the package, and writes the launchers.
package install

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/charmbracelet/log"

	"github.com/rojojun/hello-time-man/internal/config"
	"github.com/rojojun/hello-time-man/internal/launchers"
	"github.com/rojojun/hello-time-man/internal/layout"
	"github.com/rojojun/hello-time-man/internal/logging"
	"github.com/rojojun/hello-time-man/internal/messages"
	"github.com/rojojun/hello-time-man/internal/platform"
)

const dirPerm = 0o755

// Options controls installer behavior.
type Options struct {
	Platform platform.Descriptor
	Config   *config.Config
	System   System
	// Logger receives debug output such as launcher diffs. Nil disables it.
	Logger *log.Logger
}

// Report summarizes a completed installation.
type Report struct {
	Layout      layout.Layout
	PayloadSize int64
	Launchers   []launchers.Written
	// Warnings are recoverable problems, such as a failed chmod.
	Warnings []string
}

// PayloadKB returns the payload size rounded to the nearest kilobyte.
func (r *Report) PayloadKB() int64 {
	return int64(math.Round(float64(r.PayloadSize) / 1024))
}

// PackagingError reports that the package was published without its archive.
// It is never repaired locally.
type PackagingError struct {
	Path      string
	IssuesURL string
}

func (e *PackagingError) Error() string {
	return fmt.Sprintf(messages.InstallPayloadMissingFmt, e.Path)
}

// Run installs the launchers into root.
func Run(root string, opts Options) (*Report, error) {
	if root == "" {
		return nil, errors.New(messages.InstallRootRequired)
	}
	if opts.System == nil {
		return nil, errors.New(messages.InstallSystemRequired)
	}
	if opts.Config == nil {
		return nil, errors.New(messages.InstallConfigRequired)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	lay := layout.New(root, opts.Config, opts.Platform)
	report := &Report{Layout: lay}

	for _, dir := range []string{lay.BinDir, lay.LibDir} {
		if err := opts.System.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
		}
	}

	size, err := payloadSize(opts.System, lay.PayloadPath, opts.Config.Package.IssuesURL)
	if err != nil {
		return nil, err
	}
	report.PayloadSize = size
	logger.Debug("payload found", "path", lay.PayloadPath, "bytes", size)

	written, err := launchers.Write(opts.System, opts.Platform, opts.Config, lay.BinDir)
	report.Launchers = written
	if err != nil {
		return report, err
	}
	for _, w := range written {
		if w.Replaced {
			logger.Debug(fmt.Sprintf(messages.LaunchersDiffDebugFmt, w.Path), "diff", w.Diff)
		}
		if w.ChmodErr != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf(messages.InstallChmodWarnFmt, w.Path, w.ChmodErr))
		}
	}
	return report, nil
}

func payloadSize(sys System, path string, issuesURL string) (int64, error) {
	info, err := sys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, &PackagingError{Path: path, IssuesURL: issuesURL}
		}
		return 0, fmt.Errorf(messages.InstallStatPayloadFailedFmt, path, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf(messages.InstallPayloadIsDirFmt, path)
	}
	return info.Size(), nil
}
