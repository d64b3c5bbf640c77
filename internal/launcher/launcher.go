// Package launcher is the native form of the generated launcher scripts: it
// checks the Java runtime, locates the bundled archive relative to the
// launcher directory, and runs it with the caller's arguments and streams.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rojojun/hello-time-man/internal/config"
	"github.com/rojojun/hello-time-man/internal/launchers"
	"github.com/rojojun/hello-time-man/internal/layout"
	"github.com/rojojun/hello-time-man/internal/logging"
	"github.com/rojojun/hello-time-man/internal/messages"
	"github.com/rojojun/hello-time-man/internal/pkgmgr"
	"github.com/rojojun/hello-time-man/internal/platform"
	"github.com/rojojun/hello-time-man/internal/runner"
)

// Sentinel errors matched with errors.Is.
var (
	ErrRuntimeMissing  = errors.New("java runtime is not available")
	ErrPayloadNotFound = layout.ErrPayloadNotFound
)

// RuntimeMissingError carries the remediation text for a missing runtime.
type RuntimeMissingError struct {
	Command string
	Text    string
}

func (e *RuntimeMissingError) Error() string { return e.Text }

func (e *RuntimeMissingError) Unwrap() error { return ErrRuntimeMissing }

// PayloadNotFoundError lists every candidate that was probed.
type PayloadNotFoundError struct {
	Text  string
	Tried []layout.Candidate
}

func (e *PayloadNotFoundError) Error() string {
	lines := []string{e.Text}
	for _, c := range e.Tried {
		lines = append(lines, fmt.Sprintf(messages.LaunchTriedFmt, c.Path, c.Strategy))
	}
	return strings.Join(lines, "\n")
}

func (e *PayloadNotFoundError) Unwrap() error { return ErrPayloadNotFound }

// Options configures one launch.
type Options struct {
	Platform    platform.Descriptor
	Config      *config.Config
	LauncherDir string
	Runner      runner.Runner
	// Exists decides whether a payload candidate is usable. Defaults to layout.FileExists.
	Exists func(path string) bool
	Getenv func(string) string
	Stdio  runner.Stdio
	Logger *log.Logger
}

// Run launches the archive with args and returns the exit code to relay.
// A non-nil error always comes with exit code 1 and is meant for stderr.
func Run(ctx context.Context, opts Options, args []string) (int, error) {
	if opts.Runner == nil {
		return 1, errors.New(messages.LaunchRunnerRequired)
	}
	if opts.Config == nil {
		return 1, errors.New(messages.LaunchConfigRequired)
	}
	if strings.TrimSpace(opts.LauncherDir) == "" {
		return 1, errors.New(messages.LaunchDirRequired)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	cfg := opts.Config
	runtimeCmd := cfg.Runtime.Command

	if !runner.Available(ctx, opts.Runner, runtimeCmd, cfg.Runtime.VersionArg) {
		return 1, &RuntimeMissingError{
			Command: runtimeCmd,
			Text:    launchers.RuntimeMissingText(opts.Platform, runtimeCmd, cfg.Package.Name),
		}
	}

	resolver := layout.Resolver{
		Exists: opts.Exists,
		GlobalRoot: func() string {
			root, fromQuery := pkgmgr.GlobalRoot(ctx, opts.Runner, pkgmgr.Query{
				Command:  cfg.PackageManager.Command,
				Args:     cfg.PackageManager.GlobalRootArgs,
				Fallback: fallbackGlobalRoot(opts),
			})
			logger.Debug("global root", "path", root, "queried", fromQuery)
			return root
		},
	}
	payload, tried, err := resolver.Resolve(layout.Input{
		LauncherDir: opts.LauncherDir,
		PackageName: cfg.Package.Name,
		PayloadFile: cfg.Payload.File,
	})
	if err != nil {
		return 1, &PayloadNotFoundError{Text: launchers.PayloadMissingText(cfg.Package.Name), Tried: tried}
	}
	logger.Debug("payload resolved", "path", payload.Path, "strategy", payload.Strategy)

	argv := append([]string{"-jar", payload.Path}, args...)
	code, err := opts.Runner.Run(ctx, runtimeCmd, argv, opts.Stdio)
	if err != nil {
		return 1, fmt.Errorf(messages.LaunchSpawnFailedFmt, runtimeCmd, err)
	}
	return code, nil
}

func fallbackGlobalRoot(opts Options) string {
	if opts.Config.PackageManager.GlobalRoot != "" {
		return opts.Config.PackageManager.GlobalRoot
	}
	return opts.Platform.FallbackGlobalRoot(opts.Getenv)
}
