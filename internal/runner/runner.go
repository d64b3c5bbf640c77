// Package runner spawns external programs with their stdio connected to the
// caller and reports exit status. It is the only place that knows how a
// platform wraps script launchers in a shell.
package runner

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rojojun/hello-time-man/internal/messages"
	"github.com/rojojun/hello-time-man/internal/platform"
)

// waitDelay bounds how long Wait blocks on stdio pipes held open by
// grandchildren after the direct child has exited or been killed.
const waitDelay = 2 * time.Second

// Stdio carries the streams handed to a child process. Nil fields inherit nothing.
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner runs name with args and returns the child's exit code.
// err is non-nil only when the child could not be started or awaited.
type Runner interface {
	Run(ctx context.Context, name string, args []string, stdio Stdio) (int, error)
}

// Exec implements Runner with os/exec.
type Exec struct {
	Platform platform.Descriptor
	// Env replaces the child environment when non-nil.
	Env    []string
	Logger *log.Logger
}

// New returns an Exec runner for the current host.
func New(logger *log.Logger) Exec {
	return Exec{Platform: platform.Current(), Logger: logger}
}

var lookPath = exec.LookPath

// Run spawns the program and relays its exit status. A child that exits
// without reporting a code (for example, killed by a signal) yields 0.
func (e Exec) Run(ctx context.Context, name string, args []string, stdio Stdio) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 1, errors.New(messages.RunnerCommandRequired)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	path, argv := e.command(name, args)
	if e.Logger != nil {
		e.Logger.Debug("exec", "path", path, "args", argv)
	}
	cmd := exec.CommandContext(ctx, path, argv...)
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr
	cmd.WaitDelay = waitDelay
	if e.Env != nil {
		cmd.Env = e.Env
	}
	return exitStatus(cmd.Run())
}

// command returns the program and argument vector, wrapping batch scripts in
// cmd /c on Windows.
func (e Exec) command(name string, args []string) (string, []string) {
	if !e.Platform.IsWindows() {
		return name, args
	}
	resolved := name
	if found, err := lookPath(name); err == nil {
		resolved = found
	}
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".cmd", ".bat":
		return "cmd", append([]string{"/d", "/c", resolved}, args...)
	default:
		return resolved, args
	}
}

func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return 0, nil
		}
		return code, nil
	}
	return 1, err
}
