// Package harness smoke-tests an installation: the Java runtime, the bundled
// archive run directly, and the installed launcher with a fixed set of probes.
package harness

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rojojun/hello-time-man/internal/config"
	"github.com/rojojun/hello-time-man/internal/layout"
	"github.com/rojojun/hello-time-man/internal/logging"
	"github.com/rojojun/hello-time-man/internal/messages"
	"github.com/rojojun/hello-time-man/internal/platform"
	"github.com/rojojun/hello-time-man/internal/runner"
)

// Status is the outcome of a single check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of harness output.
type Result struct {
	Status  Status
	Stage   string
	Message string
	// Detail holds captured stderr or a recommendation, possibly multi-line.
	Detail string
	// ExitCode and Stdout are set for results that ran a command.
	ExitCode int
	Stdout   string
}

// Errors that abort the suite.
var (
	ErrRuntimeUnavailable = errors.New("java runtime is not available")
	ErrPayloadMissing     = errors.New("payload archive is missing")
	ErrLauncherMissing    = errors.New("launcher is not installed")
)

// Probes are the argument sets the launcher is invoked with, in order.
var Probes = [][]string{
	nil,
	{"--help"},
	{"--version"},
	{"--format", "short", "--timezone", "UTC"},
}

// Options configures a harness run.
type Options struct {
	Platform platform.Descriptor
	Config   *config.Config
	Layout   layout.Layout
	Runner   runner.Runner
	// Exists defaults to layout.FileExists.
	Exists func(path string) bool
	// Executable defaults to an access(2) X_OK check on Unix.
	Executable func(path string) bool
	Logger     *log.Logger
}

// Report collects every result of a run.
type Report struct {
	Results []Result
}

// Warnings counts results with StatusWarn.
func (r *Report) Warnings() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusWarn {
			n++
		}
	}
	return n
}

type harness struct {
	opts   Options
	report *Report
	emit   func(Result)
	logger *log.Logger
}

// Run executes the stages in order. emit, when non-nil, sees each result as it
// is recorded. The returned error is non-nil only when a stage aborted the
// suite; non-zero probe exits are warnings.
func Run(ctx context.Context, opts Options, emit func(Result)) (*Report, error) {
	if opts.Runner == nil {
		return nil, errors.New(messages.HarnessRunnerRequired)
	}
	if opts.Config == nil {
		return nil, errors.New(messages.HarnessConfigRequired)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Exists == nil {
		opts.Exists = layout.FileExists
	}
	if opts.Executable == nil {
		opts.Executable = isExecutable
	}
	h := &harness{opts: opts, report: &Report{}, emit: emit, logger: opts.Logger}
	if h.logger == nil {
		h.logger = logging.Nop()
	}

	for _, stage := range []func(context.Context) error{h.checkRuntime, h.checkPayload, h.checkLauncher} {
		if err := stage(ctx); err != nil {
			return h.report, err
		}
	}
	return h.report, nil
}

func (h *harness) record(r Result) {
	h.report.Results = append(h.report.Results, r)
	if h.emit != nil {
		h.emit(r)
	}
}

func (h *harness) checkRuntime(ctx context.Context) error {
	rt := h.opts.Config.Runtime
	res, err := runner.Capture(ctx, h.opts.Runner, h.opts.Config.Timeout(), rt.Command, rt.VersionArg)
	if err != nil || res.Failed() {
		h.record(Result{
			Status:   StatusFail,
			Stage:    messages.HarnessStageRuntime,
			Message:  fmt.Sprintf(messages.HarnessRuntimeUnavailableFmt, rt.Command),
			Detail:   h.opts.Platform.RuntimeRemediation(),
			ExitCode: res.ExitCode,
			Stdout:   res.Stdout,
		})
		return ErrRuntimeUnavailable
	}
	h.record(Result{
		Status:   StatusOK,
		Stage:    messages.HarnessStageRuntime,
		Message:  fmt.Sprintf(messages.HarnessRuntimeOKFmt, rt.Command),
		Detail:   firstLine(res.Stderr + res.Stdout),
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
	})
	return nil
}

func (h *harness) checkPayload(ctx context.Context) error {
	payload := h.opts.Layout.PayloadPath
	if !h.opts.Exists(payload) {
		h.record(Result{
			Status:  StatusFail,
			Stage:   messages.HarnessStagePayload,
			Message: fmt.Sprintf(messages.HarnessPayloadMissingFmt, payload),
		})
		return ErrPayloadMissing
	}
	args := []string{"-jar", payload, "--help"}
	label := strings.Join(append([]string{h.opts.Config.Runtime.Command}, args...), " ")
	h.probe(ctx, messages.HarnessStagePayload, label, h.opts.Config.Runtime.Command, args, messages.HarnessPayloadOKFmt)
	return nil
}

func (h *harness) checkLauncher(ctx context.Context) error {
	path := h.opts.Layout.PrimaryLauncher()
	if path == "" || !h.opts.Exists(path) {
		h.record(Result{
			Status:  StatusFail,
			Stage:   messages.HarnessStageLauncher,
			Message: fmt.Sprintf(messages.HarnessLauncherMissingFmt, path),
		})
		return ErrLauncherMissing
	}
	if h.opts.Platform.NeedsChmod() && !h.opts.Executable(path) {
		h.record(Result{
			Status:  StatusWarn,
			Stage:   messages.HarnessStageLauncher,
			Message: fmt.Sprintf(messages.HarnessLauncherNotExecFmt, path),
			Detail:  messages.HarnessLauncherNotExecHint,
		})
	}
	name := h.opts.Config.PrimaryLauncher()
	for _, args := range Probes {
		label := strings.Join(append([]string{name}, args...), " ")
		h.probe(ctx, messages.HarnessStageLauncher, label, path, args, messages.HarnessProbeOKFmt)
	}
	return nil
}

// probe runs one command and records OK, or WARN with captured stderr.
func (h *harness) probe(ctx context.Context, stage string, label string, name string, args []string, okFmt string) {
	timeout := h.opts.Config.Timeout()
	res, err := runner.Capture(ctx, h.opts.Runner, timeout, name, args...)
	h.logger.Debug("probe", "command", label, "exit", res.ExitCode, "timed_out", res.TimedOut, "duration", res.Duration, "stdout", firstLine(res.Stdout))
	out := Result{Status: StatusWarn, Stage: stage, ExitCode: res.ExitCode, Stdout: res.Stdout}
	switch {
	case err != nil:
		out.Message = fmt.Sprintf(messages.HarnessProbeExitFmt, label, res.ExitCode)
		out.Detail = err.Error()
	case res.TimedOut:
		out.Message = fmt.Sprintf(messages.HarnessProbeTimeoutFmt, label, timeout)
		out.Detail = stderrDetail(res.Stderr)
	case res.ExitCode != 0:
		out.Message = fmt.Sprintf(messages.HarnessProbeExitFmt, label, res.ExitCode)
		out.Detail = stderrDetail(res.Stderr)
	default:
		out.Status = StatusOK
		out.Message = fmt.Sprintf(okFmt, label)
	}
	h.record(out)
}

func stderrDetail(stderr string) string {
	trimmed := strings.TrimSpace(stderr)
	if trimmed == "" {
		return ""
	}
	return fmt.Sprintf(messages.HarnessProbeStderrFmt, trimmed)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
