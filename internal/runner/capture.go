package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"
)

// Result is the outcome of a captured run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
	Duration time.Duration
}

// Failed reports whether the run timed out or exited non-zero.
func (r Result) Failed() bool {
	return r.TimedOut || r.ExitCode != 0
}

// Capture runs the program with buffered output and an optional timeout.
// A timeout is reported through Result.TimedOut, not as an error.
func Capture(ctx context.Context, r Runner, timeout time.Duration, name string, args ...string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	var stdout, stderr bytes.Buffer
	start := time.Now()
	code, err := r.Run(ctx, name, args, Stdio{Stdout: &stdout, Stderr: &stderr})
	result := Result{
		ExitCode: code,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		if result.ExitCode == 0 {
			result.ExitCode = -1
		}
		return result, nil
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

// Available reports whether the program starts and exits 0. Output is discarded.
func Available(ctx context.Context, r Runner, name string, args ...string) bool {
	code, err := r.Run(ctx, name, args, Stdio{Stdout: io.Discard, Stderr: io.Discard})
	return err == nil && code == 0
}
