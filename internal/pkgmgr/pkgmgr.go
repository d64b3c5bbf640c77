// Package pkgmgr queries the host package manager for its global module root.
package pkgmgr

import (
	"context"
	"strings"

	"github.com/rojojun/hello-time-man/internal/runner"
)

// Query describes how to ask the package manager for its global root.
type Query struct {
	Command  string
	Args     []string
	Fallback string
}

// GlobalRoot runs the query and returns the first non-empty stdout line.
// When the command cannot start, exits non-zero, or prints nothing, it returns
// q.Fallback and fromQuery=false.
func GlobalRoot(ctx context.Context, r runner.Runner, q Query) (root string, fromQuery bool) {
	if r == nil || strings.TrimSpace(q.Command) == "" {
		return q.Fallback, false
	}
	result, err := runner.Capture(ctx, r, 0, q.Command, q.Args...)
	if err != nil || result.Failed() {
		return q.Fallback, false
	}
	for _, line := range strings.Split(result.Stdout, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, true
		}
	}
	return q.Fallback, false
}
