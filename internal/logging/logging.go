// Package logging builds the diagnostic logger shared by htm commands.
// User-facing output goes through internal/messages; the logger only carries
// debug and warning detail on stderr.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvDebug enables debug logging when set to 1 or true.
const EnvDebug = "HTM_DEBUG"

// Prefix is prepended to every log line.
const Prefix = "htm"

// New returns a logger writing to w. verbose selects debug level; otherwise
// only warnings and errors are emitted.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
}

// DebugFromEnv reports whether getenv enables debug logging.
func DebugFromEnv(getenv func(string) string) bool {
	if getenv == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(getenv(EnvDebug))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// Nop returns a logger that discards everything.
func Nop() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
