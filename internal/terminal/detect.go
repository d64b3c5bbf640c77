// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether w is a file attached to a terminal. Buffers and
// pipes are not, so colored status labels are only written to real consoles.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
