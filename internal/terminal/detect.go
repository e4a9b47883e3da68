// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// IsTerminal reports whether w is a file attached to a terminal.
// Writers that are not *os.File never count as terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isTerminal(int(f.Fd()))
}
