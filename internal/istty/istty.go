// Package istty reports whether a file descriptor is attached to an
// interactive terminal.
package istty

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IsTerminal reports whether fd refers to a terminal. Cygwin and MSYS ptys,
// which present as named pipes on Windows, count as terminals.
func IsTerminal(fd int) bool {
	if fd < 0 {
		return false
	}
	return term.IsTerminal(fd) || isatty.IsCygwinTerminal(uintptr(fd))
}
