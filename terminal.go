package minilog

import (
	"io"
	"os"
	"sync"

	"pkt.systems/minilog/internal/istty"
)

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return istty.IsTerminal(int(f.Fd()))
}

// Terminal attachment of the standard streams does not change while the
// process runs, so it is probed once.
var (
	stdoutInteractive = sync.OnceValue(func() bool { return isTerminal(os.Stdout) })
	stderrInteractive = sync.OnceValue(func() bool { return isTerminal(os.Stderr) })
)
