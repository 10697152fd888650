// Package ansi provides the ANSI escape sequences and palettes used by
// minilog when colour output is enabled. A Palette maps each log level (and
// the decorated line fields) onto an escape sequence; loggers take a palette
// at construction time, and the package-level palette is used when none is
// supplied.
package ansi

import "sync"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose common ANSI color sequences used by minilog.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Palette is the input type to SetPalette, see the Palette* variables for
// examples. Empty fields fall back to the current package palette.
type Palette struct {
	Trace     string
	Debug     string
	Info      string
	Warn      string
	Error     string
	Fatal     string
	Timestamp string
	ThreadID  string
	Location  string
	// Group is emitted after Bold and before the level colour.
	Group string
}

var (
	paletteMu sync.RWMutex
	current   = PaletteDefault
)

// SetPalette replaces the package-level palette used by loggers that were
// built without an explicit palette.
//
//	ansi.SetPalette(ansi.PaletteNord)
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()
	current = merge(palette, current)
}

// Snapshot returns the current package-level palette.
//
// Typical usage in tests:
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return current
}

// Complete returns p with empty fields filled from the package palette.
func Complete(p Palette) Palette {
	return merge(p, Snapshot())
}

func merge(p, fallback Palette) Palette {
	return Palette{
		Trace:     f(p.Trace, fallback.Trace),
		Debug:     f(p.Debug, fallback.Debug),
		Info:      f(p.Info, fallback.Info),
		Warn:      f(p.Warn, fallback.Warn),
		Error:     f(p.Error, fallback.Error),
		Fatal:     f(p.Fatal, fallback.Fatal),
		Timestamp: f(p.Timestamp, fallback.Timestamp),
		ThreadID:  f(p.ThreadID, fallback.ThreadID),
		Location:  f(p.Location, fallback.Location),
		Group:     f(p.Group, fallback.Group),
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
