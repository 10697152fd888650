package ansi

import (
	"sort"
	"strings"
)

// PaletteDefault is the classic eight-colour scheme: faint trace, cyan debug,
// green info, yellow warn, red error and magenta fatal.
var PaletteDefault = Palette{
	Trace:     Faint,
	Debug:     Cyan,
	Info:      Green,
	Warn:      Yellow,
	Error:     Red,
	Fatal:     Magenta,
	Timestamp: Faint,
	ThreadID:  Faint,
	Location:  Faint,
	Group:     Bold,
}

// PaletteBright uses bold variants for the levels at or above warn.
var PaletteBright = Palette{
	Trace:     Blue,
	Debug:     Green,
	Info:      BrightGreen,
	Warn:      BrightYellow,
	Error:     BrightRed,
	Fatal:     BrightMagenta,
	Timestamp: Faint,
	ThreadID:  Gray,
	Location:  Gray,
	Group:     Bold,
}

// PaletteNord is a 256-colour take on the Nord scheme.
var PaletteNord = Palette{
	Trace:     "\x1b[38;5;60m",
	Debug:     "\x1b[38;5;110m",
	Info:      "\x1b[38;5;108m",
	Warn:      "\x1b[38;5;222m",
	Error:     "\x1b[38;5;174m",
	Fatal:     "\x1b[1;38;5;139m",
	Timestamp: "\x1b[38;5;60m",
	ThreadID:  "\x1b[38;5;67m",
	Location:  "\x1b[38;5;67m",
	Group:     Bold,
}

// PaletteGruvbox is a 256-colour take on the Gruvbox dark scheme.
var PaletteGruvbox = Palette{
	Trace:     "\x1b[38;5;245m",
	Debug:     "\x1b[38;5;109m",
	Info:      "\x1b[38;5;142m",
	Warn:      "\x1b[38;5;214m",
	Error:     "\x1b[38;5;167m",
	Fatal:     "\x1b[1;38;5;175m",
	Timestamp: "\x1b[38;5;243m",
	ThreadID:  "\x1b[38;5;108m",
	Location:  "\x1b[38;5;108m",
	Group:     Bold,
}

// PaletteMono styles by weight only, for terminals with unreliable colour.
var PaletteMono = Palette{
	Trace:     Faint,
	Debug:     Faint,
	Info:      Bold,
	Warn:      Bold,
	Error:     "\x1b[1;4m",
	Fatal:     "\x1b[1;7m",
	Timestamp: Faint,
	ThreadID:  Faint,
	Location:  Faint,
	Group:     Bold,
}

var namedPalettes = map[string]*Palette{
	"default": &PaletteDefault,
	"bright":  &PaletteBright,
	"nord":    &PaletteNord,
	"gruvbox": &PaletteGruvbox,
	"mono":    &PaletteMono,
}

var paletteAliases = map[string]string{
	"classic":      "default",
	"doom-nord":    "nord",
	"doomnord":     "nord",
	"doom-gruvbox": "gruvbox",
	"doomgruvbox":  "gruvbox",
	"monochrome":   "mono",
}

// PaletteByName resolves a built-in palette by its canonical name.
// Names are case-insensitive and support compatibility aliases. Unknown names
// resolve to PaletteDefault; use LookupPalette to detect them.
func PaletteByName(name string) *Palette {
	if palette, ok := LookupPalette(name); ok {
		return palette
	}
	return &PaletteDefault
}

// LookupPalette resolves a built-in palette and reports whether name was
// recognised.
func LookupPalette(name string) (*Palette, bool) {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return nil, false
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	palette, ok := namedPalettes[normalized]
	return palette, ok && palette != nil
}

// AvailablePaletteNames returns canonical built-in palette names in sorted order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
