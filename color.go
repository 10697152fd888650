package minilog

import (
	"strings"
)

// ColorMode selects when level tags are decorated with ANSI escapes.
type ColorMode uint8

const (
	// ColorAuto colours only stdout/stderr targets attached to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colours every line regardless of the destination.
	ColorAlways
	// ColorNever never emits escape sequences.
	ColorNever
)

// ParseColorMode converts "auto", "always" or "never" (case insensitive) into
// a ColorMode. The empty string means ColorAuto.
func ParseColorMode(value string) (ColorMode, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return ColorAuto, true
	case "always":
		return ColorAlways, true
	case "never":
		return ColorNever, true
	default:
		return ColorAuto, false
	}
}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// resolveColor decides whether one line gets ANSI decoration. Under
// ColorAuto only console targets qualify, and only when interactive.
func resolveColor(mode ColorMode, kind Target, interactive bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	switch kind {
	case TargetStdout, TargetStderr:
		return interactive
	default:
		return false
	}
}
