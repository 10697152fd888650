package minilog

import (
	"os"
	"strings"
)

// Level defines log levels. Levels are totally ordered; a record is emitted
// when its level is at or above both the compile-time floor and the runtime
// level of the Logger.
type Level int8

const (
	// TraceLevel defines trace log level.
	TraceLevel Level = iota - 2
	// DebugLevel defines debug log level.
	DebugLevel
	// InfoLevel defines info log level. It is the zero value.
	InfoLevel
	// WarnLevel defines warn log level.
	WarnLevel
	// ErrorLevel defines error log level.
	ErrorLevel
	// FatalLevel defines fatal log level. It is a severity only; minilog never
	// terminates the process.
	FatalLevel
)

var levelTags = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// ParseLevel converts a textual level into a Level value. It accepts "trace",
// "debug", "info", "warn", "warning", "error" and "fatal" (case insensitive).
// Unknown values return InfoLevel and false.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return TraceLevel, true
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	case "fatal":
		return FatalLevel, true
	default:
		return InfoLevel, false
	}
}

// LevelFromEnv looks up key in the environment and parses it into a Level.
func LevelFromEnv(key string) (Level, bool) {
	if key == "" {
		return InfoLevel, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return InfoLevel, false
	}
	return ParseLevel(value)
}

// String returns the upper-case tag used on the wire (TRACE, DEBUG, INFO,
// WARN, ERROR, FATAL). Out-of-range values render as INFO.
func (l Level) String() string {
	if !l.valid() {
		return levelTags[InfoLevel-TraceLevel]
	}
	return levelTags[l-TraceLevel]
}

func (l Level) valid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// CompiledIn reports whether records at level l survive the compile-time
// floor. Callers can use it to guard expensive argument construction.
func CompiledIn(l Level) bool {
	return l >= compiledFloor
}
