package minilog

import (
	"bytes"
	"log"
	"strings"
)

// StdLogger wraps l into a standard library *log.Logger. Each line written
// through it becomes one record; a leading level word ("warn: disk full",
// "[ERROR] boom") selects the level, otherwise InfoLevel is used.
func StdLogger(l *Logger) *log.Logger {
	return log.New(loggerWriter{logger: l}, "", 0)
}

// StdLoggerAt wraps l into a *log.Logger that emits every line at level,
// tagged with group when group is not empty.
func StdLoggerAt(l *Logger, level Level, group string) *log.Logger {
	return log.New(levelPinnedWriter{logger: l, level: level, group: group}, "", 0)
}

type loggerWriter struct {
	logger *Logger
}

func (w loggerWriter) Write(p []byte) (int, error) {
	if len(p) == 0 || w.logger == nil {
		return len(p), nil
	}
	for line := range bytes.SplitSeq(p, []byte{'\n'}) {
		trimmed := strings.TrimSpace(string(bytes.TrimRight(line, "\r")))
		if trimmed == "" {
			continue
		}
		level, msg := classifyLineLevel(trimmed)
		w.logger.Emit(level, "", "", 0, msg)
	}
	return len(p), nil
}

type levelPinnedWriter struct {
	logger *Logger
	level  Level
	group  string
}

func (w levelPinnedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 || w.logger == nil {
		return len(p), nil
	}
	if !w.logger.Enabled(w.level) {
		return len(p), nil
	}
	for line := range bytes.SplitSeq(p, []byte{'\n'}) {
		line = bytes.TrimSpace(bytes.TrimSuffix(line, []byte{'\r'}))
		if len(line) == 0 {
			continue
		}
		w.logger.Emit(w.level, w.group, "", 0, string(line))
	}
	return len(p), nil
}

// classifyLineLevel recognises "[LEVEL] msg" and "level: msg" prefixes.
func classifyLineLevel(line string) (Level, string) {
	if strings.HasPrefix(line, "[") {
		if end := strings.IndexByte(line, ']'); end > 1 {
			if lvl, ok := ParseLevel(line[1:end]); ok {
				return lvl, strings.TrimSpace(line[end+1:])
			}
		}
	}
	lowered := strings.ToLower(line)
	for _, candidate := range []struct {
		prefix string
		level  Level
	}{
		{"trace", TraceLevel},
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warning", WarnLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
	} {
		if !strings.HasPrefix(lowered, candidate.prefix) {
			continue
		}
		rest := line[len(candidate.prefix):]
		if rest != "" && !strings.ContainsRune(":- ", rune(rest[0])) {
			continue
		}
		return candidate.level, strings.TrimSpace(strings.TrimLeft(rest, ":- "))
	}
	return InfoLevel, line
}
