package minilog

import (
	"io"
	"sync"
)

// std is the process-wide Logger behind the package-level functions. It is
// created on first use with default options and follows the same set-once
// target rules as any other Logger: the first SetTarget/SetWriter/SetFile,
// or the first emitted line, fixes the destination for the process.
var std = sync.OnceValue(New)

// Default returns the process-wide Logger.
func Default() *Logger {
	return std()
}

// SetLevel sets the runtime level of the default Logger.
func SetLevel(level Level) { std().SetLevel(level) }

// SetShowTime toggles timestamps on the default Logger.
func SetShowTime(on bool) { std().SetShowTime(on) }

// SetShowThreadID toggles thread ids on the default Logger.
func SetShowThreadID(on bool) { std().SetShowThreadID(on) }

// SetShowFileLine toggles call-site locations on the default Logger.
func SetShowFileLine(on bool) { std().SetShowFileLine(on) }

// SetShowGroup toggles group tags on the default Logger.
func SetShowGroup(on bool) { std().SetShowGroup(on) }

// SetColorMode sets the colour mode of the default Logger.
func SetColorMode(mode ColorMode) { std().SetColorMode(mode) }

// SetTarget claims the default Logger's destination kind. See
// (*Logger).SetTarget.
func SetTarget(t Target) error { return std().SetTarget(t) }

// SetWriter claims the default Logger's destination. See (*Logger).SetWriter.
func SetWriter(w io.Writer) error { return std().SetWriter(w) }

// SetFile opens path and claims it as the default Logger's destination. See
// (*Logger).SetFile.
func SetFile(path string) error { return std().SetFile(path) }

// Enabled reports whether the default Logger would emit a record at level.
func Enabled(level Level) bool { return std().Enabled(level) }

// Emit writes one record through the default Logger.
func Emit(level Level, group, file string, line int, msg string) {
	std().Emit(level, group, file, line, msg)
}

// StartScope starts a ScopeTimer on the default Logger.
func StartScope(label string) *ScopeTimer {
	file, line := callerLocation(1)
	return std().startScopeAt(label, file, line)
}

// Time runs fn and reports its duration on the default Logger.
func Time(label string, fn func()) {
	file, line := callerLocation(1)
	t := std().startScopeAt(label, file, line)
	defer t.Stop()
	fn()
}

func Trace(msg string) { std().logDepth(0, TraceLevel, "", msg) }
func Debug(msg string) { std().logDepth(0, DebugLevel, "", msg) }
func Info(msg string)  { std().logDepth(0, InfoLevel, "", msg) }
func Warn(msg string)  { std().logDepth(0, WarnLevel, "", msg) }
func Error(msg string) { std().logDepth(0, ErrorLevel, "", msg) }

// Fatal logs at FatalLevel on the default Logger. It does not exit.
func Fatal(msg string) { std().logDepth(0, FatalLevel, "", msg) }

func Tracef(format string, args ...any) { std().logfDepth(0, TraceLevel, "", format, args) }
func Debugf(format string, args ...any) { std().logfDepth(0, DebugLevel, "", format, args) }
func Infof(format string, args ...any)  { std().logfDepth(0, InfoLevel, "", format, args) }
func Warnf(format string, args ...any)  { std().logfDepth(0, WarnLevel, "", format, args) }
func Errorf(format string, args ...any) { std().logfDepth(0, ErrorLevel, "", format, args) }
func Fatalf(format string, args ...any) { std().logfDepth(0, FatalLevel, "", format, args) }

func TraceGroup(group, msg string) { std().logDepth(0, TraceLevel, group, msg) }
func DebugGroup(group, msg string) { std().logDepth(0, DebugLevel, group, msg) }
func InfoGroup(group, msg string)  { std().logDepth(0, InfoLevel, group, msg) }
func WarnGroup(group, msg string)  { std().logDepth(0, WarnLevel, group, msg) }
func ErrorGroup(group, msg string) { std().logDepth(0, ErrorLevel, group, msg) }
func FatalGroup(group, msg string) { std().logDepth(0, FatalLevel, group, msg) }

// Banner writes "<name> v<version> (<mode>)" through the default Logger.
func Banner(name, version string) { std().Banner(name, version) }

// InitFromEnv applies the environment to the default Logger. See ApplyEnv.
func InitFromEnv(opts ...EnvOption) error { return ApplyEnv(std(), opts...) }
