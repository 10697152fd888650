package minilog

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"pkt.systems/minilog/ansi"
)

// Options controls the initial configuration of a Logger. The zero value
// gives the defaults: InfoLevel, ColorAuto, groups shown, every other field
// hidden, UTC timestamps.
type Options struct {
	// MinLevel sets the runtime level. Defaults to InfoLevel.
	MinLevel Level

	// ShowTime prefixes each line with a "YYYY-MM-DD HH:MM:SS.mmmZ" stamp.
	ShowTime bool

	// ShowThreadID adds "[tid]" right after the level tag.
	ShowThreadID bool

	// ShowFileLine adds "<file:line>" of the call site.
	ShowFileLine bool

	// HideGroup drops "[group]" from lines that carry a group tag.
	HideGroup bool

	// ColorMode selects when level tags are coloured. Defaults to ColorAuto.
	ColorMode ColorMode

	// Palette overrides the colours used when colour is on. When nil the
	// package palette of the ansi subpackage is used.
	Palette *ansi.Palette

	// LocalTime renders timestamps in the local zone instead of UTC.
	LocalTime bool

	// OnWriteFailure is called after a line could not be written. It runs
	// while the sink lock is held and must not log through the same Logger.
	OnWriteFailure func(WriteFailure)
}

// Logger formats records into single lines and writes them to its target.
// All methods are safe for concurrent use. Configuration setters take effect
// for every subsequent call on any goroutine. The zero value is ready to use
// with the same defaults as New.
type Logger struct {
	level        atomic.Int32
	showTime     atomic.Bool
	showTID      atomic.Bool
	showFileLine atomic.Bool
	hideGroup    atomic.Bool
	colorMode    atomic.Uint32
	palette      atomic.Pointer[ansi.Palette]

	localTime      bool
	clock          stampClock
	onWriteFailure func(WriteFailure)

	out outputCell
}

// New returns a Logger with default options. Its target is unset until
// SetTarget, SetWriter or SetFile is called, or until the first line is
// emitted, which claims stderr.
func New() *Logger {
	return NewWithOptions(Options{})
}

// NewWithOptions builds a Logger with explicit settings.
func NewWithOptions(opts Options) *Logger {
	l := &Logger{
		localTime:      opts.LocalTime,
		onWriteFailure: opts.OnWriteFailure,
	}
	l.SetLevel(opts.MinLevel)
	l.showTime.Store(opts.ShowTime)
	l.showTID.Store(opts.ShowThreadID)
	l.showFileLine.Store(opts.ShowFileLine)
	l.hideGroup.Store(opts.HideGroup)
	l.SetColorMode(opts.ColorMode)
	if opts.Palette != nil {
		l.SetPalette(*opts.Palette)
	}
	return l
}

// SetLevel sets the runtime level. Out-of-range values are clamped.
func (l *Logger) SetLevel(level Level) {
	level = max(TraceLevel, min(level, FatalLevel))
	l.level.Store(int32(level))
}

// Level returns the runtime level.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetShowTime toggles the timestamp prefix.
func (l *Logger) SetShowTime(on bool) { l.showTime.Store(on) }

// SetShowThreadID toggles the "[tid]" field.
func (l *Logger) SetShowThreadID(on bool) { l.showTID.Store(on) }

// SetShowFileLine toggles the "<file:line>" field.
func (l *Logger) SetShowFileLine(on bool) { l.showFileLine.Store(on) }

// SetShowGroup toggles the "[group]" field.
func (l *Logger) SetShowGroup(on bool) { l.hideGroup.Store(!on) }

// SetColorMode sets the colour mode.
func (l *Logger) SetColorMode(mode ColorMode) {
	if mode > ColorNever {
		mode = ColorAuto
	}
	l.colorMode.Store(uint32(mode))
}

// ColorMode returns the colour mode.
func (l *Logger) ColorMode() ColorMode {
	return ColorMode(l.colorMode.Load())
}

// SetPalette replaces the colours used by this Logger. Empty palette fields
// fall back to the ansi package palette.
func (l *Logger) SetPalette(p ansi.Palette) {
	complete := ansi.Complete(p)
	l.palette.Store(&complete)
}

func (l *Logger) currentPalette() ansi.Palette {
	if p := l.palette.Load(); p != nil {
		return *p
	}
	return ansi.Snapshot()
}

// Enabled reports whether a record at level would be emitted. It costs one
// atomic load, so callers may use it to skip building expensive messages.
func (l *Logger) Enabled(level Level) bool {
	return level >= compiledFloor && int32(level) >= l.level.Load()
}

// Emit writes one record. file and line describe the call site and are shown
// when file-line display is on and file is not empty; group is shown in
// brackets when not empty. Nothing is formatted for a filtered record. Write
// failures are counted (see Stats) and never returned.
func (l *Logger) Emit(level Level, group, file string, line int, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.emit(level, group, file, line, msg)
}

// Emitf is Emit with a printf style message, formatted only when the record
// passes the level check.
func (l *Logger) Emitf(level Level, group, file string, line int, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.emit(level, group, file, line, fmt.Sprintf(format, args...))
}

// emit lays the record out as
//
//	[TIMESTAMP ]LEVEL[ [tid]][ <file:line>][ [group]] message\n
//
// and hands it to the sink in one write.
func (l *Logger) emit(level Level, group, file string, line int, msg string) {
	out := l.output()
	color := resolveColor(l.ColorMode(), out.kind, out.interactive())
	var pal ansi.Palette
	if color {
		pal = l.currentPalette()
	}
	levelColor := levelStyle(pal, level)

	lb := acquireLine()
	if l.showTime.Load() {
		if color {
			lb.writeString(pal.Timestamp)
		}
		if l.localTime {
			lb.buf = l.clock.appendLocal(lb.buf)
		} else {
			lb.buf = l.clock.appendUTC(lb.buf)
		}
		if color {
			lb.writeString(ansi.Reset)
		}
		lb.writeByte(' ')
	}
	lb.writeStyled(levelColor, level.String(), ansi.Reset)
	if l.showTID.Load() {
		lb.writeString(" [")
		if color {
			lb.writeString(pal.ThreadID)
		}
		lb.buf = strconv.AppendUint(lb.buf, threadID(), 10)
		if color {
			lb.writeString(ansi.Reset)
		}
		lb.writeByte(']')
	}
	if file != "" && l.showFileLine.Load() {
		lb.writeString(" <")
		if color {
			lb.writeString(pal.Location)
		}
		lb.writeString(file)
		lb.writeByte(':')
		lb.buf = strconv.AppendInt(lb.buf, int64(line), 10)
		if color {
			lb.writeString(ansi.Reset)
		}
		lb.writeByte('>')
	}
	if group != "" && !l.hideGroup.Load() {
		lb.writeString(" [")
		if color {
			lb.writeString(pal.Group)
		}
		lb.writeStyledEscaped(levelColor, group, ansi.Reset)
		lb.writeByte(']')
	}
	lb.writeByte(' ')
	lb.writeEscaped(msg)
	lb.writeByte('\n')
	out.write(lb.buf)
	releaseLine(lb)
}

func levelStyle(p ansi.Palette, level Level) string {
	switch level {
	case TraceLevel:
		return p.Trace
	case DebugLevel:
		return p.Debug
	case WarnLevel:
		return p.Warn
	case ErrorLevel:
		return p.Error
	case FatalLevel:
		return p.Fatal
	default:
		return p.Info
	}
}

// logDepth is the shared body of the call-site helpers. depth counts extra
// wrapper frames between the public helper and logDepth.
func (l *Logger) logDepth(depth int, level Level, group, msg string) {
	if !l.Enabled(level) {
		return
	}
	var file string
	var line int
	if l.showFileLine.Load() {
		file, line = callerLocation(depth + 2)
	}
	l.emit(level, group, file, line, msg)
}

func (l *Logger) logfDepth(depth int, level Level, group, format string, args []any) {
	if !l.Enabled(level) {
		return
	}
	var file string
	var line int
	if l.showFileLine.Load() {
		file, line = callerLocation(depth + 2)
	}
	l.emit(level, group, file, line, fmt.Sprintf(format, args...))
}

// Log emits msg at level with the caller's file and line.
func (l *Logger) Log(level Level, msg string) { l.logDepth(0, level, "", msg) }

// Trace logs msg at TraceLevel.
func (l *Logger) Trace(msg string) { l.logDepth(0, TraceLevel, "", msg) }

// Debug logs msg at DebugLevel.
func (l *Logger) Debug(msg string) { l.logDepth(0, DebugLevel, "", msg) }

// Info logs msg at InfoLevel.
func (l *Logger) Info(msg string) { l.logDepth(0, InfoLevel, "", msg) }

// Warn logs msg at WarnLevel.
func (l *Logger) Warn(msg string) { l.logDepth(0, WarnLevel, "", msg) }

// Error logs msg at ErrorLevel.
func (l *Logger) Error(msg string) { l.logDepth(0, ErrorLevel, "", msg) }

// Fatal logs msg at FatalLevel. It does not exit.
func (l *Logger) Fatal(msg string) { l.logDepth(0, FatalLevel, "", msg) }

func (l *Logger) Tracef(format string, args ...any) {
	l.logfDepth(0, TraceLevel, "", format, args)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.logfDepth(0, DebugLevel, "", format, args)
}

func (l *Logger) Infof(format string, args ...any) {
	l.logfDepth(0, InfoLevel, "", format, args)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.logfDepth(0, WarnLevel, "", format, args)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.logfDepth(0, ErrorLevel, "", format, args)
}

func (l *Logger) Fatalf(format string, args ...any) {
	l.logfDepth(0, FatalLevel, "", format, args)
}

// LogGroup emits msg at level tagged with group.
func (l *Logger) LogGroup(level Level, group, msg string) { l.logDepth(0, level, group, msg) }

func (l *Logger) TraceGroup(group, msg string) { l.logDepth(0, TraceLevel, group, msg) }
func (l *Logger) DebugGroup(group, msg string) { l.logDepth(0, DebugLevel, group, msg) }
func (l *Logger) InfoGroup(group, msg string)  { l.logDepth(0, InfoLevel, group, msg) }
func (l *Logger) WarnGroup(group, msg string)  { l.logDepth(0, WarnLevel, group, msg) }
func (l *Logger) ErrorGroup(group, msg string) { l.logDepth(0, ErrorLevel, group, msg) }
func (l *Logger) FatalGroup(group, msg string) { l.logDepth(0, FatalLevel, group, msg) }
