package minilog

import (
	"sync/atomic"
	"time"
)

// ScopeTimer measures the time between StartScope and Stop and reports it as
// one InfoLevel line, "took <duration>", tagged with the timer's label.
//
//	t := logger.StartScope("load")
//	defer t.Stop()
//
// Stop is idempotent, so a deferred Stop also covers early returns and
// panics without ever emitting twice.
type ScopeTimer struct {
	logger *Logger
	label  string
	file   string
	line   int
	start  time.Time
	done   atomic.Bool
}

// StartScope starts a timer labelled label. The call site is recorded as the
// location of the eventual line.
func (l *Logger) StartScope(label string) *ScopeTimer {
	file, line := callerLocation(1)
	return l.startScopeAt(label, file, line)
}

func (l *Logger) startScopeAt(label, file string, line int) *ScopeTimer {
	return &ScopeTimer{
		logger: l,
		label:  label,
		file:   file,
		line:   line,
		start:  time.Now(),
	}
}

// Stop emits the elapsed time on the first call and returns it. Later calls
// emit nothing and return zero.
func (t *ScopeTimer) Stop() time.Duration {
	if t == nil || !t.done.CompareAndSwap(false, true) {
		return 0
	}
	elapsed := time.Since(t.start)
	if !t.logger.Enabled(InfoLevel) {
		return elapsed
	}
	t.logger.Emit(InfoLevel, t.label, t.file, t.line, "took "+HumanDuration(elapsed).String())
	return elapsed
}

// Time runs fn and reports how long it took, even when fn panics.
func (l *Logger) Time(label string, fn func()) {
	file, line := callerLocation(1)
	t := l.startScopeAt(label, file, line)
	defer t.Stop()
	fn()
}

// TimeErr runs fn, reports how long it took and returns fn's error.
func (l *Logger) TimeErr(label string, fn func() error) error {
	file, line := callerLocation(1)
	t := l.startScopeAt(label, file, line)
	defer t.Stop()
	return fn()
}
