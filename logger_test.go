package minilog

import (
	"fmt"
	"io"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"pkt.systems/minilog/ansi"
)

func TestDefaultLineLayout(t *testing.T) {
	l, buf := newTestLogger(Options{})
	l.Info("hello")
	l.InfoGroup("db", "connected")
	l.Warnf("retry %d of %d", 2, 3)

	want := "INFO hello\nINFO [db] connected\nWARN retry 2 of 3\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestEveryLevelTag(t *testing.T) {
	l, buf := newTestLogger(Options{MinLevel: TraceLevel})
	l.Trace("t")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	l.Fatal("f")

	want := []string{"TRACE t", "DEBUG d", "INFO i", "WARN w", "ERROR e", "FATAL f"}
	got := buf.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines: %q", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGroupHelpers(t *testing.T) {
	l, buf := newTestLogger(Options{MinLevel: TraceLevel})
	l.TraceGroup("g", "1")
	l.DebugGroup("g", "2")
	l.WarnGroup("g", "3")
	l.ErrorGroup("g", "4")
	l.FatalGroup("g", "5")
	l.LogGroup(InfoLevel, "g", "6")
	want := "TRACE [g] 1\nDEBUG [g] 2\nWARN [g] 3\nERROR [g] 4\nFATAL [g] 5\nINFO [g] 6\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestShowGroupToggle(t *testing.T) {
	l, buf := newTestLogger(Options{HideGroup: true})
	l.InfoGroup("db", "hidden")
	l.SetShowGroup(true)
	l.InfoGroup("db", "shown")
	want := "INFO hidden\nINFO [db] shown\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestEmptyGroupOmitsBrackets(t *testing.T) {
	l, buf := newTestLogger(Options{})
	l.InfoGroup("", "plain")
	if got := buf.String(); got != "INFO plain\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestShowFileLineUsesCallSite(t *testing.T) {
	l, buf := newTestLogger(Options{ShowFileLine: true})
	_, _, line, _ := runtime.Caller(0)
	l.Info("here")
	wantLine := line + 1

	got := buf.String()
	want := fmt.Sprintf("logger_test.go:%d> here\n", wantLine)
	if !strings.HasPrefix(got, "INFO <") || !strings.HasSuffix(got, want) {
		t.Fatalf("output = %q, want INFO <.../%s", got, want)
	}
}

func TestShowFileLineToggle(t *testing.T) {
	l, buf := newTestLogger(Options{})
	l.Info("off")
	l.SetShowFileLine(true)
	l.Info("on")
	lines := buf.Lines()
	if lines[0] != "INFO off" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if !regexp.MustCompile(`^INFO <[^>]*logger_test\.go:\d+> on$`).MatchString(lines[1]) {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestEmitExplicitLocation(t *testing.T) {
	l, buf := newTestLogger(Options{ShowFileLine: true})
	l.Emit(WarnLevel, "net", "pkg/dial.go", 17, "timeout")
	l.Emit(WarnLevel, "net", "", 0, "no location")
	l.Emitf(ErrorLevel, "", "pkg/dial.go", 18, "code %d", 7)
	want := "WARN <pkg/dial.go:17> [net] timeout\nWARN [net] no location\nERROR <pkg/dial.go:18> code 7\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestEmitHidesLocationWhenToggledOff(t *testing.T) {
	l, buf := newTestLogger(Options{})
	l.Emit(InfoLevel, "", "pkg/dial.go", 17, "m")
	if got := buf.String(); got != "INFO m\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestShowThreadID(t *testing.T) {
	l, buf := newTestLogger(Options{ShowThreadID: true, ShowFileLine: true})
	l.Emit(InfoLevel, "g", "a/b.go", 3, "m")
	re := regexp.MustCompile(`^INFO \[\d+\] <a/b\.go:3> \[g\] m\n$`)
	if got := buf.String(); !re.MatchString(got) {
		t.Fatalf("output = %q", got)
	}
}

func TestShowTime(t *testing.T) {
	l, buf := newTestLogger(Options{ShowTime: true})
	l.clock.now = func() time.Time {
		return time.Date(2024, 2, 29, 23, 59, 59, 987_654_321, time.UTC)
	}
	l.Info("m")
	if got := buf.String(); got != "2024-02-29 23:59:59.987Z INFO m\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestShowTimeLiveClock(t *testing.T) {
	l, buf := newTestLogger(Options{})
	l.SetShowTime(true)
	l.Info("m")
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}Z INFO m\n$`)
	if got := buf.String(); !re.MatchString(got) {
		t.Fatalf("output = %q", got)
	}
}

func TestLocalTimeHasNoZoneSuffix(t *testing.T) {
	l, buf := newTestLogger(Options{ShowTime: true, LocalTime: true})
	now := time.Date(2024, 1, 2, 3, 4, 5, 600_000_000, time.UTC)
	l.clock.now = func() time.Time { return now }
	l.Info("m")
	want := now.Local().Format("2006-01-02 15:04:05.000") + " INFO m\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestFullLineOrder(t *testing.T) {
	l, buf := newTestLogger(Options{ShowTime: true, ShowThreadID: true, ShowFileLine: true})
	l.clock.now = func() time.Time { return time.Unix(0, 0) }
	l.Emit(ErrorLevel, "io", "x/y.go", 9, "boom")
	re := regexp.MustCompile(`^1970-01-01 00:00:00\.000Z ERROR \[\d+\] <x/y\.go:9> \[io\] boom\n$`)
	if got := buf.String(); !re.MatchString(got) {
		t.Fatalf("output = %q", got)
	}
}

func TestColorAutoNeverDecoratesWriters(t *testing.T) {
	l, buf := newTestLogger(Options{ShowTime: true, ShowThreadID: true, ShowFileLine: true})
	l.ErrorGroup("g", "m")
	if strings.Contains(buf.String(), "\x1b") {
		t.Fatalf("auto colour decorated a writer target: %q", buf.String())
	}
}

func TestColorNever(t *testing.T) {
	l, buf := newTestLogger(Options{ColorMode: ColorNever})
	l.Error("m")
	if strings.Contains(buf.String(), "\x1b") {
		t.Fatalf("never emitted escapes: %q", buf.String())
	}
}

func TestColorAlways(t *testing.T) {
	l, buf := newTestLogger(Options{ColorMode: ColorAlways})
	l.InfoGroup("db", "up")
	pal := l.currentPalette()
	want := pal.Info + "INFO" + ansi.Reset + " [" + pal.Group + pal.Info + "db" + ansi.Reset + "] up\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestColorModeSwitchesAtRuntime(t *testing.T) {
	l, buf := newTestLogger(Options{})
	l.Info("plain")
	l.SetColorMode(ColorAlways)
	l.Info("coloured")
	lines := buf.Lines()
	if strings.Contains(lines[0], "\x1b") || !strings.Contains(lines[1], "\x1b") {
		t.Fatalf("lines = %q", lines)
	}
}

func TestPaletteOption(t *testing.T) {
	l, buf := newTestLogger(Options{
		ColorMode: ColorAlways,
		Palette:   &ansi.Palette{Warn: "<w>"},
	})
	l.Warn("m")
	if got := buf.String(); got != "<w>WARN"+ansi.Reset+" m\n" {
		t.Fatalf("output = %q", got)
	}
	l.SetPalette(ansi.PaletteMono)
	if l.currentPalette().Warn != ansi.PaletteMono.Warn {
		t.Fatalf("SetPalette not applied")
	}
}

func TestZeroValueLogger(t *testing.T) {
	var l Logger
	buf := &syncBuffer{}
	if err := l.SetWriter(buf); err != nil {
		t.Fatalf("SetWriter: %v", err)
	}
	l.Debug("filtered")
	l.InfoGroup("g", "grouped")
	l.SetShowTime(true)
	l.Info("stamped")

	lines := buf.Lines()
	if len(lines) != 2 || lines[0] != "INFO [g] grouped" {
		t.Fatalf("lines = %q", lines)
	}
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}Z INFO stamped$`)
	if !re.MatchString(lines[1]) {
		t.Fatalf("stamped line = %q", lines[1])
	}
}

func TestSetColorModeRejectsUnknown(t *testing.T) {
	l := New()
	l.SetColorMode(ColorMode(9))
	if l.ColorMode() != ColorAuto {
		t.Fatalf("mode = %v", l.ColorMode())
	}
}

func TestFilteredRecordDoesNotFormat(t *testing.T) {
	l, buf := newTestLogger(Options{MinLevel: ErrorLevel})
	called := false
	l.Infof("%v", stringerFunc(func() string { called = true; return "x" }))
	if called || buf.String() != "" {
		t.Fatalf("filtered record was formatted")
	}
}

type stringerFunc func() string

func (f stringerFunc) String() string { return f() }

func TestConcurrentLinesStayIntact(t *testing.T) {
	const (
		workers = 8
		perG    = 500
	)
	l, buf := newTestLogger(Options{ShowThreadID: true})
	var wg sync.WaitGroup
	for w := range workers {
		wg.Go(func() {
			group := fmt.Sprintf("w%d", w)
			for i := range perG {
				l.InfoGroup(group, fmt.Sprintf("line %d", i))
			}
		})
	}
	wg.Wait()

	re := regexp.MustCompile(`^INFO \[\d+\] \[w(\d+)\] line (\d+)$`)
	lines := buf.Lines()
	if len(lines) != workers*perG {
		t.Fatalf("got %d lines, want %d", len(lines), workers*perG)
	}
	next := make(map[string]int)
	for _, line := range lines {
		m := re.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("torn line %q", line)
		}
		want := fmt.Sprintf("%d", next[m[1]])
		if m[2] != want {
			t.Fatalf("worker %s: line %s out of order, want %s", m[1], m[2], want)
		}
		next[m[1]]++
	}
	for _, w := range buf.Writes() {
		if strings.Count(string(w), "\n") != 1 || w[len(w)-1] != '\n' {
			t.Fatalf("write was not exactly one line: %q", w)
		}
	}
}

func TestConfigChangesVisibleAcrossGoroutines(t *testing.T) {
	l, buf := newTestLogger(Options{MinLevel: ErrorLevel})
	done := make(chan struct{})
	go func() {
		l.SetLevel(DebugLevel)
		close(done)
	}()
	<-done
	l.Debug("visible")
	if buf.String() != "DEBUG visible\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestFilteredAllocatesZero(t *testing.T) {
	l := NewWithOptions(Options{MinLevel: ErrorLevel})
	_ = l.SetWriter(io.Discard)
	allocs := testing.AllocsPerRun(1000, func() {
		l.Info("filtered")
		l.DebugGroup("g", "filtered")
	})
	if allocs != 0 {
		t.Fatalf("filtered records allocate %.2f", allocs)
	}
}

func TestEmittedAllocatesZero(t *testing.T) {
	l := NewWithOptions(Options{ShowTime: true, ShowThreadID: true})
	_ = l.SetWriter(io.Discard)
	l.Info("warm")
	allocs := testing.AllocsPerRun(1000, func() {
		l.InfoGroup("g", "emitted")
	})
	if allocs != 0 {
		t.Fatalf("emitted records allocate %.2f", allocs)
	}
}

func BenchmarkFiltered(b *testing.B) {
	l := NewWithOptions(Options{MinLevel: ErrorLevel})
	_ = l.SetWriter(io.Discard)
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("filtered")
	}
}

func BenchmarkEmitted(b *testing.B) {
	l := NewWithOptions(Options{ShowTime: true, ShowThreadID: true})
	_ = l.SetWriter(io.Discard)
	b.ReportAllocs()
	for b.Loop() {
		l.InfoGroup("bench", "emitted")
	}
}

func BenchmarkEmittedFileLine(b *testing.B) {
	l := NewWithOptions(Options{ShowTime: true, ShowFileLine: true})
	_ = l.SetWriter(io.Discard)
	b.ReportAllocs()
	for b.Loop() {
		l.Info("emitted")
	}
}
