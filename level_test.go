package minilog

import "testing"

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"trace", TraceLevel, true},
		{"DEBUG", DebugLevel, true},
		{" info ", InfoLevel, true},
		{"warn", WarnLevel, true},
		{"Warning", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"fatal", FatalLevel, true},
		{"loud", InfoLevel, false},
		{"", InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLevelString(t *testing.T) {
	want := map[Level]string{
		TraceLevel: "TRACE",
		DebugLevel: "DEBUG",
		InfoLevel:  "INFO",
		WarnLevel:  "WARN",
		ErrorLevel: "ERROR",
		FatalLevel: "FATAL",
		Level(42):  "INFO",
		Level(-9):  "INFO",
	}
	for level, tag := range want {
		if got := level.String(); got != tag {
			t.Fatalf("Level(%d).String() = %q, want %q", level, got, tag)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	order := []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("%v should sort before %v", order[i-1], order[i])
		}
	}
	var zero Level
	if zero != InfoLevel {
		t.Fatalf("zero Level = %v, want INFO", zero)
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("MINILOG_TEST_LEVEL", "error")
	if level, ok := LevelFromEnv("MINILOG_TEST_LEVEL"); !ok || level != ErrorLevel {
		t.Fatalf("LevelFromEnv = %v, %v", level, ok)
	}
	if _, ok := LevelFromEnv("MINILOG_TEST_LEVEL_UNSET"); ok {
		t.Fatalf("unset variable should not parse")
	}
	if _, ok := LevelFromEnv(""); ok {
		t.Fatalf("empty key should not parse")
	}
}

func TestSetLevelClamps(t *testing.T) {
	l := New()
	l.SetLevel(Level(100))
	if l.Level() != FatalLevel {
		t.Fatalf("high level clamped to %v", l.Level())
	}
	l.SetLevel(Level(-100))
	if l.Level() != TraceLevel {
		t.Fatalf("low level clamped to %v", l.Level())
	}
}

func TestLevelFilteringEveryPair(t *testing.T) {
	levels := []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
	for _, runtime := range levels {
		for _, record := range levels {
			l, buf := newTestLogger(Options{MinLevel: runtime})
			l.Log(record, "m")
			want := record >= runtime && CompiledIn(record)
			got := buf.String() != ""
			if got != want {
				t.Fatalf("runtime %v record %v: emitted=%v want %v", runtime, record, got, want)
			}
			if l.Enabled(record) != want {
				t.Fatalf("Enabled(%v) at %v = %v", record, runtime, !want)
			}
		}
	}
}

func TestCompiledFloorDebugBuild(t *testing.T) {
	if buildMode != "debug" {
		t.Skip("release build")
	}
	if !CompiledIn(TraceLevel) {
		t.Fatalf("debug builds keep trace")
	}
}
