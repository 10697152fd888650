// Package minilog is a small line logger. Each record (level, optional
// group tag, call site, message, and optionally a timestamp and thread id)
// becomes exactly one line, written to the sink with exactly one Write, so
// lines from concurrent goroutines never interleave.
//
// # Line format
//
//	[TIMESTAMP ]LEVEL[ [tid]][ <file:line>][ [group]] message
//
// TIMESTAMP is "YYYY-MM-DD HH:MM:SS.mmmZ" (UTC, computed without a zone
// database) and LEVEL is one of TRACE, DEBUG, INFO, WARN, ERROR, FATAL. Each
// bracketed field appears only when its toggle is on and it has a value.
// Control bytes in the message and group are escaped (\n, \r, \t, \xNN), so
// one record is always one line.
// ANSI colour appears only when the colour mode resolves to on for the line:
// ColorAlways, or ColorAuto with stdout/stderr attached to a terminal.
//
// # Loggers and the default Logger
//
// A Logger owns its configuration and its output target:
//
//	logger := minilog.NewWithOptions(minilog.Options{ShowTime: true})
//	if err := logger.SetFile("app.log"); err != nil {
//		return err
//	}
//	defer logger.Close()
//	logger.InfoGroup("db", "connected")
//
// The package-level functions use a lazily created process-wide Logger with
// identical semantics. Targets are set once: the first SetTarget, SetWriter or
// SetFile wins (later calls return ErrTargetAlreadySet), and the first
// emitted line claims stderr if nothing was set.
//
// # Levels
//
// A record is emitted when its level is at or above the runtime level and
// the compile-time floor. Default builds keep every level; building with
// -tags minilog_release raises the floor to Info. Filtered records cost one
// atomic load and allocate nothing. FatalLevel is only a severity; minilog
// never exits the process.
//
// # Scope timers
//
//	t := logger.StartScope("rebuild index")
//	defer t.Stop()
//
// emits one INFO line, "[rebuild index] took 1.234 s", on every exit path.
//
// # Configuration sources
//
// ApplyEnv reads RUST_LOG_LEVEL, RUST_LOG_COLOR, RUST_LOG_SHOW_TID,
// RUST_LOG_SHOW_TIME and friends; LoadConfigFile reads the same settings from
// TOML. StdLogger and the zapbridge subpackage feed other logging APIs into a
// Logger.
package minilog
