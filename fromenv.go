package minilog

import (
	"os"
	"strconv"
	"strings"

	"pkt.systems/minilog/ansi"
)

// DefaultEnvPrefix is the prefix of the variables read by ApplyEnv.
const DefaultEnvPrefix = "RUST_LOG_"

// EnvOption customizes ApplyEnv behavior.
type EnvOption func(*envConfig)

type envConfig struct {
	prefix string
}

// WithEnvPrefix overrides the environment variable prefix used by ApplyEnv.
func WithEnvPrefix(prefix string) EnvOption {
	return func(cfg *envConfig) {
		cfg.prefix = prefix
	}
}

// ApplyEnv configures l from environment variables. Recognised variables
// (shown with the default prefix) are:
//
//	RUST_LOG_LEVEL           trace|debug|info|warn|error|fatal
//	RUST_LOG_COLOR           always|never|auto
//	RUST_LOG_SHOW_TID        boolean
//	RUST_LOG_SHOW_TIME       boolean
//	RUST_LOG_SHOW_FILE_LINE  boolean
//	RUST_LOG_SHOW_GROUP      boolean
//	RUST_LOG_PALETTE         a palette name from the ansi package
//	RUST_LOG_OUTPUT          stdout|stderr|<path>|stdout+<path>|stderr+<path>
//
// Booleans accept 1, t, true, 0, f and false in any letter case. Unset variables and unrecognised values leave the current
// configuration unchanged. Only OUTPUT can fail: the error is an *IoError
// when the file cannot be opened, or ErrTargetAlreadySet.
func ApplyEnv(l *Logger, opts ...EnvOption) error {
	cfg := envConfig{prefix: DefaultEnvPrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "LEVEL"); ok {
		if level, ok := ParseLevel(value); ok {
			l.SetLevel(level)
		}
	}
	if value, ok := lookupEnv(prefix, "COLOR"); ok {
		if mode, ok := parseEnvColor(value); ok {
			l.SetColorMode(mode)
		}
	}
	applyEnvBool(prefix, "SHOW_TID", l.SetShowThreadID)
	applyEnvBool(prefix, "SHOW_TIME", l.SetShowTime)
	applyEnvBool(prefix, "SHOW_FILE_LINE", l.SetShowFileLine)
	applyEnvBool(prefix, "SHOW_GROUP", l.SetShowGroup)
	if value, ok := lookupEnv(prefix, "PALETTE"); ok {
		if palette, ok := ansi.LookupPalette(value); ok {
			l.SetPalette(*palette)
		}
	}
	if value, ok := lookupEnv(prefix, "OUTPUT"); ok {
		return applyOutput(l, value)
	}
	return nil
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func applyEnvBool(prefix, key string, set func(bool)) {
	value, ok := lookupEnv(prefix, key)
	if !ok {
		return
	}
	if parsed, ok := parseEnvBool(value); ok {
		set(parsed)
	}
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(value)))
	if err != nil {
		return false, false
	}
	return parsed, true
}

// parseEnvColor differs from ParseColorMode in treating an empty variable as
// unrecognised rather than as auto.
func parseEnvColor(value string) (ColorMode, bool) {
	if strings.TrimSpace(value) == "" {
		return ColorAuto, false
	}
	return ParseColorMode(value)
}

// applyOutput claims the target described by value. An empty value is a
// no-op.
func applyOutput(l *Logger, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "stdout":
		return l.SetTarget(TargetStdout)
	case "stderr":
		return l.SetTarget(TargetStderr)
	}
	const (
		stdoutPrefix = "stdout+"
		stderrPrefix = "stderr+"
	)
	switch {
	case strings.HasPrefix(lowered, stdoutPrefix):
		return teeOutput(l, os.Stdout, TargetStdout, trimmed[len(stdoutPrefix):])
	case strings.HasPrefix(lowered, stderrPrefix):
		return teeOutput(l, os.Stderr, TargetStderr, trimmed[len(stderrPrefix):])
	default:
		return l.SetFile(trimmed)
	}
}

// teeOutput mirrors lines onto console and a file. The result is a writer
// target, so ColorAuto leaves it undecorated.
func teeOutput(l *Logger, console *os.File, kind Target, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return l.SetTarget(kind)
	}
	if _, claimed := l.Target(); claimed {
		return ErrTargetAlreadySet
	}
	file, err := openLogFile(path)
	if err != nil {
		return err
	}
	return l.claimOwned(TargetWriter, newOwnedOutput(newTeeWriter(console, file), file))
}

