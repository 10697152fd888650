// Package zapbridge routes go.uber.org/zap logging through a minilog Logger,
// so libraries that log with zap end up on the same single-write sink.
//
//	core := zapbridge.NewCore(minilog.Default())
//	zl := zap.New(core, zap.AddCaller())
//	zl.Named("db").Info("connected", zap.String("host", "pg-1"))
//
// produces "INFO <db/conn.go:42> [db] connected host=pg-1". Fields are
// rendered as space separated key=value pairs after the message; the zap
// logger name becomes the group tag.
package zapbridge

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"pkt.systems/minilog"
)

type core struct {
	logger *minilog.Logger
	fields []zapcore.Field
}

// NewCore returns a zapcore.Core writing through logger. Level checks use
// the minilog runtime level, so minilog.SetLevel governs zap output too.
func NewCore(logger *minilog.Logger) zapcore.Core {
	return &core{logger: logger}
}

// Level maps a zap level onto minilog. DPanic, Panic and Fatal all become
// FatalLevel; the zap logger still applies its own panic/exit behaviour.
func Level(l zapcore.Level) minilog.Level {
	switch {
	case l < zapcore.InfoLevel:
		return minilog.DebugLevel
	case l == zapcore.InfoLevel:
		return minilog.InfoLevel
	case l == zapcore.WarnLevel:
		return minilog.WarnLevel
	case l == zapcore.ErrorLevel:
		return minilog.ErrorLevel
	default:
		return minilog.FatalLevel
	}
}

func (c *core) Enabled(l zapcore.Level) bool {
	return c.logger.Enabled(Level(l))
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &core{logger: c.logger, fields: merged}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var file string
	var line int
	if ent.Caller.Defined {
		file = shortPath(ent.Caller.File)
		line = ent.Caller.Line
	}
	msg := ent.Message
	if rendered := renderFields(c.fields, fields); rendered != "" {
		msg += " " + rendered
	}
	c.logger.Emit(Level(ent.Level), ent.LoggerName, file, line, msg)
	return nil
}

func (c *core) Sync() error {
	return nil
}

func renderFields(groups ...[]zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	for _, fields := range groups {
		for i := range fields {
			fields[i].AddTo(enc)
		}
	}
	if len(enc.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, enc.Fields[k])
	}
	return b.String()
}

func shortPath(file string) string {
	dir, name := path.Split(file)
	if dir == "" {
		return name
	}
	return path.Join(path.Base(dir), name)
}
