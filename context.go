package minilog

import "context"

type loggerContextKey struct{}

// ContextWithLogger returns a child context carrying logger.
func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext returns the Logger carried by ctx, or Default when there is
// none.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerContextKey{}).(*Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is shorthand for FromContext.
func Ctx(ctx context.Context) *Logger {
	return FromContext(ctx)
}
