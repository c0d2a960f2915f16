package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// SlogLogger implements the [Logger] interface on top of a [slog.Logger].
//
// Level values map one to one onto slog levels, so LevelTrace is slog's
// Debug-4. Handlers built with [SlogHandlerOptions] print it as TRACE.
type SlogLogger struct {
	ctx    context.Context
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a new [SlogLogger].
// It will panic if the logger is nil.
func NewSlogLogger(ctx context.Context, logger *slog.Logger) *SlogLogger {
	if logger == nil {
		panic("nil logger")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &SlogLogger{
		ctx:    ctx,
		logger: logger,
	}
}

// SlogHandlerOptions returns handler options enabling records from level
// up and naming the trace level TRACE. LevelOff disables every record.
func SlogHandlerOptions(level Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: slog.Level(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey {
				return a
			}
			if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == slog.Level(LevelTrace) {
				a.Value = slog.StringValue("TRACE")
			}
			return a
		},
	}
}

// Trace logs at the trace level.
func (l *SlogLogger) Trace(msg string, args ...any) {
	l.log(LevelTrace, msg, args...)
}

// Debug logs at the debug level.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.log(LevelDebug, msg, args...)
}

// Info logs at the info level.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs at the warn level.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.log(LevelWarn, msg, args...)
}

// Error logs at the error level.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.log(LevelError, msg, args...)
}

// With returns a SlogLogger whose records carry args, e.g. the component
// of the calendar that logs.
func (l *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{
		ctx:    l.ctx,
		logger: l.logger.With(args...),
	}
}

// Enabled reports whether the underlying handler accepts records at the
// given level.
func (l *SlogLogger) Enabled(level Level) bool {
	return level < LevelOff && l.logger.Enabled(l.ctx, slog.Level(level))
}

// log obtains the caller's PC so that handlers report the calling site.
func (l *SlogLogger) log(level Level, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	// skip [runtime.Callers, this function, this function's caller]
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.Add(args...)

	_ = l.logger.Handler().Handle(l.ctx, r)
}
