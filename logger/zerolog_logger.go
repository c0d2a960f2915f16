package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements the [Logger] interface using zerolog.
type ZerologLogger struct {
	logger zerolog.Logger
}

var _ Logger = (*ZerologLogger)(nil)

// NewZerologLogger returns a [ZerologLogger] writing human readable
// console output to w (stderr if nil) at the given level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	if w == nil {
		w = os.Stderr
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	l := zerolog.New(output).Level(ZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{logger: l}
}

// NewZerologLoggerWith wraps an existing zerolog.Logger.
func NewZerologLoggerWith(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: l}
}

// Trace logs at the trace level.
func (z *ZerologLogger) Trace(msg string, args ...any) {
	z.log(z.logger.Trace(), msg, args)
}

// Debug logs at the debug level.
func (z *ZerologLogger) Debug(msg string, args ...any) {
	z.log(z.logger.Debug(), msg, args)
}

// Info logs at the info level.
func (z *ZerologLogger) Info(msg string, args ...any) {
	z.log(z.logger.Info(), msg, args)
}

// Warn logs at the warn level.
func (z *ZerologLogger) Warn(msg string, args ...any) {
	z.log(z.logger.Warn(), msg, args)
}

// Error logs at the error level.
func (z *ZerologLogger) Error(msg string, args ...any) {
	z.log(z.logger.Error(), msg, args)
}

// With returns a ZerologLogger whose context carries args.
func (z *ZerologLogger) With(args ...any) Logger {
	return &ZerologLogger{logger: z.logger.With().Fields(args).Logger()}
}

// Zerolog returns the underlying zerolog.Logger.
func (z *ZerologLogger) Zerolog() zerolog.Logger {
	return z.logger
}

func (z *ZerologLogger) log(event *zerolog.Event, msg string, args []any) {
	if event == nil {
		return
	}
	if len(args)%2 != 0 {
		args = append(args, "!MISSING")
	}
	event.Fields(args).Msg(msg)
}

// ZerologLevel converts a Level to the matching zerolog.Level.
func ZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelTrace:
		return zerolog.TraceLevel
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	case level <= LevelError:
		return zerolog.ErrorLevel
	}
	return zerolog.Disabled
}
