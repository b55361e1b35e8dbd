package logging

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts zerolog to the Logger interface.
type ZerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger builds a JSON logger writing to out at the given level.
// Unrecognised levels fall back to info.
func NewZerologLogger(out io.Writer, level string) *ZerologLogger {
	l := zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{l: l}
}

func (z *ZerologLogger) Debug(_ context.Context, msg string, args ...any) {
	emit(z.l.Debug(), msg, args)
}

func (z *ZerologLogger) Info(_ context.Context, msg string, args ...any) {
	emit(z.l.Info(), msg, args)
}

func (z *ZerologLogger) Warn(_ context.Context, msg string, args ...any) {
	emit(z.l.Warn(), msg, args)
}

func (z *ZerologLogger) Error(_ context.Context, msg string, args ...any) {
	emit(z.l.Error(), msg, args)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			continue
		}
		c = c.Interface(k, args[i+1])
	}
	return &ZerologLogger{l: c.Logger()}
}

// emit attaches key–value pairs to the event; keys that are not strings
// are skipped.
func emit(e *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(k, args[i+1])
	}
	e.Msg(msg)
}

// parseLevel converts a string to a zerolog.Level:
//
//	"trace" → TraceLevel
//	"debug" → DebugLevel
//	"info"  → InfoLevel (default)
//	"warn"  → WarnLevel
//	"error" → ErrorLevel
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
