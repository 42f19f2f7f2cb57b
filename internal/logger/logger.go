package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

type implLogger struct {
	logger zerolog.Logger
}

// New creates a new Logger instance writing to stdout.
// Format "json" emits structured lines, anything else a human readable console format.
func New(level, format string) Logger {
	return newWithWriter(os.Stdout, level, format)
}

func newWithWriter(w io.Writer, level, format string) *implLogger {
	out := w
	if !strings.EqualFold(format, "json") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	return &implLogger{
		logger: zerolog.New(out).
			Level(parseLevel(level)).
			With().
			Timestamp().
			Logger(),
	}
}

// parseLevel maps a config level to zerolog, defaulting to info
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithRunID attaches a run identifier that is added to every log line written with ctx
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, runID)
}

// RunID returns the run identifier stored in ctx, if any
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (l *implLogger) write(ctx context.Context, ev *zerolog.Event, msg string, args ...interface{}) {
	if id := RunID(ctx); id != "" {
		ev = ev.Str("run_id", id)
	}
	ev.Msgf(msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, l.logger.Debug(), msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, l.logger.Info(), msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, l.logger.Warn(), msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, l.logger.Error(), msg, args...)
}
