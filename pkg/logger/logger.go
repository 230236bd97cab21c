package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shuldan/pubsub/pkg/contracts"
)

type slogLogger struct {
	handler slog.Handler
}

var _ contracts.Logger = (*slogLogger)(nil)

// NewLogger builds a logger writing to stdout at INFO in the text format
// unless opts say otherwise.
func NewLogger(opts ...Option) (contracts.Logger, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	if s.json {
		return &slogLogger{handler: slog.NewJSONHandler(s.out, &slog.HandlerOptions{
			Level:       s.level,
			AddSource:   s.source,
			ReplaceAttr: renameLevel,
		})}, nil
	}
	return &slogLogger{handler: newTextHandler(s)}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() contracts.Logger {
	return &slogLogger{handler: slog.DiscardHandler}
}

func (l *slogLogger) Trace(msg string, args ...any)    { l.log(levelTrace, msg, args) }
func (l *slogLogger) Debug(msg string, args ...any)    { l.log(slog.LevelDebug, msg, args) }
func (l *slogLogger) Info(msg string, args ...any)     { l.log(slog.LevelInfo, msg, args) }
func (l *slogLogger) Warn(msg string, args ...any)     { l.log(slog.LevelWarn, msg, args) }
func (l *slogLogger) Error(msg string, args ...any)    { l.log(slog.LevelError, msg, args) }
func (l *slogLogger) Critical(msg string, args ...any) { l.log(levelCritical, msg, args) }

// With binds args to every later entry. The bus uses it to tag its
// entries with component=events.
func (l *slogLogger) With(args ...any) contracts.Logger {
	if len(args) == 0 {
		return l
	}
	return &slogLogger{handler: slog.New(l.handler).With(args...).Handler()}
}

// log records the caller of the level method as the entry's source. Args
// follow slog's key/value rules, so a dangling value lands under !BADKEY.
func (l *slogLogger) log(level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.handler.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.handler.Handle(ctx, r)
}
