package logger

import (
	"log/slog"
	"strings"
)

// TRACE carries subscription churn on the bus, CRITICAL recovered panics.
const (
	levelTrace    = slog.LevelDebug - 4
	levelCritical = slog.LevelError + 4
)

func levelName(l slog.Level) string {
	switch l {
	case levelTrace:
		return "TRACE"
	case levelCritical:
		return "CRITICAL"
	}
	return l.String()
}

// renameLevel is a slog ReplaceAttr that spells the custom levels by name.
func renameLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if l, ok := a.Value.Any().(slog.Level); ok {
		a.Value = slog.StringValue(levelName(l))
	}
	return a
}

// ParseLevel accepts trace, debug, info, warn, error and critical.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return levelTrace, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	case "critical":
		return levelCritical, true
	}
	return slog.LevelInfo, false
}
