package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shuldan/pubsub/pkg/contracts"
)

type Option func(*settings)

type settings struct {
	level  slog.Level
	json   bool
	source bool
	color  bool
	out    io.Writer
}

func defaultSettings() *settings {
	return &settings{level: slog.LevelInfo, out: os.Stdout}
}

func WithLevel(level slog.Level) Option {
	return func(s *settings) { s.level = level }
}

func WithJSON() Option {
	return func(s *settings) { s.json = true }
}

// WithSource adds the caller's file and line to every entry.
func WithSource() Option {
	return func(s *settings) { s.source = true }
}

// WithColor colours level names, but only when the writer is a terminal.
func WithColor() Option {
	return func(s *settings) { s.color = true }
}

func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		if w == nil {
			w = io.Discard
		}
		s.out = w
	}
}

// OptionsFromConfig reads the logger section: level, format (text or
// json), color and source. Unknown levels and formats are ignored.
func OptionsFromConfig(cfg contracts.Config) []Option {
	section, ok := cfg.GetSub("logger")
	if !ok {
		return nil
	}

	var opts []Option
	if level, ok := ParseLevel(section.GetString("level")); ok {
		opts = append(opts, WithLevel(level))
	}
	if strings.EqualFold(section.GetString("format"), "json") {
		opts = append(opts, WithJSON())
	}
	if section.GetBool("color") {
		opts = append(opts, WithColor())
	}
	if section.GetBool("source") {
		opts = append(opts, WithSource())
	}
	return opts
}
