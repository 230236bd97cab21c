package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"sync"

	"golang.org/x/term"
)

// textHandler writes one line per record:
//
//	LEVEL message bound="attrs" record="attrs"
//
// Attributes bound through WithAttrs are rendered once, at bind time.
// Open groups prefix keys with dotted names.
type textHandler struct {
	out    *lineWriter
	level  slog.Level
	color  bool
	source bool
	prefix string
	bound  []byte
}

// lineWriter serialises whole lines from every handler derived from one
// logger.
type lineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lineWriter) writeLine(line []byte) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, err := lw.w.Write(line)
	return err
}

func newTextHandler(s *settings) *textHandler {
	return &textHandler{
		out:    &lineWriter{w: s.out},
		level:  s.level,
		color:  s.color && isTerminal(s.out),
		source: s.source,
	}
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	line := make([]byte, 0, 128+len(h.bound))

	name := levelName(r.Level)
	if h.color {
		name = paint(name, r.Level)
	}
	line = append(line, name...)
	line = append(line, ' ')
	line = append(line, r.Message...)

	if h.source && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		line = appendPair(line, "source", filepath.Base(frame.File)+":"+strconv.Itoa(frame.Line))
	}

	line = append(line, h.bound...)
	r.Attrs(func(a slog.Attr) bool {
		line = appendAttr(line, h.prefix, a)
		return true
	})

	return h.out.writeLine(append(line, '\n'))
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	cp := *h
	cp.bound = slices.Clip(h.bound)
	for _, a := range attrs {
		cp.bound = appendAttr(cp.bound, h.prefix, a)
	}
	return &cp
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	cp := *h
	cp.prefix = h.prefix + name + "."
	return &cp
}

func appendAttr(line []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return line
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, member := range a.Value.Group() {
			line = appendAttr(line, prefix, member)
		}
		return line
	}
	return appendPair(line, prefix+a.Key, a.Value.String())
}

func appendPair(line []byte, key, value string) []byte {
	line = append(line, ' ')
	line = append(line, key...)
	line = append(line, '=')
	return strconv.AppendQuote(line, value)
}

const ansiReset = "\033[0m"

// palette is ordered from the most to the least severe level. A level
// takes the colour of the first entry it reaches.
var palette = []struct {
	from slog.Level
	code string
}{
	{levelCritical, "\033[41m\033[37m"},
	{slog.LevelError, "\033[31m"},
	{slog.LevelWarn, "\033[33m"},
	{slog.LevelInfo, "\033[32m"},
	{slog.LevelDebug, "\033[34m"},
}

func paint(name string, level slog.Level) string {
	for _, p := range palette {
		if level >= p.from {
			return p.code + name + ansiReset
		}
	}
	return "\033[36m" + name + ansiReset
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
