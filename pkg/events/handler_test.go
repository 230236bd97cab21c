package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shuldan/pubsub/pkg/contracts"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) log(level, msg string, args []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, args: args})
}

func (m *mockLogger) Trace(msg string, args ...any)    { m.log("trace", msg, args) }
func (m *mockLogger) Debug(msg string, args ...any)    { m.log("debug", msg, args) }
func (m *mockLogger) Info(msg string, args ...any)     { m.log("info", msg, args) }
func (m *mockLogger) Warn(msg string, args ...any)     { m.log("warn", msg, args) }
func (m *mockLogger) Error(msg string, args ...any)    { m.log("error", msg, args) }
func (m *mockLogger) Critical(msg string, args ...any) { m.log("critical", msg, args) }
func (m *mockLogger) With(...any) contracts.Logger     { return m }

func (m *mockLogger) find(level, msg string) (logEntry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.level == level && e.msg == msg {
			return e, true
		}
	}
	return logEntry{}, false
}

func TestDefaultErrorHandler(t *testing.T) {
	log := &mockLogger{}
	boom := errors.New("boom")

	NewDefaultErrorHandler(log).Handle("orders", "listener", boom)

	entry, ok := log.find("error", "listener failed")
	if !ok {
		t.Fatal("expected error entry")
	}
	if entry.args[1] != "orders" || entry.args[5] != boom || len(entry.args) != 6 {
		t.Errorf("unexpected args %v", entry.args)
	}
}

func TestDefaultErrorHandler_LogsCode(t *testing.T) {
	log := &mockLogger{}
	err := ErrListenerPanic.WithDetail("key", "orders")

	NewDefaultErrorHandler(log).Handle("orders", "listener", err)

	entry, ok := log.find("error", "listener failed")
	if !ok {
		t.Fatal("expected error entry")
	}
	if len(entry.args) != 8 || entry.args[6] != "code" || entry.args[7] != ErrListenerPanic.Code {
		t.Errorf("expected the error code, got %v", entry.args)
	}
}

func TestDefaultPanicHandler(t *testing.T) {
	log := &mockLogger{}

	NewDefaultPanicHandler(log).Handle("orders", "listener", "kaboom", []byte("stack"))

	entry, ok := log.find("critical", "listener panicked")
	if !ok {
		t.Fatal("expected critical entry")
	}
	if entry.args[5] != "kaboom" || entry.args[7] != "stack" {
		t.Errorf("unexpected args %v", entry.args)
	}
}

func TestBus_LogsThroughConfiguredLogger(t *testing.T) {
	log := &mockLogger{}
	bus := New[string](WithLogger(log), WithPanicRecovery(true), WithErrorPolicy(ContinueOnError))

	sub := bus.ListenFunc("evt", func(context.Context, ...any) error { return errors.New("boom") })
	bus.ListenFunc("evt", func(context.Context, ...any) error { panic("kaboom") })
	_, _ = bus.Trigger(context.Background(), "evt")
	sub.Unsubscribe()
	bus.RemoveAll("evt")
	bus.Reset()

	for _, want := range []logEntry{
		{level: "trace", msg: "listener registered"},
		{level: "error", msg: "listener failed"},
		{level: "critical", msg: "listener panicked"},
		{level: "trace", msg: "listener unsubscribed"},
		{level: "trace", msg: "listeners removed"},
		{level: "debug", msg: "event bus reset"},
	} {
		if _, ok := log.find(want.level, want.msg); !ok {
			t.Errorf("missing %s entry %q", want.level, want.msg)
		}
	}
}

func TestBus_MissIsNotLogged(t *testing.T) {
	log := &mockLogger{}
	bus := New[string](WithLogger(log))

	_, _ = bus.Trigger(context.Background(), "nobody")
	bus.Remove("nobody", nil)

	if len(log.entries) != 0 {
		t.Errorf("a miss must not be logged, got %+v", log.entries)
	}
}
