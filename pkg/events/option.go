package events

import (
	"strings"

	"github.com/shuldan/pubsub/pkg/contracts"
)

// ErrorPolicy decides what a dispatch does after a listener fails.
type ErrorPolicy int

const (
	// AbortOnError stops the dispatch at the first failing listener.
	AbortOnError ErrorPolicy = iota
	// ContinueOnError runs every listener and joins the failures.
	ContinueOnError
)

func (p ErrorPolicy) String() string {
	switch p {
	case ContinueOnError:
		return "continue"
	default:
		return "abort"
	}
}

func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "abort", "":
		return AbortOnError, nil
	case "continue":
		return ContinueOnError, nil
	}
	return AbortOnError, ErrInvalidErrorPolicy.WithDetail("value", s)
}

// DispatchMode decides how a dispatch observes bindings changed while it runs.
type DispatchMode int

const (
	// DispatchLive re-reads the sequence before every call: bindings added
	// during the dispatch are reached, bindings removed before their turn
	// are skipped, and removing an already-called binding skips nothing.
	DispatchLive DispatchMode = iota
	// DispatchSnapshot fixes the sequence when the dispatch starts; bindings
	// removed before their turn are still skipped.
	DispatchSnapshot
)

func (m DispatchMode) String() string {
	switch m {
	case DispatchSnapshot:
		return "snapshot"
	default:
		return "live"
	}
}

func ParseDispatchMode(s string) (DispatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "live", "":
		return DispatchLive, nil
	case "snapshot":
		return DispatchSnapshot, nil
	}
	return DispatchLive, ErrInvalidDispatch.WithDetail("value", s)
}

type Option func(*busConfig)

type busConfig struct {
	errorPolicy   ErrorPolicy
	dispatchMode  DispatchMode
	recoverPanics bool
	panicHandler  PanicHandler
	errorHandler  ErrorHandler
	logger        contracts.Logger
}

func WithErrorPolicy(p ErrorPolicy) Option {
	return func(c *busConfig) {
		c.errorPolicy = p
	}
}

func WithDispatchMode(m DispatchMode) Option {
	return func(c *busConfig) {
		c.dispatchMode = m
	}
}

// WithPanicRecovery turns listener panics into ErrListenerPanic errors
// instead of letting them unwind through Trigger.
func WithPanicRecovery(enabled bool) Option {
	return func(c *busConfig) {
		c.recoverPanics = enabled
	}
}

func WithPanicHandler(h PanicHandler) Option {
	return func(c *busConfig) {
		c.panicHandler = h
	}
}

func WithErrorHandler(h ErrorHandler) Option {
	return func(c *busConfig) {
		c.errorHandler = h
	}
}

func WithLogger(l contracts.Logger) Option {
	return func(c *busConfig) {
		c.logger = l
	}
}

// OptionsFromConfig reads events.error_policy, events.dispatch and
// events.recover_panics.
func OptionsFromConfig(cfg contracts.Config) ([]Option, error) {
	policy, err := ParseErrorPolicy(cfg.GetString("events.error_policy"))
	if err != nil {
		return nil, err
	}
	mode, err := ParseDispatchMode(cfg.GetString("events.dispatch"))
	if err != nil {
		return nil, err
	}
	return []Option{
		WithErrorPolicy(policy),
		WithDispatchMode(mode),
		WithPanicRecovery(cfg.GetBool("events.recover_panics")),
	}, nil
}
