package errors

import (
	"bytes"
	"fmt"
	"maps"
	"runtime"
	"text/template"
	"time"
)

type Code string

func (c Code) New(msg string) *Error {
	return &Error{
		Code:      c,
		Message:   msg,
		Details:   make(map[string]any),
		Stack:     getStack(),
		Timestamp: time.Now(),
	}
}

// WithPrefix returns a generator producing PREFIX_0001, PREFIX_0002, ...
func WithPrefix(prefix string) func() Code {
	counter := int64(0)
	return func() Code {
		counter++
		return Code(fmt.Sprintf("%s_%04d", prefix, counter))
	}
}

type Error struct {
	Code      Code           `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Cause     error          `json:"-"`
	Stack     string         `json:"-"`
	Timestamp time.Time      `json:"timestamp"`
}

func (e *Error) Error() string {
	msg := e.render()
	if msg == "" {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) render() (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = e.Message
		}
	}()

	t, err := template.New("error").Option("missingkey=zero").Parse(e.Message)
	if err != nil {
		return e.Message
	}

	var output bytes.Buffer
	if err = t.Execute(&output, e.Details); err != nil {
		return e.Message
	}
	return output.String()
}

// WithCause returns a copy of e carrying err as its cause.
func (e *Error) WithCause(err error) *Error {
	cp := e.clone()
	cp.Cause = err
	return cp
}

// WithDetail returns a copy of e with key set to value.
func (e *Error) WithDetail(key string, value any) *Error {
	cp := e.clone()
	cp.Details[key] = value
	return cp
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.Code == t.Code
}

func (e *Error) clone() *Error {
	cp := *e
	cp.Details = maps.Clone(e.Details)
	if cp.Details == nil {
		cp.Details = make(map[string]any)
	}
	return &cp
}

func getStack() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
