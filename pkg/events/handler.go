package events

import (
	"github.com/shuldan/pubsub/pkg/contracts"
	"github.com/shuldan/pubsub/pkg/errors"
)

type PanicHandler interface {
	Handle(key any, listener any, panicValue any, stack []byte)
}

type ErrorHandler interface {
	Handle(key any, listener any, err error)
}

func NewDefaultPanicHandler(logger contracts.Logger) PanicHandler {
	return &defaultPanicHandler{logger: logger}
}

func NewDefaultErrorHandler(logger contracts.Logger) ErrorHandler {
	return &defaultErrorHandler{logger: logger}
}

type defaultPanicHandler struct {
	logger contracts.Logger
}

func (d *defaultPanicHandler) Handle(key any, listener any, panicValue any, stack []byte) {
	d.logger.Critical("listener panicked",
		"key", key,
		"listener", listener,
		"panic_value", panicValue,
		"stack", string(stack),
	)
}

type defaultErrorHandler struct {
	logger contracts.Logger
}

// Handle logs err; coded errors such as a recovered ErrListenerPanic also
// carry their code.
func (d *defaultErrorHandler) Handle(key any, listener any, err error) {
	args := []any{"key", key, "listener", listener, "error", err}
	if code := errors.CodeOf(err); code != "" {
		args = append(args, "code", code)
	}
	d.logger.Error("listener failed", args...)
}
