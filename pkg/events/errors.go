package events

import "github.com/shuldan/pubsub/pkg/errors"

var newEventCode = errors.WithPrefix("EVENTS")

var (
	ErrListenerFailed     = newEventCode().New("listener {{.index}} failed on key {{.key}}")
	ErrListenerPanic      = newEventCode().New("listener {{.index}} panicked on key {{.key}}: {{.panic}}")
	ErrInvalidErrorPolicy = newEventCode().New("unknown error policy {{.value}}, expected abort or continue")
	ErrInvalidDispatch    = newEventCode().New("unknown dispatch mode {{.value}}, expected live or snapshot")
	ErrBusNotFound        = newEventCode().New("event bus not found in container")
	ErrInvalidBusInstance = newEventCode().New("container value is not an event bus")
)
